package v1

import (
	"net/http"

	"contact-relay-backend/internal/delivery/http/response"
	"contact-relay-backend/internal/domain"
	"contact-relay-backend/pkg/logger"
	"contact-relay-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// DirectTestPath posts straight to the spreadsheet with a server-side client
const DirectTestPath = "/test-direct"

type DirectHandler struct {
	forwardUC domain.ForwardUsecase
	maxBody   int64
}

// NewDirectHandler registers the direct test route
func NewDirectHandler(r gin.IRoutes, forwardUC domain.ForwardUsecase, maxBody int64) {
	handler := &DirectHandler{
		forwardUC: forwardUC,
		maxBody:   maxBody,
	}

	r.POST(DirectTestPath, handler.TestDirect)
}

// TestDirect godoc
// @Summary      Test the spreadsheet web app directly
// @Description  Posts the body to the spreadsheet with a server-side HTTP client, following redirects, and mirrors the answer.
// @Tags         relay
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.WirePayload  true  "Contact Form Data"
// @Success      200         {object}  sheets.Outcome
// @Failure      500         {object}  response.ProxyError
// @Router       /test-direct [post]
func (h *DirectHandler) TestDirect(c *gin.Context) {
	body, ok := readBody(c, h.maxBody)
	if !ok {
		return
	}

	result, err := h.forwardUC.Forward(c.Request.Context(), body)
	if err != nil {
		logger.Log.Error("Error in direct test", "error", err, "request_id", response.RequestID(c))
		security.DefaultLogger().LogUpstreamFailure(c.Request.Context(), response.RequestID(c), DirectTestPath, err)
		c.JSON(http.StatusInternalServerError, response.ProxyError{
			Error:   "Direct test error",
			Message: err.Error(),
		})
		return
	}

	logger.Log.Info("Direct request completed", "status", result.Status, "json", result.JSON)

	contentType := "text/plain; charset=utf-8"
	if result.JSON {
		contentType = "application/json; charset=utf-8"
	}
	c.Data(result.Status, contentType, result.Body)
}
