package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httputil"

	"contact-relay-backend/internal/delivery/http/response"
	"contact-relay-backend/pkg/apperror"
	"contact-relay-backend/pkg/logger"
	"contact-relay-backend/pkg/security"
	"contact-relay-backend/pkg/sheets"

	"github.com/gin-gonic/gin"
)

// RelayOptions configures the relay handler
type RelayOptions struct {
	Path         string
	MaxBodyBytes int64
	// Transport for upstream calls; nil means http.DefaultTransport
	Transport http.RoundTripper
}

type RelayHandler struct {
	proxy   *httputil.ReverseProxy
	maxBody int64
	path    string
}

type requestIDCtxKey struct{}

// NewRelayHandler registers the same-origin relay route. The relay forwards
// bytes only and never looks at the submission fields.
func NewRelayHandler(r gin.IRoutes, endpoint *sheets.Endpoint, opts RelayOptions) {
	handler := &RelayHandler{
		maxBody: opts.MaxBodyBytes,
		path:    opts.Path,
	}

	handler.proxy = &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(endpoint.Origin)
			pr.Out.URL.Path = endpoint.ExecPath()
			pr.Out.URL.RawPath = ""
		},
		Transport: opts.Transport,
		ModifyResponse: func(resp *http.Response) error {
			logger.Log.Info("Received response from spreadsheet", "status", resp.StatusCode)
			return nil
		},
		ErrorHandler: handler.proxyError,
	}

	r.POST(opts.Path, handler.Relay)
}

// Relay godoc
// @Summary      Relay a contact form submission
// @Description  Forwards the JSON body unchanged to the spreadsheet web app and mirrors its status and body.
// @Tags         relay
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.WirePayload  true  "Contact Form Data"
// @Success      200         {object}  sheets.Outcome
// @Failure      413         {object}  response.Response
// @Failure      500         {object}  response.ProxyError
// @Router       /api/sheets [post]
func (h *RelayHandler) Relay(c *gin.Context) {
	body, ok := readBody(c, h.maxBody)
	if !ok {
		return
	}

	// Restream the buffered body with exact length headers
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	c.Request.ContentLength = int64(len(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDCtxKey{}, response.RequestID(c)))

	logger.Log.Info("Proxying request to spreadsheet", "bytes", len(body), "request_id", response.RequestID(c))
	h.proxy.ServeHTTP(c.Writer, c.Request)
}

func (h *RelayHandler) proxyError(w http.ResponseWriter, r *http.Request, err error) {
	requestID, _ := r.Context().Value(requestIDCtxKey{}).(string)
	logger.Log.Error("Proxy error", "error", err, "request_id", requestID)
	security.DefaultLogger().LogUpstreamFailure(r.Context(), requestID, h.path, err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(response.ProxyError{
		Error:   "Proxy error",
		Message: err.Error(),
	})
}

// readBody buffers the request body up to limit bytes. On failure the error
// has been pushed to the gin context and ok is false.
func readBody(c *gin.Context, limit int64) (body []byte, ok bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
	if err == nil {
		return body, true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		security.DefaultLogger().LogPayloadTooLarge(c.Request.Context(), c.ClientIP(), response.RequestID(c), limit)
		_ = c.Error(apperror.PayloadTooLarge("Submission is too large"))
		return nil, false
	}

	_ = c.Error(apperror.New(http.StatusBadRequest, "Could not read request body", err))
	return nil, false
}
