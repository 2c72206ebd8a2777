package v1

import (
	"net/http"
	"time"

	"contact-relay-backend/config"
	"contact-relay-backend/internal/delivery/http/middleware"
	"contact-relay-backend/internal/domain"
	"contact-relay-backend/internal/usecase"
	"contact-relay-backend/pkg/sheets"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ForwardUC domain.ForwardUsecase
	HealthUC  usecase.HealthUsecase
	Endpoint  *sheets.Endpoint
	Config    *config.Config
	// UpstreamTransport is used by the relay proxy; nil means http.DefaultTransport
	UpstreamTransport http.RoundTripper
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.Production))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")
	NewHealthHandler(v1, deps.HealthUC)
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Submission routes share one rate limit bucket per client
	relay := r.Group("")
	relay.Use(middleware.RateLimitMiddleware(middleware.RelayRateLimitConfig(
		deps.Config.RateLimitRelayThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	{
		NewRelayHandler(relay, deps.Endpoint, RelayOptions{
			Path:         config.RelayPath,
			MaxBodyBytes: deps.Config.RelayMaxBodyBytes,
			Transport:    deps.UpstreamTransport,
		})
		NewDirectHandler(relay, deps.ForwardUC, deps.Config.RelayMaxBodyBytes)
	}

	return r
}
