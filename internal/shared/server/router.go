package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-store/internal/resumes"
	"resume-store/internal/services/health"
	"resume-store/internal/shared/config"
	"resume-store/internal/shared/server/middleware"
	"resume-store/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config  config.Config
	Resumes *resumes.Handler
	Health  *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.SecurityHeaders(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.BodyLimit(deps.Config.MaxBodyBytes),
		middleware.RateLimit(middleware.RateLimitConfig{
			Window: deps.Config.RateLimitWindow,
			Max:    deps.Config.RateLimitMax,
		}),
	)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "Route not found", "")
	})

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Check())
	})

	api := r.Group("/api")
	deps.Resumes.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
