package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analyses"
	"ats-backend/internal/report"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/shared/server/respond"
	"ats-backend/internal/web"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	ReportHandler   *report.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	// Analysis submissions fan out to a paid model API, so they get a tighter
	// budget than reads.
	limiter := middleware.NewRateLimiter(nil)
	api.POST("/analyses",
		middleware.RateLimit(middleware.RateLimitRule{Rate: 0.2, Burst: 3}, limiter),
		deps.AnalysisHandler.Create,
	)
	api.GET("/analyses/:id", deps.AnalysisHandler.Get)
	api.GET("/analyses/:id/report.json", deps.ReportHandler.JSON)
	api.GET("/analyses/:id/report.pdf", deps.ReportHandler.PDF)

	r.GET("/metrics", metrics.Handler())
	web.Register(r)

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
