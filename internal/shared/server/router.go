package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoshop-backend/internal/analyze"
	"autoshop-backend/internal/documents"
	"autoshop-backend/internal/dvi"
	"autoshop-backend/internal/insights"
	"autoshop-backend/internal/repairorders"
	"autoshop-backend/internal/rewards"
	"autoshop-backend/internal/shared/config"
	"autoshop-backend/internal/shared/metrics"
	"autoshop-backend/internal/shared/server/middleware"
	"autoshop-backend/internal/shared/server/respond"
	"autoshop-backend/internal/shops"
)

// RouterDeps carries the handlers the router mounts. Nil handlers are simply
// skipped, which keeps partial wiring usable in tests.
type RouterDeps struct {
	Config              config.Config
	AnalyzeHandler      *analyze.Handler
	ShopsHandler        *shops.Handler
	DocumentsHandler    *documents.Handler
	RepairOrdersHandler *repairorders.Handler
	RewardsHandler      *rewards.Handler
	InsightsHandler     *insights.Handler
	DVIHandler          *dvi.Handler
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

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	// Document uploads are the only write-heavy endpoint worth throttling;
	// analysis stays unthrottled so the portal's import flow never stalls.
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"uploads": {Rate: 2, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/documents" {
				return "uploads"
			}
			return ""
		},
	}))

	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.AnalyzeHandler != nil {
		deps.AnalyzeHandler.RegisterRoutes(api)
	}
	if deps.ShopsHandler != nil {
		deps.ShopsHandler.RegisterRoutes(api)
	}
	if deps.DocumentsHandler != nil {
		deps.DocumentsHandler.RegisterRoutes(api)
	}
	if deps.RepairOrdersHandler != nil {
		deps.RepairOrdersHandler.RegisterRoutes(api)
	}
	if deps.RewardsHandler != nil {
		deps.RewardsHandler.RegisterRoutes(api)
	}
	if deps.InsightsHandler != nil {
		deps.InsightsHandler.RegisterRoutes(api)
	}
	if deps.DVIHandler != nil {
		deps.DVIHandler.RegisterRoutes(api)
	}

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
