package http

import (
	"taskwarrior_web/internal/config"
	"taskwarrior_web/internal/http/handlers"
	"taskwarrior_web/internal/http/middleware"
	"taskwarrior_web/internal/service"
	"taskwarrior_web/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the engine with middleware and all routes
func NewRouter(cfg *config.Config, tasks *service.TaskService, version string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORSAllowOrigins))

	RegisterRoutes(r, cfg, handlers.NewHandler(tasks), handlers.NewHealthHandler(cfg.TaskBin, version))
	return r
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, h *handlers.Handler, health *handlers.HealthHandler) {
	r.SetHTMLTemplate(view.Template())

	// Health checks and metrics (no rate limiting)
	r.GET("/health", health.Health)
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// every request below runs one export
	limited := r.Group("/")
	limited.Use(middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	{
		limited.GET("/tasks", h.ListTasks)
		limited.GET("/gpt/tasks", h.ListEnrichedTasks)
		limited.GET("/gpt/html/tasks", h.ListEnrichedTasksHTML)
	}
}
