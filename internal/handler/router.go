package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"meeting-scheduler/internal/handler/api"
	"meeting-scheduler/internal/handler/middleware"
	"meeting-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Project  *api.ProjectHandler
	Schedule *api.ScheduleHandler
	Meeting  *api.MeetingHandler
	History  *api.HistoryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.OperatorContext())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/projects"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Project.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Project.List},
			{Method: http.MethodPost, Path: "/:id/open", Handler: h.Project.Open},
			{Method: http.MethodPut, Path: "/active/suppliers/:id", Handler: h.Project.UpdateSupplier},
		})

		addRoutes(apiGroup.Group("/schedule"), []route{
			{Method: http.MethodPost, Path: "/generate", Handler: h.Schedule.Generate},
			{Method: http.MethodGet, Path: "", Handler: h.Schedule.Get},
			{Method: http.MethodGet, Path: "/slots", Handler: h.Schedule.Slots},
			{Method: http.MethodGet, Path: "/conflicts", Handler: h.Schedule.ConflictSummary},
			{Method: http.MethodPost, Path: "/auto-fill", Handler: h.Schedule.AutoFill},
		})

		addRoutes(apiGroup.Group("/conflicts"), []route{
			{Method: http.MethodPost, Path: "/check-add", Handler: h.Schedule.CheckAdd},
			{Method: http.MethodPost, Path: "/check-move", Handler: h.Schedule.CheckMove},
		})

		addRoutes(apiGroup.Group("/meetings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Meeting.Add},
			{Method: http.MethodPost, Path: "/swap", Handler: h.Meeting.Swap},
			{Method: http.MethodPost, Path: "/:id/move", Handler: h.Meeting.Move},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Meeting.Cancel},
			{Method: http.MethodPost, Path: "/:id/bump", Handler: h.Meeting.Bump},
			{Method: http.MethodPost, Path: "/:id/status", Handler: h.Meeting.ChangeStatus},
			{Method: http.MethodGet, Path: "/:id/conflicts", Handler: h.Meeting.Conflicts},
		})

		addRoutes(apiGroup.Group("/history"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.History.Get},
			{Method: http.MethodPost, Path: "/undo", Handler: h.History.Undo},
			{Method: http.MethodPost, Path: "/redo", Handler: h.History.Redo},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
