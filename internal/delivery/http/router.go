package http

import (
	"ProjectTracker/internal/delivery/http/controllers"
	"ProjectTracker/internal/delivery/http/controllers/middleware"
	"ProjectTracker/internal/metrics"
	"ProjectTracker/internal/service"
	"ProjectTracker/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api"

func InitRoutes(l logger.Log, u service.Collection, m *metrics.Metrics, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggingMiddleware(l))
	r.Use(m.Middleware())
	r.Use(middleware.CORS(), middleware.Preflight())

	statusController := controllers.NewStatusHandler(l, u.TrackerService)
	programmeController := controllers.NewProgrammeHandler(l, u.TrackerService)
	moduleController := controllers.NewModuleHandler(l, u.TrackerService)
	dataController := controllers.NewDataHandler(l, u.TrackerService)
	staticController := controllers.NewStaticHandler(l, staticDir)

	r.GET("/status", statusController.Status)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	api := r.Group(apiPrefix)
	{
		api.GET("/data", dataController.Dump)

		programmes := api.Group("/programmes")
		{
			programmes.GET("", programmeController.ListProgrammes)
			programmes.POST("", programmeController.CreateProgramme)
			programmes.GET("/:id", programmeController.ProgrammeByID)
			programmes.POST("/:id/modules", programmeController.CreateModule)
		}

		modules := api.Group("/modules")
		{
			modules.GET("/:id", moduleController.ModuleByID)
			modules.POST("/:id/tasks", moduleController.CreateTask)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
			controllers.NotFoundAPI(c)
			return
		}
		staticController.Serve(c)
	})
	return r
}
