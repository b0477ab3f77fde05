package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventboard/internal/config"
	"github.com/joshua-takyi/eventboard/internal/container"
	"github.com/joshua-takyi/eventboard/internal/handlers"
	"github.com/joshua-takyi/eventboard/internal/middleware"
	"github.com/joshua-takyi/eventboard/web"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	cfg := container.Config

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadBytes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())
	r.Use(middleware.BodyLimit(cfg.MaxUploadBytes))

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())

	events := container.EventService

	r.GET("/health", handlers.Health())
	r.GET("/", handlers.Homepage(events, cfg.HomepageFailureMode == config.HomepageDegraded))
	r.GET("/login", handlers.LoginPage())

	// Admin routes are open; there is no authentication in front of them.
	admin := r.Group(handlers.AdminPath)
	{
		admin.GET("", handlers.AdminPage(events))
		admin.POST("/add-event", handlers.AddEvent(events, cfg.MaxUploadBytes))
		admin.POST("/delete-event/:id", handlers.DeleteEvent(events))
	}

	return r
}
