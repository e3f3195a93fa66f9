package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kiran-dev/eventman/internal/container"
	"github.com/kiran-dev/eventman/internal/handlers"
	"github.com/kiran-dev/eventman/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{container.Config.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	requireAuth := middleware.RequireAuth(container.Tokens)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "eventman-api",
			})
		})

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", handlers.Register(container.AuthService))
			authRoutes.POST("/login", handlers.Login(container.AuthService))
			authRoutes.POST("/logout", handlers.Logout())
		}

		eventRoutes := api.Group("/events")
		{
			eventRoutes.GET("", handlers.ListEvents(container.EventService))
			eventRoutes.POST("/add", requireAuth, handlers.CreateEvent(container.EventService))
			eventRoutes.GET("/my-events", requireAuth, handlers.MyEvents(container.EventService))
			eventRoutes.GET("/:id", handlers.GetEvent(container.EventService))
			eventRoutes.PUT("/:id", requireAuth, handlers.UpdateEvent(container.EventService))
			eventRoutes.DELETE("/:id", requireAuth, handlers.DeleteEvent(container.EventService))
			eventRoutes.POST("/:id/register", requireAuth, handlers.RegisterForEvent(container.EventService))
			eventRoutes.GET("/:id/attendees", requireAuth, handlers.ListAttendees(container.EventService))
		}
	}

	return r
}
