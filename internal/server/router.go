package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/atelierhaus/atelier-backend/internal/handlers"
	"github.com/atelierhaus/atelier-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName    string
	AllowedOrigins []string
	UploadDir      string

	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	ProjectHandler *handlers.ProjectHandler
	LeadHandler    *handlers.LeadHandler
	ProductHandler *handlers.ProductHandler
	UploadHandler  *handlers.UploadHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware(cfg.ServiceName))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	if dir := strings.TrimSpace(cfg.UploadDir); dir != "" {
		router.Static("/uploads", dir)
	}

	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
		api.POST("/refresh", cfg.AuthHandler.Refresh)
		api.POST("/leads", cfg.LeadHandler.Capture)
		api.GET("/products", cfg.ProductHandler.List)
		api.GET("/products/:id", cfg.ProductHandler.Get)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.POST("/logout", cfg.AuthHandler.Logout)

		protected.POST("/projects", cfg.ProjectHandler.Create)
		protected.GET("/projects", cfg.ProjectHandler.List)
		protected.GET("/projects/:code", cfg.ProjectHandler.Get)
		protected.PUT("/projects/:code", cfg.ProjectHandler.Update)
		protected.PATCH("/projects/:code", cfg.ProjectHandler.Update)
		protected.DELETE("/projects/:code", cfg.ProjectHandler.Delete)

		protected.POST("/projects/:code/milestones", cfg.ProjectHandler.AddMilestone)
		protected.PATCH("/projects/:code/milestones/:id", cfg.ProjectHandler.UpdateMilestone)
		protected.POST("/projects/:code/materials", cfg.ProjectHandler.AppendMaterials)
		protected.POST("/projects/:code/designs", cfg.ProjectHandler.AppendDesigns)
		protected.POST("/projects/:code/media", cfg.ProjectHandler.AppendMedia)
		protected.POST("/projects/:code/attachments", cfg.ProjectHandler.AddAttachment)
		protected.PUT("/projects/:code/closure", cfg.ProjectHandler.UpsertClosure)

		protected.GET("/leads", cfg.LeadHandler.List)

		protected.POST("/products", cfg.ProductHandler.Create)
		protected.PUT("/products/:id", cfg.ProductHandler.Update)
		protected.DELETE("/products/:id", cfg.ProductHandler.Delete)

		protected.POST("/uploads", cfg.UploadHandler.Upload)
	}

	return router
}
