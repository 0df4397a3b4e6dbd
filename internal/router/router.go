package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/freelanceflow/freelance-flow-api/internal/auth"
	"github.com/freelanceflow/freelance-flow-api/internal/handlers"
	"github.com/freelanceflow/freelance-flow-api/internal/middleware"
	"github.com/freelanceflow/freelance-flow-api/internal/observability"
)

// Deps holds everything the router wires together. Constructed once at
// startup and passed in explicitly.
type Deps struct {
	Issuer         *auth.TokenIssuer
	AuthHandler    *handlers.AuthHandler
	ClientHandler  *handlers.ClientHandler
	ProjectHandler *handlers.ProjectHandler
	TaskHandler    *handlers.TaskHandler
	CORSOrigins    []string
}

// New builds the HTTP engine with all routes registered.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(observability.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middleware.RequireAuth(deps.Issuer)

	r.GET("/", handlers.Home)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", deps.AuthHandler.Register)
			authRoutes.POST("/login", deps.AuthHandler.Login)
			authRoutes.POST("/refresh", middleware.RequireRefreshToken(deps.Issuer), deps.AuthHandler.Refresh)
			authRoutes.GET("/me", requireAuth, deps.AuthHandler.Me)
		}

		clients := api.Group("/clients", requireAuth)
		{
			clients.GET("", deps.ClientHandler.ListClients)
			clients.POST("", deps.ClientHandler.CreateClient)
			clients.GET("/:id", deps.ClientHandler.GetClient)
			clients.PATCH("/:id", deps.ClientHandler.UpdateClient)
			clients.DELETE("/:id", deps.ClientHandler.DeleteClient)
		}

		projects := api.Group("/projects", requireAuth)
		{
			projects.GET("", deps.ProjectHandler.ListProjects)
			projects.POST("", deps.ProjectHandler.CreateProject)
			projects.GET("/:id", deps.ProjectHandler.GetProject)
			projects.PATCH("/:id", deps.ProjectHandler.UpdateProject)
			projects.DELETE("/:id", deps.ProjectHandler.DeleteProject)
		}

		tasks := api.Group("/tasks", requireAuth)
		{
			tasks.GET("", deps.TaskHandler.ListTasks)
			tasks.POST("", deps.TaskHandler.CreateTask)
			tasks.GET("/:id", deps.TaskHandler.GetTask)
			tasks.PATCH("/:id", deps.TaskHandler.UpdateTask)
			tasks.DELETE("/:id", deps.TaskHandler.DeleteTask)
		}
	}

	return r
}
