package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/freelanceflow/freelance-flow-api/internal/auth"
	"github.com/freelanceflow/freelance-flow-api/internal/config"
	"github.com/freelanceflow/freelance-flow-api/internal/database"
	"github.com/freelanceflow/freelance-flow-api/internal/handlers"
	"github.com/freelanceflow/freelance-flow-api/internal/observability"
	"github.com/freelanceflow/freelance-flow-api/internal/repository"
	"github.com/freelanceflow/freelance-flow-api/internal/router"
	"github.com/freelanceflow/freelance-flow-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	if err := observability.InitSentry(cfg.SentryDSN, cfg.AppEnv); err != nil {
		log.Printf("Sentry disabled: %v", err)
	}
	defer observability.FlushSentry()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Services
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := services.NewAuthService(userRepo)
	clientService := services.NewClientService(clientRepo)
	projectService := services.NewProjectService(projectRepo, clientRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)

	// Handlers
	r := router.New(router.Deps{
		Issuer:         issuer,
		AuthHandler:    handlers.NewAuthHandler(authService, issuer),
		ClientHandler:  handlers.NewClientHandler(clientService),
		ProjectHandler: handlers.NewProjectHandler(projectService),
		TaskHandler:    handlers.NewTaskHandler(taskService),
		CORSOrigins:    cfg.CORSOrigins,
	})

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
