package main

import (
	"strconv"

	"github.com/joho/godotenv"

	"github.com/tracklabs/projtrack/config"
	"github.com/tracklabs/projtrack/internal/api/v1/handlers"
	v1 "github.com/tracklabs/projtrack/internal/api/v1/routes"
	"github.com/tracklabs/projtrack/internal/api/v1/services"
	"github.com/tracklabs/projtrack/internal/app"
	"github.com/tracklabs/projtrack/internal/db"
	"github.com/tracklabs/projtrack/internal/db/repos"
	"github.com/tracklabs/projtrack/internal/logger"
)

func main() {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	logger.InitializeAndConfigure()

	dbPort, err := strconv.Atoi(config.GetEnv("DB_PORT", "5432"))
	if err != nil {
		logger.Fatalf("invalid DB_PORT: %v", err)
	}

	database, err := db.New(db.Options{
		Host:     config.GetEnv("DB_HOST", ""),
		User:     config.GetEnv("DB_USER", ""),
		Password: config.GetEnv("DB_PASSWORD", ""),
		DBName:   config.GetEnv("DB_NAME", ""),
		Port:     dbPort,
	})
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}

	projectRepo := repos.NewProjectRepository(database)
	projectService := services.NewProjectService(projectRepo)
	projectHandler := handlers.NewProjectHandler(projectService)

	application := app.New(projectHandler, app.Options{
		AllowedOrigins: config.GetEnv("ALLOWED_ORIGINS", ""),
	})

	addr := ":" + config.GetEnv("PORT", v1.DefaultPort)
	logger.Infof("listening on %s", addr)
	if err := application.Listen(addr); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
