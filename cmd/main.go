package main

import (
  "fmt"
  "os"

  "github.com/joho/godotenv"

  "github.com/linguaclass/b1dialog-backend/internal/clients/openai"
  "github.com/linguaclass/b1dialog-backend/internal/db"
  "github.com/linguaclass/b1dialog-backend/internal/handlers"
  "github.com/linguaclass/b1dialog-backend/internal/logger"
  "github.com/linguaclass/b1dialog-backend/internal/repos"
  "github.com/linguaclass/b1dialog-backend/internal/server"
  "github.com/linguaclass/b1dialog-backend/internal/services"
  "github.com/linguaclass/b1dialog-backend/internal/utils"
)

func main() {
  // .env is optional; real deployments set the environment directly.
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up repos from main...")
  sessionRepo := repos.NewSessionRepo(thePG, log)
  dialogResultRepo := repos.NewDialogResultRepo(thePG, log)
  dialogSessionRepo := repos.NewDialogSessionRepo(thePG, log)
  progressRepo := repos.NewProgressRepo(thePG, log)
  generationLogRepo := repos.NewGenerationLogRepo(thePG, log)

  // Clients
  openaiClient, err := openai.NewClient(log)
  if err != nil {
    log.Error("Could not init OpenAI client", "error", err)
    os.Exit(1)
  }

  // Services
  log.Info("Setting up services from main...")
  sessionService := services.NewSessionService(thePG, log, sessionRepo, dialogResultRepo)
  dialogService := services.NewDialogService(thePG, log, dialogSessionRepo, progressRepo, generationLogRepo, openaiClient)
  progressService := services.NewProgressService(thePG, log, progressRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  sessionHandler := handlers.NewSessionHandler(log, sessionService)
  dialogHandler := handlers.NewDialogHandler(log, dialogService)
  progressHandler := handlers.NewProgressHandler(log, progressService)

  // Router
  router := server.NewRouter(server.RouterConfig{
    SessionHandler:  sessionHandler,
    DialogHandler:   dialogHandler,
    ProgressHandler: progressHandler,
  })

  port := utils.GetEnv("PORT", "8000", log)
  log.Info("Server listening", "port", port)
  if err := router.Run("0.0.0.0:" + port); err != nil {
    log.Error("Server failed", "error", err)
    os.Exit(1)
  }
}
