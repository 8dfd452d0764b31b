package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/linguaclass/b1dialog-backend/internal/handlers"
)

type RouterConfig struct {
  SessionHandler  *handlers.SessionHandler
  DialogHandler   *handlers.DialogHandler
  ProgressHandler *handlers.ProgressHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins:     []string{"*"},
    AllowMethods:     []string{"GET", "POST", "OPTIONS"},
    AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
    AllowCredentials: false,
  }))

  // Liveness
  router.GET("/", handlers.HealthCheck)

  // Plain session records
  router.POST("/sessions", cfg.SessionHandler.CreateSession)
  router.GET("/sessions", cfg.SessionHandler.ListSessions)

  // Append-only dialog results
  router.POST("/dialog-results", cfg.SessionHandler.CreateDialogResult)
  router.GET("/dialog-results", cfg.SessionHandler.ListDialogResults)

  // Dialog session workflow
  router.POST("/b1-start", cfg.DialogHandler.StartSession)
  router.POST("/b1-results", cfg.DialogHandler.SubmitResults)
  router.GET("/b1-results", cfg.DialogHandler.ListSessions)
  router.GET("/b1-progress", cfg.ProgressHandler.GetProgress)

  return router
}
