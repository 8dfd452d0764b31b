package handlers

import (
  "github.com/gin-gonic/gin"

  "github.com/linguaclass/b1dialog-backend/internal/logger"
  "github.com/linguaclass/b1dialog-backend/internal/services"
)

type ProgressHandler struct {
  log *logger.Logger
  svc services.ProgressService
}

func NewProgressHandler(log *logger.Logger, svc services.ProgressService) *ProgressHandler {
  return &ProgressHandler{
    log: log.With("handler", "ProgressHandler"),
    svc: svc,
  }
}

// GET /b1-progress?class=...&participant=...&topic=...
// Absence of a progress row is a null row, not an error.
func (h *ProgressHandler) GetProgress(c *gin.Context) {
  row, err := h.svc.GetProgress(c.Request.Context(), nil, c.Query("class"), c.Query("participant"), c.Query("topic"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"row": row})
}
