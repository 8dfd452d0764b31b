package handlers

import (
  "encoding/json"
  "fmt"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/linguaclass/b1dialog-backend/internal/logger"
  "github.com/linguaclass/b1dialog-backend/internal/services"
)

type DialogHandler struct {
  log *logger.Logger
  svc services.DialogService
}

func NewDialogHandler(log *logger.Logger, svc services.DialogService) *DialogHandler {
  return &DialogHandler{
    log: log.With("handler", "DialogHandler"),
    svc: svc,
  }
}

// POST /b1-start
func (h *DialogHandler) StartSession(c *gin.Context) {
  var req struct {
    ClassCode       string `json:"class_code"`
    ParticipantID   string `json:"participant_id"`
    TopicID         string `json:"topic_id"`
    DifficultyLevel string `json:"difficulty_level"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid request body"))
    return
  }

  sessionID, err := h.svc.StartSession(c.Request.Context(), nil, services.StartSessionInput{
    ClassCode:       req.ClassCode,
    ParticipantID:   req.ParticipantID,
    TopicID:         req.TopicID,
    DifficultyLevel: req.DifficultyLevel,
  })
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"session_id": sessionID})
}

// POST /b1-results
func (h *DialogHandler) SubmitResults(c *gin.Context) {
  var req struct {
    ClassCode       string          `json:"class_code"`
    ParticipantID   string          `json:"participant_id"`
    TopicID         string          `json:"topic_id"`
    DifficultyLevel string          `json:"difficulty_level"`
    ScoreTotal      *float64        `json:"score_total"`
    MaxScore        *float64        `json:"max_score"`
    AnalysisJSON    json.RawMessage `json:"analysis_json"`
    SessionID       string          `json:"session_id"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid request body"))
    return
  }

  err := h.svc.SubmitResults(c.Request.Context(), nil, services.SubmitResultsInput{
    ClassCode:       req.ClassCode,
    ParticipantID:   req.ParticipantID,
    TopicID:         req.TopicID,
    DifficultyLevel: req.DifficultyLevel,
    ScoreTotal:      req.ScoreTotal,
    MaxScore:        req.MaxScore,
    AnalysisJSON:    req.AnalysisJSON,
    SessionID:       req.SessionID,
  })
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, nil)
}

// GET /b1-results?class=...&participant=...
func (h *DialogHandler) ListSessions(c *gin.Context) {
  rows, err := h.svc.ListSessions(c.Request.Context(), nil, c.Query("class"), c.Query("participant"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"rows": rows})
}
