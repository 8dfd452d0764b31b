package handlers

import (
  "encoding/json"
  "fmt"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/linguaclass/b1dialog-backend/internal/logger"
  "github.com/linguaclass/b1dialog-backend/internal/services"
)

type SessionHandler struct {
  log *logger.Logger
  svc services.SessionService
}

func NewSessionHandler(log *logger.Logger, svc services.SessionService) *SessionHandler {
  return &SessionHandler{
    log: log.With("handler", "SessionHandler"),
    svc: svc,
  }
}

// POST /sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
  var req struct {
    ClassCode       string   `json:"class_code"`
    ParticipantID   string   `json:"participant_id"`
    LessonID        string   `json:"lesson_id"`
    SessionType     string   `json:"session_type"`
    Score           *float64 `json:"score"`
    MaxScore        *float64 `json:"max_score"`
    DurationSeconds *int     `json:"duration_seconds"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid request body"))
    return
  }

  err := h.svc.RecordSession(c.Request.Context(), nil, services.RecordSessionInput{
    ClassCode:       req.ClassCode,
    ParticipantID:   req.ParticipantID,
    LessonID:        req.LessonID,
    SessionType:     req.SessionType,
    Score:           req.Score,
    MaxScore:        req.MaxScore,
    DurationSeconds: req.DurationSeconds,
  })
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, nil)
}

// GET /sessions?class=...&participant=...
func (h *SessionHandler) ListSessions(c *gin.Context) {
  rows, err := h.svc.ListSessions(c.Request.Context(), nil, c.Query("class"), c.Query("participant"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"rows": rows})
}

// POST /dialog-results
func (h *SessionHandler) CreateDialogResult(c *gin.Context) {
  var req struct {
    ClassCode       string          `json:"class_code"`
    ParticipantID   string          `json:"participant_id"`
    LessonID        string          `json:"lesson_id"`
    Score           *float64        `json:"score"`
    MaxScore        *float64        `json:"max_score"`
    Level           string          `json:"level"`
    DurationSeconds *int            `json:"duration_seconds"`
    ResultJSON      json.RawMessage `json:"result_json"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid request body"))
    return
  }

  err := h.svc.RecordDialogResult(c.Request.Context(), nil, services.RecordDialogResultInput{
    ClassCode:       req.ClassCode,
    ParticipantID:   req.ParticipantID,
    LessonID:        req.LessonID,
    Score:           req.Score,
    MaxScore:        req.MaxScore,
    Level:           req.Level,
    DurationSeconds: req.DurationSeconds,
    ResultJSON:      req.ResultJSON,
  })
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, nil)
}

// GET /dialog-results?class=...
func (h *SessionHandler) ListDialogResults(c *gin.Context) {
  rows, err := h.svc.ListDialogResults(c.Request.Context(), nil, c.Query("class"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"rows": rows})
}
