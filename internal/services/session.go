package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/linguaclass/b1dialog-backend/internal/logger"
	"github.com/linguaclass/b1dialog-backend/internal/repos"
	"github.com/linguaclass/b1dialog-backend/internal/types"
)

type SessionService interface {
	RecordSession(ctx context.Context, tx *gorm.DB, in RecordSessionInput) error
	ListSessions(ctx context.Context, tx *gorm.DB, classCode, participantID string) ([]*types.Session, error)
	RecordDialogResult(ctx context.Context, tx *gorm.DB, in RecordDialogResultInput) error
	ListDialogResults(ctx context.Context, tx *gorm.DB, classCode string) ([]*types.DialogResult, error)
}

type RecordSessionInput struct {
	ClassCode       string
	ParticipantID   string
	LessonID        string
	SessionType     string
	Score           *float64
	MaxScore        *float64
	DurationSeconds *int
}

type RecordDialogResultInput struct {
	ClassCode       string
	ParticipantID   string
	LessonID        string
	Score           *float64
	MaxScore        *float64
	Level           string
	DurationSeconds *int
	ResultJSON      json.RawMessage
}

type sessionService struct {
	db          *gorm.DB
	log         *logger.Logger
	sessionRepo repos.SessionRepo
	resultRepo  repos.DialogResultRepo
}

func NewSessionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	sessionRepo repos.SessionRepo,
	resultRepo repos.DialogResultRepo,
) SessionService {
	serviceLog := baseLog.With("service", "SessionService")
	return &sessionService{
		db:          db,
		log:         serviceLog,
		sessionRepo: sessionRepo,
		resultRepo:  resultRepo,
	}
}

func (s *sessionService) RecordSession(ctx context.Context, tx *gorm.DB, in RecordSessionInput) error {
	if in.ClassCode == "" || in.ParticipantID == "" || in.LessonID == "" || in.SessionType == "" {
		return newValidationError("Missing required fields")
	}

	row := &types.Session{
		ID:              uuid.New(),
		ClassCode:       in.ClassCode,
		ParticipantID:   in.ParticipantID,
		LessonID:        in.LessonID,
		SessionType:     in.SessionType,
		Score:           in.Score,
		MaxScore:        in.MaxScore,
		DurationSeconds: in.DurationSeconds,
		CreatedAt:       time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, tx, row); err != nil {
		s.log.Error("RecordSession failed", "error", err)
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

func (s *sessionService) ListSessions(ctx context.Context, tx *gorm.DB, classCode, participantID string) ([]*types.Session, error) {
	if classCode == "" {
		return nil, newValidationError("Missing class")
	}
	rows, err := s.sessionRepo.ListByClass(ctx, tx, classCode, participantID)
	if err != nil {
		s.log.Error("ListSessions failed", "error", err)
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return rows, nil
}

func (s *sessionService) RecordDialogResult(ctx context.Context, tx *gorm.DB, in RecordDialogResultInput) error {
	if in.ClassCode == "" || in.ParticipantID == "" || in.LessonID == "" ||
		in.Score == nil || in.MaxScore == nil || in.Level == "" {
		return newValidationError("Missing required fields")
	}

	row := &types.DialogResult{
		ID:              uuid.New(),
		ClassCode:       in.ClassCode,
		ParticipantID:   in.ParticipantID,
		LessonID:        in.LessonID,
		Score:           *in.Score,
		MaxScore:        *in.MaxScore,
		Level:           in.Level,
		DurationSeconds: in.DurationSeconds,
		ResultJSON:      datatypes.JSON(in.ResultJSON),
		CreatedAt:       time.Now(),
	}
	if err := s.resultRepo.Create(ctx, tx, row); err != nil {
		s.log.Error("RecordDialogResult failed", "error", err)
		return fmt.Errorf("record dialog result: %w", err)
	}
	return nil
}

func (s *sessionService) ListDialogResults(ctx context.Context, tx *gorm.DB, classCode string) ([]*types.DialogResult, error) {
	if classCode == "" {
		return nil, newValidationError("Missing class")
	}
	rows, err := s.resultRepo.ListByClass(ctx, tx, classCode)
	if err != nil {
		s.log.Error("ListDialogResults failed", "error", err)
		return nil, fmt.Errorf("list dialog results: %w", err)
	}
	return rows, nil
}
