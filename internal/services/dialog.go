package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/linguaclass/b1dialog-backend/internal/clients/openai"
	"github.com/linguaclass/b1dialog-backend/internal/logger"
	"github.com/linguaclass/b1dialog-backend/internal/repos"
	"github.com/linguaclass/b1dialog-backend/internal/types"
)

const defaultDifficultyLevel = "B1"

type DialogService interface {
	// StartSession creates a dialog session with a server-assigned start time
	// and returns its generated id.
	StartSession(ctx context.Context, tx *gorm.DB, in StartSessionInput) (uuid.UUID, error)
	// SubmitResults runs the completion workflow: validate, complete the
	// session exactly once, compute the server-authoritative duration,
	// regenerate the progress narrative from prior state plus the new result,
	// and upsert it.
	SubmitResults(ctx context.Context, tx *gorm.DB, in SubmitResultsInput) error
	ListSessions(ctx context.Context, tx *gorm.DB, classCode, participantID string) ([]*types.DialogSession, error)
}

type StartSessionInput struct {
	ClassCode       string
	ParticipantID   string
	TopicID         string
	DifficultyLevel string
}

type SubmitResultsInput struct {
	ClassCode       string
	ParticipantID   string
	TopicID         string
	DifficultyLevel string
	ScoreTotal      *float64
	MaxScore        *float64
	AnalysisJSON    json.RawMessage
	SessionID       string
}

type dialogService struct {
	db           *gorm.DB
	log          *logger.Logger
	sessionRepo  repos.DialogSessionRepo
	progressRepo repos.ProgressRepo
	genLogRepo   repos.GenerationLogRepo
	aiClient     openai.Client

	// now is swapped in tests to control duration computation.
	now func() time.Time
}

func NewDialogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	sessionRepo repos.DialogSessionRepo,
	progressRepo repos.ProgressRepo,
	genLogRepo repos.GenerationLogRepo,
	aiClient openai.Client,
) DialogService {
	serviceLog := baseLog.With("service", "DialogService")
	return &dialogService{
		db:           db,
		log:          serviceLog,
		sessionRepo:  sessionRepo,
		progressRepo: progressRepo,
		genLogRepo:   genLogRepo,
		aiClient:     aiClient,
		now:          time.Now,
	}
}

func (s *dialogService) StartSession(ctx context.Context, tx *gorm.DB, in StartSessionInput) (uuid.UUID, error) {
	if in.ClassCode == "" || in.ParticipantID == "" || in.TopicID == "" {
		return uuid.Nil, newValidationError("Missing required fields")
	}
	difficulty := in.DifficultyLevel
	if difficulty == "" {
		difficulty = defaultDifficultyLevel
	}

	now := s.now()
	row := &types.DialogSession{
		ID:              uuid.New(),
		ClassCode:       in.ClassCode,
		ParticipantID:   in.ParticipantID,
		TopicID:         in.TopicID,
		DifficultyLevel: difficulty,
		Completed:       false,
		StartedAt:       now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.sessionRepo.Create(ctx, tx, row); err != nil {
		s.log.Error("StartSession failed", "error", err)
		return uuid.Nil, fmt.Errorf("start session: %w", err)
	}
	s.log.Info("StartSession", "session_id", row.ID, "class_code", in.ClassCode, "topic_id", in.TopicID)
	return row.ID, nil
}

func (s *dialogService) SubmitResults(ctx context.Context, tx *gorm.DB, in SubmitResultsInput) error {
	if in.ClassCode == "" || in.ParticipantID == "" || in.TopicID == "" || in.DifficultyLevel == "" ||
		in.ScoreTotal == nil || in.MaxScore == nil || len(in.AnalysisJSON) == 0 || in.SessionID == "" {
		return newValidationError("Missing required fields")
	}
	sessionID, err := uuid.Parse(in.SessionID)
	if err != nil {
		return newValidationError("Invalid session_id")
	}

	session, err := s.sessionRepo.GetByID(ctx, tx, sessionID)
	if err != nil {
		s.log.Error("SubmitResults load session failed", "error", err)
		return fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if session.Completed {
		return ErrAlreadyCompleted
	}

	// Timing is server-authoritative: the caller never supplies a duration.
	durationSec := int(s.now().Sub(session.StartedAt).Seconds())
	if durationSec < 0 {
		durationSec = 0
	}

	// The conditional update is the real idempotency guard; the Completed
	// check above only short-circuits. Two racing submissions both reach this
	// point, exactly one gets RowsAffected == 1.
	updated, err := s.sessionRepo.CompleteIfPending(ctx, tx, sessionID, repos.DialogSessionCompletion{
		ScoreTotal:   *in.ScoreTotal,
		MaxScore:     *in.MaxScore,
		DurationSec:  durationSec,
		AnalysisJSON: datatypes.JSON(in.AnalysisJSON),
	})
	if err != nil {
		s.log.Error("SubmitResults complete session failed", "error", err)
		return fmt.Errorf("complete session: %w", err)
	}
	if !updated {
		return ErrAlreadyCompleted
	}

	prior, err := s.progressRepo.GetByKey(ctx, tx, in.ClassCode, in.ParticipantID, in.TopicID)
	if err != nil {
		s.log.Error("SubmitResults load progress failed", "error", err)
		return fmt.Errorf("load progress: %w", err)
	}

	var prompt string
	if prior != nil {
		prompt = buildUpdateProgressPrompt(in.TopicID, in.DifficultyLevel, *in.ScoreTotal, *in.MaxScore, in.AnalysisJSON, prior.ProgressSummary)
	} else {
		prompt = buildInitialProgressPrompt(in.TopicID, in.DifficultyLevel, *in.ScoreTotal, *in.MaxScore, in.AnalysisJSON)
	}

	narrative, genErr := s.aiClient.GenerateText(ctx, progressPersona, prompt, progressTemperature)
	s.appendGenerationLog(ctx, tx, in, prompt, narrative, genErr)
	if genErr != nil {
		// The session is already completed at this point; the stale progress
		// row is an accepted inconsistency window.
		s.log.Error("SubmitResults generation failed", "error", genErr, "session_id", sessionID)
		return fmt.Errorf("generate progress summary: %w", genErr)
	}

	row := &types.ProgressSummary{
		ID:              uuid.New(),
		ClassCode:       in.ClassCode,
		ParticipantID:   in.ParticipantID,
		TopicID:         in.TopicID,
		ProgressSummary: narrative,
		UpdatedAt:       s.now(),
	}
	if err := s.progressRepo.Upsert(ctx, tx, row); err != nil {
		s.log.Error("SubmitResults upsert progress failed", "error", err)
		return fmt.Errorf("upsert progress: %w", err)
	}

	s.log.Info("SubmitResults", "session_id", sessionID, "class_code", in.ClassCode, "topic_id", in.TopicID, "duration_sec", durationSec)
	return nil
}

func (s *dialogService) ListSessions(ctx context.Context, tx *gorm.DB, classCode, participantID string) ([]*types.DialogSession, error) {
	if classCode == "" {
		return nil, newValidationError("Missing class")
	}
	rows, err := s.sessionRepo.ListByClass(ctx, tx, classCode, participantID)
	if err != nil {
		s.log.Error("ListSessions failed", "error", err)
		return nil, fmt.Errorf("list dialog sessions: %w", err)
	}
	return rows, nil
}

func (s *dialogService) appendGenerationLog(ctx context.Context, tx *gorm.DB, in SubmitResultsInput, prompt, narrative string, genErr error) {
	row := &types.GenerationLog{
		ID:            uuid.New(),
		ClassCode:     in.ClassCode,
		ParticipantID: in.ParticipantID,
		TopicID:       in.TopicID,
		Model:         s.aiClient.Model(),
		SystemPrompt:  progressPersona,
		UserPrompt:    prompt,
		Response:      narrative,
		Success:       genErr == nil,
		CreatedAt:     s.now(),
	}
	if genErr != nil {
		row.Error = genErr.Error()
	}
	if err := s.genLogRepo.Create(ctx, tx, row); err != nil {
		s.log.Warn("Failed to append generation log", "error", err)
	}
}
