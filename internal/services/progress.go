package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/linguaclass/b1dialog-backend/internal/logger"
	"github.com/linguaclass/b1dialog-backend/internal/repos"
	"github.com/linguaclass/b1dialog-backend/internal/types"
)

type ProgressService interface {
	// GetProgress returns the single narrative row for the triple, or nil
	// when no submission has happened yet.
	GetProgress(ctx context.Context, tx *gorm.DB, classCode, participantID, topicID string) (*types.ProgressSummary, error)
}

type progressService struct {
	db           *gorm.DB
	log          *logger.Logger
	progressRepo repos.ProgressRepo
}

func NewProgressService(db *gorm.DB, baseLog *logger.Logger, progressRepo repos.ProgressRepo) ProgressService {
	serviceLog := baseLog.With("service", "ProgressService")
	return &progressService{
		db:           db,
		log:          serviceLog,
		progressRepo: progressRepo,
	}
}

func (s *progressService) GetProgress(ctx context.Context, tx *gorm.DB, classCode, participantID, topicID string) (*types.ProgressSummary, error) {
	if classCode == "" || participantID == "" || topicID == "" {
		return nil, newValidationError("Missing class, participant or topic")
	}
	row, err := s.progressRepo.GetByKey(ctx, tx, classCode, participantID, topicID)
	if err != nil {
		s.log.Error("GetProgress failed", "error", err)
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return row, nil
}
