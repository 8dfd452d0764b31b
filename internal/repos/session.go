package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/linguaclass/b1dialog-backend/internal/logger"
  "github.com/linguaclass/b1dialog-backend/internal/types"
)

type SessionRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.Session) error
  ListByClass(ctx context.Context, tx *gorm.DB, classCode, participantID string) ([]*types.Session, error)
}

type sessionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSessionRepo(db *gorm.DB, baseLog *logger.Logger) SessionRepo {
  repoLog := baseLog.With("repo", "SessionRepo")
  return &sessionRepo{db: db, log: repoLog}
}

func (r *sessionRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Session) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
    return storeErr("create session", err)
  }
  return nil
}

func (r *sessionRepo) ListByClass(ctx context.Context, tx *gorm.DB, classCode, participantID string) ([]*types.Session, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  results := []*types.Session{}
  query := transaction.WithContext(ctx).
    Where("class_code = ?", classCode)
  if participantID != "" {
    query = query.Where("participant_id = ?", participantID)
  }

  if err := query.Order("created_at ASC").Find(&results).Error; err != nil {
    return nil, storeErr("list sessions", err)
  }
  return results, nil
}
