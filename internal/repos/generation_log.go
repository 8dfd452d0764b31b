package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/linguaclass/b1dialog-backend/internal/logger"
  "github.com/linguaclass/b1dialog-backend/internal/types"
)

type GenerationLogRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.GenerationLog) error
}

type generationLogRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewGenerationLogRepo(db *gorm.DB, baseLog *logger.Logger) GenerationLogRepo {
  repoLog := baseLog.With("repo", "GenerationLogRepo")
  return &generationLogRepo{db: db, log: repoLog}
}

func (r *generationLogRepo) Create(ctx context.Context, tx *gorm.DB, row *types.GenerationLog) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
    return storeErr("create generation log", err)
  }
  return nil
}
