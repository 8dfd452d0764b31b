package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/linguaclass/b1dialog-backend/internal/logger"
  "github.com/linguaclass/b1dialog-backend/internal/types"
)

type DialogResultRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.DialogResult) error
  ListByClass(ctx context.Context, tx *gorm.DB, classCode string) ([]*types.DialogResult, error)
}

type dialogResultRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewDialogResultRepo(db *gorm.DB, baseLog *logger.Logger) DialogResultRepo {
  repoLog := baseLog.With("repo", "DialogResultRepo")
  return &dialogResultRepo{db: db, log: repoLog}
}

func (r *dialogResultRepo) Create(ctx context.Context, tx *gorm.DB, row *types.DialogResult) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
    return storeErr("create dialog result", err)
  }
  return nil
}

func (r *dialogResultRepo) ListByClass(ctx context.Context, tx *gorm.DB, classCode string) ([]*types.DialogResult, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  results := []*types.DialogResult{}
  if err := transaction.WithContext(ctx).
    Where("class_code = ?", classCode).
    Order("created_at ASC").
    Find(&results).Error; err != nil {
    return nil, storeErr("list dialog results", err)
  }
  return results, nil
}
