package repos

import (
  "context"
  "errors"

  "gorm.io/gorm"

  "github.com/linguaclass/b1dialog-backend/internal/logger"
  "github.com/linguaclass/b1dialog-backend/internal/types"
)

type ProgressRepo interface {
  // GetByKey returns (nil, nil) when no row exists for the triple; the
  // caller treats that as "no prior state", not a failure.
  GetByKey(ctx context.Context, tx *gorm.DB, classCode, participantID, topicID string) (*types.ProgressSummary, error)
  // Upsert inserts or fully replaces the narrative for the triple. At most
  // one row per (class_code, participant_id, topic_id) ever exists.
  Upsert(ctx context.Context, tx *gorm.DB, row *types.ProgressSummary) error
}

type progressRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRepo {
  repoLog := baseLog.With("repo", "ProgressRepo")
  return &progressRepo{db: db, log: repoLog}
}

func (r *progressRepo) GetByKey(ctx context.Context, tx *gorm.DB, classCode, participantID, topicID string) (*types.ProgressSummary, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var row types.ProgressSummary
  err := transaction.WithContext(ctx).
    Where("class_code = ? AND participant_id = ? AND topic_id = ?", classCode, participantID, topicID).
    First(&row).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, storeErr("get progress", err)
  }
  return &row, nil
}

func (r *progressRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.ProgressSummary) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  // Upsert by unique class_code + participant_id + topic_id
  if err := transaction.WithContext(ctx).
    Where("class_code = ? AND participant_id = ? AND topic_id = ?", row.ClassCode, row.ParticipantID, row.TopicID).
    Assign(map[string]interface{}{
      "progress_summary": row.ProgressSummary,
      "updated_at":       row.UpdatedAt,
    }).
    FirstOrCreate(row).Error; err != nil {
    return storeErr("upsert progress", err)
  }
  return nil
}
