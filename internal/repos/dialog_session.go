package repos

import (
  "context"
  "errors"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/linguaclass/b1dialog-backend/internal/logger"
  "github.com/linguaclass/b1dialog-backend/internal/types"
)

// DialogSessionCompletion carries the fields written when a session flips to
// completed.
type DialogSessionCompletion struct {
  ScoreTotal   float64
  MaxScore     float64
  DurationSec  int
  AnalysisJSON datatypes.JSON
}

type DialogSessionRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.DialogSession) error
  // GetByID returns (nil, nil) when no row exists; absence is not an error.
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DialogSession, error)
  // CompleteIfPending atomically flips completed false->true together with
  // the result fields. The returned bool is false when the session was
  // already completed (zero rows matched), which is the idempotency signal.
  CompleteIfPending(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields DialogSessionCompletion) (bool, error)
  ListByClass(ctx context.Context, tx *gorm.DB, classCode, participantID string) ([]*types.DialogSession, error)
}

type dialogSessionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewDialogSessionRepo(db *gorm.DB, baseLog *logger.Logger) DialogSessionRepo {
  repoLog := baseLog.With("repo", "DialogSessionRepo")
  return &dialogSessionRepo{db: db, log: repoLog}
}

func (r *dialogSessionRepo) Create(ctx context.Context, tx *gorm.DB, row *types.DialogSession) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
    return storeErr("create dialog session", err)
  }
  return nil
}

func (r *dialogSessionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DialogSession, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var row types.DialogSession
  err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&row).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, storeErr("get dialog session", err)
  }
  return &row, nil
}

func (r *dialogSessionRepo) CompleteIfPending(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields DialogSessionCompletion) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  res := transaction.WithContext(ctx).
    Model(&types.DialogSession{}).
    Where("id = ? AND completed = ?", id, false).
    Updates(map[string]interface{}{
      "score_total":   fields.ScoreTotal,
      "max_score":     fields.MaxScore,
      "duration_sec":  fields.DurationSec,
      "analysis_json": fields.AnalysisJSON,
      "completed":     true,
      "updated_at":    time.Now(),
    })
  if res.Error != nil {
    return false, storeErr("complete dialog session", res.Error)
  }
  return res.RowsAffected > 0, nil
}

func (r *dialogSessionRepo) ListByClass(ctx context.Context, tx *gorm.DB, classCode, participantID string) ([]*types.DialogSession, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  results := []*types.DialogSession{}
  query := transaction.WithContext(ctx).
    Where("class_code = ?", classCode)
  if participantID != "" {
    query = query.Where("participant_id = ?", participantID)
  }

  if err := query.Order("started_at ASC").Find(&results).Error; err != nil {
    return nil, storeErr("list dialog sessions", err)
  }
  return results, nil
}
