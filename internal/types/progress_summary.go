package types

import (
	"time"
	"github.com/google/uuid"
)

// ProgressSummary holds the single cumulative narrative per
// (class, participant, topic). The text is fully replaced on every upsert;
// merging with prior state happens in the generation prompt, not here.
type ProgressSummary struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClassCode       string    `gorm:"column:class_code;not null;index:idx_progress_key,unique" json:"class_code"`
	ParticipantID   string    `gorm:"column:participant_id;not null;index:idx_progress_key,unique" json:"participant_id"`
	TopicID         string    `gorm:"column:topic_id;not null;index:idx_progress_key,unique" json:"topic_id"`
	ProgressSummary string    `gorm:"column:progress_summary;not null" json:"progress_summary"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (ProgressSummary) TableName() string { return "b1_progress" }
