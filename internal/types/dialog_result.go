package types

import (
	"time"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DialogResult is the append-only B1 dialog result record: one row per
// finished exercise, inserted once and immutable afterwards.
type DialogResult struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ClassCode       string         `gorm:"column:class_code;not null;index" json:"class_code"`
	ParticipantID   string         `gorm:"column:participant_id;not null;index" json:"participant_id"`
	LessonID        string         `gorm:"column:lesson_id;not null" json:"lesson_id"`
	Score           float64        `gorm:"column:score;not null" json:"score"`
	MaxScore        float64        `gorm:"column:max_score;not null" json:"max_score"`
	Level           string         `gorm:"column:level;not null" json:"level"`
	DurationSeconds *int           `gorm:"column:duration_seconds" json:"duration_seconds,omitempty"`
	ResultJSON      datatypes.JSON `gorm:"type:jsonb;column:result_json" json:"result_json,omitempty"`
	CreatedAt       time.Time      `gorm:"not null" json:"created_at"`
}

func (DialogResult) TableName() string { return "b1_dialog_results" }
