package types

import (
	"time"
	"github.com/google/uuid"
)

// Session is one append-only practice session record (the plain /sessions
// collection). Rows are never updated or deleted.
type Session struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClassCode       string    `gorm:"column:class_code;not null;index" json:"class_code"`
	ParticipantID   string    `gorm:"column:participant_id;not null;index" json:"participant_id"`
	LessonID        string    `gorm:"column:lesson_id;not null" json:"lesson_id"`
	SessionType     string    `gorm:"column:session_type;not null" json:"session_type"`
	Score           *float64  `gorm:"column:score" json:"score,omitempty"`
	MaxScore        *float64  `gorm:"column:max_score" json:"max_score,omitempty"`
	DurationSeconds *int      `gorm:"column:duration_seconds" json:"duration_seconds,omitempty"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}

func (Session) TableName() string { return "sessions" }
