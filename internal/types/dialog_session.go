package types

import (
	"time"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DialogSession is one B1 dialog attempt, bounded by a start and a completion
// event. The server assigns StartedAt; Completed flips false->true exactly
// once, on results submission.
type DialogSession struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ClassCode       string         `gorm:"column:class_code;not null;index" json:"class_code"`
	ParticipantID   string         `gorm:"column:participant_id;not null;index" json:"participant_id"`
	TopicID         string         `gorm:"column:topic_id;not null" json:"topic_id"`
	DifficultyLevel string         `gorm:"column:difficulty_level;not null" json:"difficulty_level"`
	ScoreTotal      *float64       `gorm:"column:score_total" json:"score_total,omitempty"`
	MaxScore        *float64       `gorm:"column:max_score" json:"max_score,omitempty"`
	DurationSec     *int           `gorm:"column:duration_sec" json:"duration_sec,omitempty"`
	AnalysisJSON    datatypes.JSON `gorm:"type:jsonb;column:analysis_json" json:"analysis_json,omitempty"`
	Completed       bool           `gorm:"column:completed;not null;default:false" json:"completed"`
	StartedAt       time.Time      `gorm:"column:started_at;not null" json:"started_at"`
	CreatedAt       time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null" json:"updated_at"`
}

func (DialogSession) TableName() string { return "b1_sessions" }
