package types

import (
	"time"
	"github.com/google/uuid"
)

// GenerationLog records every narrative-generation call, successful or not.
// Appending a row is best effort and never fails the request that caused it.
type GenerationLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClassCode     string    `gorm:"column:class_code;not null;index" json:"class_code"`
	ParticipantID string    `gorm:"column:participant_id;not null" json:"participant_id"`
	TopicID       string    `gorm:"column:topic_id;not null" json:"topic_id"`
	Model         string    `gorm:"column:model;not null" json:"model"`
	SystemPrompt  string    `gorm:"column:system_prompt" json:"system_prompt"`
	UserPrompt    string    `gorm:"column:user_prompt" json:"user_prompt"`
	Response      string    `gorm:"column:response" json:"response"`
	Success       bool      `gorm:"column:success;not null" json:"success"`
	Error         string    `gorm:"column:error" json:"error"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (GenerationLog) TableName() string { return "b1_generation_log" }
