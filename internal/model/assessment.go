package model

import (
	"encoding/json"
	"time"
)

// Assessment status lifecycle. A record is created in_progress when the
// user finishes answering, then moves to completed or failed depending on
// how analysis generation went. Failed records keep their response snapshot
// so analysis can be retried without re-answering.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// AssessmentRecord is one full assessment pass: the response collection,
// the captured demographics, and the resulting markdown analysis.
type AssessmentRecord struct {
	UUIDBase
	UserID       string          `gorm:"index;size:64;not null" json:"userId"`
	Responses    json.RawMessage `gorm:"type:json;not null" json:"responses"` // []QuestionResponse
	Demographics json.RawMessage `gorm:"type:json" json:"demographics"`       // UserDemographics
	Analysis     string          `gorm:"type:mediumtext" json:"analysis,omitempty"`
	Status       string          `gorm:"size:20;default:'in_progress'" json:"status"`
	LastError    string          `gorm:"type:text" json:"lastError,omitempty"`
	TokensUsed   int             `gorm:"default:0" json:"tokensUsed"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
}

func (AssessmentRecord) TableName() string {
	return "assessments"
}
