package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LoadRunStatusRunning  = "running"
	LoadRunStatusComplete = "complete"
	LoadRunStatusFailed   = "failed"
)

// LoadRun records one loader pass over a model version.
type LoadRun struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ModelVersion string     `gorm:"not null" json:"model_version"`
	Status       string     `gorm:"not null;default:running" json:"status"`
	Error        *string    `json:"error,omitempty"`
	StartedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

func (LoadRun) TableName() string {
	return "load_runs"
}
