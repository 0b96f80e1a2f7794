package models

import (
	"time"

	"github.com/google/uuid"
)

// RunMeta contains metadata about a single check run
type RunMeta struct {
	ID           string         `json:"id"`
	StartedAt    time.Time      `json:"started_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	Status       RunStatus      `json:"status"`
	YearFilter   int            `json:"year_filter,omitempty"`
	Quick        bool           `json:"quick,omitempty"`
	Workers      int            `json:"workers"`
	TotalDomains int            `json:"total_domains"`
	OutputPath   string         `json:"output_path,omitempty"`
	Summary      map[Status]int `json:"summary,omitempty"`
}

// NewRun creates a run record with initialized metadata
func NewRun(yearFilter int, quick bool, workers int) *RunMeta {
	return &RunMeta{
		ID:         uuid.New().String(),
		StartedAt:  time.Now(),
		Status:     RunPending,
		YearFilter: yearFilter,
		Quick:      quick,
		Workers:    workers,
	}
}
