package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TranscriptTaskDTO struct {
	ID            uuid.UUID       `json:"id"`
	Status        string          `json:"status"` // e.g. "processing", "completed", "failed"
	University    string          `json:"university"`
	OverallScore  float64         `json:"overall_score"`
	CumulativeGPA float64         `json:"cumulative_gpa"`
	AdjustedGPA   float64         `json:"adjusted_gpa"`
	Percentile    float64         `json:"percentile"`
	Breakdown     json.RawMessage `json:"breakdown"`
	Calibration   json.RawMessage `json:"calibration"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
