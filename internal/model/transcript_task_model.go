package model

import (
	"time"

	"github.com/google/uuid"
)

type TranscriptTask struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RawText       string    `gorm:"type:text" json:"raw_text"`
	University    string    `gorm:"type:varchar(255)" json:"university"`
	Status        string    `gorm:"type:varchar(50)" json:"status"` // e.g. "processing", "completed", "failed"
	OverallScore  float64   `gorm:"type:float" json:"overall_score"`
	CumulativeGPA float64   `gorm:"type:float" json:"cumulative_gpa"`
	AdjustedGPA   float64   `gorm:"type:float" json:"adjusted_gpa"`
	Percentile    float64   `gorm:"type:float" json:"percentile"`
	Breakdown     string    `gorm:"type:jsonb" json:"breakdown"`
	Calibration   string    `gorm:"type:jsonb" json:"calibration"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
