package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// CourseDifficulty is one row of the read-only difficulty catalog. ID follows
// the "{university}_{dept}{number}" convention; Aliases is a comma-separated
// list of alternate codes ("COMPSCI 61A,CS 61A").
type CourseDifficulty struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	University  string          `gorm:"type:varchar(255);index" json:"university"`
	Department  string          `gorm:"type:varchar(50);index:idx_dept_number" json:"department"`
	Number      string          `gorm:"type:varchar(50);index:idx_dept_number" json:"number"`
	Name        string          `gorm:"type:varchar(255)" json:"name"`
	Aliases     string          `gorm:"type:text" json:"aliases"`
	Difficulty  float64         `gorm:"type:float" json:"difficulty"`
	IsTechnical bool            `json:"is_technical"`
	Embedding   pgvector.Vector `gorm:"type:vector(3072)" json:"-"` // pakai pgvector
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (c *CourseDifficulty) TableName() string {
	return "course_difficulties"
}
