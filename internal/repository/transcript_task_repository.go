package repository

import (
	"github.com/fadilmartias/transcript-analyzer/internal/model"
	"gorm.io/gorm"
)

type TranscriptTaskRepository struct {
	db *gorm.DB
}

func NewTranscriptTaskRepository(db *gorm.DB) *TranscriptTaskRepository {
	return &TranscriptTaskRepository{db}
}

func (r *TranscriptTaskRepository) CreateTask(task *model.TranscriptTask) error {
	return r.db.Create(task).Error
}

func (r *TranscriptTaskRepository) UpdateTask(task *model.TranscriptTask) error {
	return r.db.Save(task).Error
}

func (r *TranscriptTaskRepository) FindTaskByID(id string) (*model.TranscriptTask, error) {
	var task model.TranscriptTask
	err := r.db.First(&task, "id = ?", id).Error
	return &task, err
}
