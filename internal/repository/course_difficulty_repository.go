package repository

import (
	"errors"
	"strings"

	"github.com/fadilmartias/transcript-analyzer/internal/model"
	"github.com/fadilmartias/transcript-analyzer/internal/scoring"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseDifficultyRepository struct {
	db *gorm.DB
}

func NewCourseDifficultyRepository(db *gorm.DB) *CourseDifficultyRepository {
	return &CourseDifficultyRepository{db}
}

// Lookup implements scoring.Catalog: exact id first, then alias, then a
// department+number match across universities. A miss is not an error.
func (r *CourseDifficultyRepository) Lookup(university, department, number string) (scoring.CatalogEntry, bool) {
	var row model.CourseDifficulty

	id := scoring.CatalogID(university, department, number)
	err := r.db.First(&row, "id = ?", id).Error
	if err == nil {
		return toCatalogEntry(row), true
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return scoring.CatalogEntry{}, false
	}

	alias := department + " " + number
	err = r.db.First(&row, "',' || replace(aliases, ' ', '') || ',' LIKE ?",
		"%,"+strings.ReplaceAll(alias, " ", "")+",%").Error
	if err == nil {
		return toCatalogEntry(row), true
	}

	err = r.db.First(&row, "department = ? AND number = ?", department, number).Error
	if err == nil {
		return toCatalogEntry(row), true
	}
	return scoring.CatalogEntry{}, false
}

func toCatalogEntry(row model.CourseDifficulty) scoring.CatalogEntry {
	var aliases []string
	if row.Aliases != "" {
		aliases = strings.Split(row.Aliases, ",")
	}
	return scoring.CatalogEntry{
		ID:          row.ID,
		University:  row.University,
		Department:  row.Department,
		Number:      row.Number,
		Aliases:     aliases,
		Difficulty:  row.Difficulty,
		IsTechnical: row.IsTechnical,
	}
}

// SearchSimilar returns the topK catalog entries closest to an embedding.
func (r *CourseDifficultyRepository) SearchSimilar(embedding pgvector.Vector, topK int) ([]model.CourseDifficulty, error) {
	var rows []model.CourseDifficulty

	// query pgvector <-> operator (Euclidean distance / cosine)
	err := r.db.Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM course_difficulties
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, embedding, topK).Scan(&rows).Error

	return rows, err
}

// Upsert inserts or replaces a catalog entry by id.
func (r *CourseDifficultyRepository) Upsert(row *model.CourseDifficulty) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(row).Error
}

func (r *CourseDifficultyRepository) List(page, pageSize int) ([]model.CourseDifficulty, int64, error) {
	var rows []model.CourseDifficulty
	var total int64

	if err := r.db.Model(&model.CourseDifficulty{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	return rows, total, err
}
