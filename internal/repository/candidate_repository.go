package repository

import (
	"github.com/fadilmartias/talent-sourcer/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

// SaveCandidate inserts or replaces the candidate by primary key.
func (r *CandidateRepository) SaveCandidate(candidate *model.Candidate) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(candidate).Error
}
