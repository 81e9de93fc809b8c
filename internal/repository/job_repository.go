package repository

import (
	"github.com/fadilmartias/talent-sourcer/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// SaveJob inserts or replaces the job by primary key.
func (r *JobRepository) SaveJob(job *model.Job) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(job).Error
}

func (r *JobRepository) FindJobByID(id string) (*model.Job, error) {
	var job model.Job
	err := r.db.First(&job, "id = ?", id).Error
	return &job, err
}
