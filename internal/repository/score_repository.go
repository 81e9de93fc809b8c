package repository

import (
	"github.com/fadilmartias/talent-sourcer/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db}
}

// SaveScoredCandidate upserts the flattened score row for the
// (candidate, job) pair.
func (r *ScoreRepository) SaveScoredCandidate(sc *model.ScoredCandidate, jobID string) error {
	row := model.NewCandidateScore(sc, jobID)
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error
}

// scoreAggregates receives the single-row result of the stats query.
type scoreAggregates struct {
	Total   int64
	Average float64
	Top     float64
}

// StatsByJob aggregates the persisted score rows for one job.
func (r *ScoreRepository) StatsByJob(jobID string) (total int64, average, top float64, err error) {
	var agg scoreAggregates
	err = r.db.Model(&model.CandidateScore{}).
		Select("COUNT(*) AS total, COALESCE(AVG(score), 0) AS average, COALESCE(MAX(score), 0) AS top").
		Where("job_id = ?", jobID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, 0, err
	}
	return agg.Total, agg.Average, agg.Top, nil
}
