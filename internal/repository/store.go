package repository

import (
	"gorm.io/gorm"

	"github.com/fadilmartias/talent-sourcer/internal/model"
)

// Store bundles the repositories into the persistence surface the
// orchestration consumes.
type Store struct {
	jobs       *JobRepository
	candidates *CandidateRepository
	scores     *ScoreRepository
	messages   *MessageRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		jobs:       NewJobRepository(db),
		candidates: NewCandidateRepository(db),
		scores:     NewScoreRepository(db),
		messages:   NewMessageRepository(db),
	}
}

func (s *Store) SaveJob(job *model.Job) error {
	return s.jobs.SaveJob(job)
}

func (s *Store) SaveCandidate(candidate *model.Candidate) error {
	return s.candidates.SaveCandidate(candidate)
}

func (s *Store) SaveScoredCandidate(sc *model.ScoredCandidate, jobID string) error {
	return s.scores.SaveScoredCandidate(sc, jobID)
}

func (s *Store) SaveOutreachMessage(message *model.OutreachMessage, jobID string) error {
	return s.messages.SaveOutreachMessage(message, jobID)
}

// JobStats computes the stats endpoint payload from persisted rows. An
// unknown job id surfaces gorm.ErrRecordNotFound.
func (s *Store) JobStats(jobID string) (*model.JobStats, error) {
	if _, err := s.jobs.FindJobByID(jobID); err != nil {
		return nil, err
	}
	total, average, top, err := s.scores.StatsByJob(jobID)
	if err != nil {
		return nil, err
	}
	messages, err := s.messages.CountByJob(jobID)
	if err != nil {
		return nil, err
	}
	return &model.JobStats{
		TotalCandidates:   total,
		AverageScore:      average,
		TopScore:          top,
		MessagesGenerated: messages,
	}, nil
}
