package model

import (
	"time"
)

// Breakdown carries the five sub-scores of a scored candidate, each on a
// 0-10 scale.
type Breakdown struct {
	TitleMatch      float64 `json:"titleMatch"`
	SkillsMatch     float64 `json:"skillsMatch"`
	ExperienceMatch float64 `json:"experienceMatch"`
	LocationMatch   float64 `json:"locationMatch"`
	IndustryMatch   float64 `json:"industryMatch"`
}

// ScoredCandidate is a candidate augmented with match scores for one job.
// It is derived data, recomputed per job, and never written back into the
// candidate record.
type ScoredCandidate struct {
	Candidate
	Score      float64   `json:"score"`
	Confidence float64   `json:"confidence"`
	Breakdown  Breakdown `json:"breakdown"`
	Reasoning  string    `json:"reasoning"`
}

// CandidateScore is the persistence row for a scored candidate, keyed by
// (candidate_id, job_id) with upsert semantics.
type CandidateScore struct {
	CandidateID     string    `gorm:"primaryKey"`
	JobID           string    `gorm:"primaryKey;index"`
	Score           float64   `gorm:"not null"`
	Confidence      float64   `gorm:"not null"`
	TitleMatch      float64   `gorm:"not null"`
	SkillsMatch     float64   `gorm:"not null"`
	ExperienceMatch float64   `gorm:"not null"`
	LocationMatch   float64   `gorm:"not null"`
	IndustryMatch   float64   `gorm:"not null"`
	Reasoning       string    `gorm:"type:text"`
	ScoredAt        time.Time `gorm:"autoUpdateTime"`
}

func (s *CandidateScore) TableName() string {
	return "scored_candidates"
}

// NewCandidateScore flattens a scored candidate into its persistence row.
func NewCandidateScore(sc *ScoredCandidate, jobID string) *CandidateScore {
	return &CandidateScore{
		CandidateID:     sc.ID,
		JobID:           jobID,
		Score:           sc.Score,
		Confidence:      sc.Confidence,
		TitleMatch:      sc.Breakdown.TitleMatch,
		SkillsMatch:     sc.Breakdown.SkillsMatch,
		ExperienceMatch: sc.Breakdown.ExperienceMatch,
		LocationMatch:   sc.Breakdown.LocationMatch,
		IndustryMatch:   sc.Breakdown.IndustryMatch,
		Reasoning:       sc.Reasoning,
	}
}
