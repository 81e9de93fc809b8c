// Package pool supplies the candidate profiles the ranking pipeline reads.
// Pools are built once at startup and are read-only afterwards, so they are
// safe to share across concurrent requests.
package pool

import (
	"github.com/fadilmartias/talent-sourcer/internal/config"
	"github.com/fadilmartias/talent-sourcer/internal/model"
)

// Provider exposes read access to a fixed candidate pool.
type Provider interface {
	ListCandidates() []model.Candidate
}

// New builds the pool selected by configuration: the small curated sample
// or the synthetic generated pool (the default).
func New(cfg *config.PipelineConfig) Provider {
	if cfg.CandidatePool == config.PoolSample {
		return NewSamplePool()
	}
	return NewSyntheticPool(cfg.PoolSize, cfg.PoolSeed)
}

// staticPool is the shared Provider implementation: a slice fixed at
// construction time.
type staticPool struct {
	candidates []model.Candidate
}

func (p *staticPool) ListCandidates() []model.Candidate {
	return p.candidates
}
