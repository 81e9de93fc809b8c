package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/fadilmartias/talent-sourcer/internal/cache"
	"github.com/fadilmartias/talent-sourcer/internal/config"
	"github.com/fadilmartias/talent-sourcer/internal/matching"
	"github.com/fadilmartias/talent-sourcer/internal/model"
	"github.com/fadilmartias/talent-sourcer/internal/pool"
	"github.com/fadilmartias/talent-sourcer/internal/service"
)

// Store is the persistence surface the usecase needs.
type Store interface {
	SaveJob(job *model.Job) error
	SaveCandidate(candidate *model.Candidate) error
	SaveScoredCandidate(sc *model.ScoredCandidate, jobID string) error
	SaveOutreachMessage(message *model.OutreachMessage, jobID string) error
	JobStats(jobID string) (*model.JobStats, error)
}

// Scorer scores ranked matches and applies the outreach gate.
type Scorer interface {
	ScoreCandidates(ctx context.Context, matches []matching.Match, job *model.Job) []model.ScoredCandidate
	TopCandidates(scored []model.ScoredCandidate, limit int) []model.ScoredCandidate
}

// Drafter produces outreach messages for gated candidates.
type Drafter interface {
	GenerateOutreachMessages(ctx context.Context, candidates []model.ScoredCandidate, job *model.Job, maxMessages int, saver service.MessageSaver) (messages []model.OutreachMessage, fallbacks, saveFailures int)
}

// SourcingUsecase orchestrates the pipeline: persist the job, rank the
// pool, score, gate, draft and persist outreach.
type SourcingUsecase struct {
	store   Store
	pool    pool.Provider
	scorer  Scorer
	drafter Drafter
	cache   cache.Cache
	cfg     *config.PipelineConfig
	logger  *zap.Logger
}

func NewSourcingUsecase(store Store, p pool.Provider, scorer Scorer, drafter Drafter, c cache.Cache, cfg *config.PipelineConfig, logger *zap.Logger) *SourcingUsecase {
	return &SourcingUsecase{
		store:   store,
		pool:    p,
		scorer:  scorer,
		drafter: drafter,
		cache:   c,
		cfg:     cfg,
		logger:  logger,
	}
}

// ProcessJob runs the full pipeline for one job. The result is always
// non-nil; failures are reported through its status rather than an error.
func (u *SourcingUsecase) ProcessJob(ctx context.Context, job *model.Job) *model.JobProcessingResult {
	start := time.Now()
	result := &model.JobProcessingResult{
		JobID:      job.ID,
		Candidates: []model.ScoredCandidate{},
		Messages:   []model.OutreachMessage{},
		Status:     model.StatusCompleted,
	}

	u.logger.Info("processing job",
		zap.String("job_id", job.ID),
		zap.String("title", job.Title),
	)

	if err := u.store.SaveJob(job); err != nil {
		u.logger.Error("failed to save job", zap.String("job_id", job.ID), zap.Error(err))
		result.Status = model.StatusFailed
		result.Error = err.Error()
		result.ProcessingTime = time.Since(start).Milliseconds()
		return result
	}

	matches := matching.Rank(u.pool.ListCandidates(), job, u.cfg.MinMatchScore)
	if len(matches) == 0 {
		u.logger.Warn("no candidates matched job", zap.String("job_id", job.ID))
		result.Status = model.StatusFailed
		result.Error = "No candidates found"
		result.ProcessingTime = time.Since(start).Milliseconds()
		return result
	}

	scored := u.scorer.ScoreCandidates(ctx, matches, job)
	result.Candidates = scored

	persistFailures := 0
	for i := range scored {
		if err := u.store.SaveCandidate(&scored[i].Candidate); err != nil {
			persistFailures++
			u.logger.Error("failed to save candidate",
				zap.String("candidate_id", scored[i].ID),
				zap.Error(err),
			)
			continue
		}
		if err := u.store.SaveScoredCandidate(&scored[i], job.ID); err != nil {
			persistFailures++
			u.logger.Error("failed to save candidate score",
				zap.String("candidate_id", scored[i].ID),
				zap.String("job_id", job.ID),
				zap.Error(err),
			)
		}
	}

	top := u.scorer.TopCandidates(scored, u.cfg.TopCandidates)
	messages, fallbacks, saveFailures := u.drafter.GenerateOutreachMessages(ctx, top, job, u.cfg.MaxMessages, u.store)
	result.Messages = messages

	if fallbacks > 0 || saveFailures > 0 || persistFailures > 0 {
		result.Status = model.StatusPartial
	}

	result.ProcessingTime = time.Since(start).Milliseconds()
	u.logger.Info("job processed",
		zap.String("job_id", job.ID),
		zap.String("status", result.Status),
		zap.Int("candidates", len(scored)),
		zap.Int("messages", len(messages)),
		zap.Int64("processing_ms", result.ProcessingTime),
	)
	return result
}

// ProcessBatch runs jobs sequentially with the configured delay between
// them. One job's failure never touches the others.
func (u *SourcingUsecase) ProcessBatch(ctx context.Context, jobs []*model.Job) []*model.JobProcessingResult {
	results := make([]*model.JobProcessingResult, 0, len(jobs))
	for i, job := range jobs {
		results = append(results, u.ProcessJob(ctx, job))

		if i < len(jobs)-1 && u.cfg.JobDelay > 0 {
			select {
			case <-time.After(u.cfg.JobDelay):
			case <-ctx.Done():
				return results
			}
		}
	}
	return results
}

// SearchCandidates ranks and scores the pool for a job without drafting
// outreach, serving repeated queries from the cache when one is configured.
func (u *SourcingUsecase) SearchCandidates(ctx context.Context, job *model.Job) (*model.SearchResult, error) {
	start := time.Now()
	key := searchCacheKey(job)

	if u.cacheEnabled() {
		if raw, ok, err := u.cache.Get(ctx, key); err != nil {
			u.logger.Warn("cache get failed", zap.Error(err))
		} else if ok {
			var cached model.SearchResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				cached.Cached = true
				cached.SearchTime = time.Since(start).Milliseconds()
				return &cached, nil
			}
			u.logger.Warn("discarding corrupt cache entry", zap.String("key", key))
		}
	}

	matches := matching.Rank(u.pool.ListCandidates(), job, u.cfg.MinMatchScore)
	scored := u.scorer.ScoreCandidates(ctx, matches, job)

	result := &model.SearchResult{
		Query:      job.Title,
		Candidates: scored,
		TotalFound: len(scored),
		SearchTime: time.Since(start).Milliseconds(),
	}

	if u.cacheEnabled() {
		if raw, err := json.Marshal(result); err == nil {
			if err := u.cache.Set(ctx, key, string(raw), u.cfg.CacheTTL); err != nil {
				u.logger.Warn("cache set failed", zap.Error(err))
			}
		}
	}

	return result, nil
}

// GenerateMessages drafts outreach for client-supplied scored candidates,
// applying the same gate and caps as the full pipeline.
func (u *SourcingUsecase) GenerateMessages(ctx context.Context, candidates []model.ScoredCandidate, job *model.Job) []model.OutreachMessage {
	if err := u.store.SaveJob(job); err != nil {
		u.logger.Warn("failed to save job for message generation",
			zap.String("job_id", job.ID),
			zap.Error(err),
		)
	}

	top := u.scorer.TopCandidates(candidates, u.cfg.TopCandidates)
	messages, _, _ := u.drafter.GenerateOutreachMessages(ctx, top, job, u.cfg.MaxMessages, u.store)
	return messages
}

// JobStats reports aggregates over the persisted rows for one job.
func (u *SourcingUsecase) JobStats(jobID string) (*model.JobStats, error) {
	return u.store.JobStats(jobID)
}

func (u *SourcingUsecase) cacheEnabled() bool {
	return u.cfg.CacheEnabled && u.cache != nil
}

// searchCacheKey hashes the job's match-relevant text, so two jobs that
// rank identically share a cache entry.
func searchCacheKey(job *model.Job) string {
	sum := sha256.Sum256([]byte(matching.JobText(job)))
	return "search:" + hex.EncodeToString(sum[:])
}
