package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fadilmartias/talent-sourcer/internal/cache"
	"github.com/fadilmartias/talent-sourcer/internal/config"
	"github.com/fadilmartias/talent-sourcer/internal/model"
	"github.com/fadilmartias/talent-sourcer/internal/service"
)

type fakeStore struct {
	jobs     []model.Job
	saved    []model.Candidate
	scores   []string
	messages []model.OutreachMessage
	stats    *model.JobStats
	jobErr   error
	scoreErr error
	statsErr error
}

func (s *fakeStore) SaveJob(job *model.Job) error {
	if s.jobErr != nil {
		return s.jobErr
	}
	s.jobs = append(s.jobs, *job)
	return nil
}

func (s *fakeStore) SaveCandidate(candidate *model.Candidate) error {
	s.saved = append(s.saved, *candidate)
	return nil
}

func (s *fakeStore) SaveScoredCandidate(sc *model.ScoredCandidate, jobID string) error {
	if s.scoreErr != nil {
		return s.scoreErr
	}
	s.scores = append(s.scores, sc.ID+"/"+jobID)
	return nil
}

func (s *fakeStore) SaveOutreachMessage(message *model.OutreachMessage, jobID string) error {
	message.JobID = jobID
	s.messages = append(s.messages, *message)
	return nil
}

func (s *fakeStore) JobStats(jobID string) (*model.JobStats, error) {
	if s.statsErr != nil {
		return nil, s.statsErr
	}
	if s.stats != nil {
		return s.stats, nil
	}
	return &model.JobStats{}, nil
}

type fakePool struct {
	candidates []model.Candidate
}

func (p *fakePool) ListCandidates() []model.Candidate {
	return p.candidates
}

type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

// stubDrafter drafts a trivial message per candidate with no fallbacks and
// no save failures.
type stubDrafter struct {
	fallbacks    int
	saveFailures int
}

func (d *stubDrafter) GenerateOutreachMessages(_ context.Context, candidates []model.ScoredCandidate, job *model.Job, maxMessages int, _ service.MessageSaver) ([]model.OutreachMessage, int, int) {
	if maxMessages > 0 && len(candidates) > maxMessages {
		candidates = candidates[:maxMessages]
	}
	messages := make([]model.OutreachMessage, 0, len(candidates))
	for _, c := range candidates {
		messages = append(messages, model.OutreachMessage{
			CandidateID:   c.ID,
			CandidateName: c.Name,
			JobID:         job.ID,
			Message:       "drafted",
		})
	}
	return messages, d.fallbacks, d.saveFailures
}

func testPipelineConfig() *config.PipelineConfig {
	return &config.PipelineConfig{
		MinMatchScore: 0.2,
		TopCandidates: 10,
		MaxMessages:   5,
		CacheEnabled:  true,
		CacheTTL:      time.Minute,
	}
}

func matchingPool() *fakePool {
	return &fakePool{candidates: []model.Candidate{
		{ID: "strong", Name: "Ava Chen", Skills: []string{"React", "Node", "Python"}},
		{ID: "weak", Name: "Ben Ortiz", Skills: []string{"React"}},
		{ID: "irrelevant", Name: "Cleo Park", Skills: []string{"Photoshop"}},
	}}
}

func matchingJob() *model.Job {
	return &model.Job{
		ID:      "job_uc",
		Title:   "React and Node and Python developer",
		Company: "Acme",
	}
}

func newTestUsecase(store Store, p *fakePool, drafter Drafter, c cache.Cache, cfg *config.PipelineConfig) *SourcingUsecase {
	scorer := service.NewScoringService(nil, &config.LLMConfig{Model: "test"}, zap.NewNop())
	return NewSourcingUsecase(store, p, scorer, drafter, c, cfg, zap.NewNop())
}

func TestProcessJobCompleted(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUsecase(store, matchingPool(), &stubDrafter{}, nil, testPipelineConfig())

	result := uc.ProcessJob(context.Background(), matchingJob())

	if result.Status != model.StatusCompleted {
		t.Fatalf("status = %q (error %q), want completed", result.Status, result.Error)
	}
	if len(result.Candidates) != 2 {
		t.Errorf("candidates = %d, want 2 (irrelevant profile filtered)", len(result.Candidates))
	}
	if result.Candidates[0].ID != "strong" {
		t.Errorf("top candidate = %q, want strong", result.Candidates[0].ID)
	}
	// Only the strong candidate clears the outreach gate.
	if len(result.Messages) != 1 || result.Messages[0].CandidateID != "strong" {
		t.Errorf("messages = %+v, want one for strong", result.Messages)
	}
	if len(store.jobs) != 1 || len(store.scores) != 2 {
		t.Errorf("persisted %d jobs and %d scores, want 1 and 2", len(store.jobs), len(store.scores))
	}
}

func TestProcessJobNoCandidates(t *testing.T) {
	pool := &fakePool{candidates: []model.Candidate{
		{ID: "irrelevant", Skills: []string{"Photoshop"}},
	}}
	uc := newTestUsecase(&fakeStore{}, pool, &stubDrafter{}, nil, testPipelineConfig())

	result := uc.ProcessJob(context.Background(), matchingJob())

	if result.Status != model.StatusFailed {
		t.Errorf("status = %q, want failed", result.Status)
	}
	if result.Error != "No candidates found" {
		t.Errorf("error = %q", result.Error)
	}
	if len(result.Candidates) != 0 || len(result.Messages) != 0 {
		t.Errorf("failed result should carry no candidates or messages")
	}
}

func TestProcessJobSaveJobFailure(t *testing.T) {
	store := &fakeStore{jobErr: errors.New("db down")}
	uc := newTestUsecase(store, matchingPool(), &stubDrafter{}, nil, testPipelineConfig())

	result := uc.ProcessJob(context.Background(), matchingJob())
	if result.Status != model.StatusFailed {
		t.Errorf("status = %q, want failed", result.Status)
	}
}

func TestProcessJobFallbacksMeanPartial(t *testing.T) {
	drafter := service.NewMessageService(nil, &config.LLMConfig{Model: "test"}, 0, zap.NewNop())
	uc := newTestUsecase(&fakeStore{}, matchingPool(), drafter, nil, testPipelineConfig())

	result := uc.ProcessJob(context.Background(), matchingJob())
	if result.Status != model.StatusPartial {
		t.Errorf("status = %q, want partial when every message used the fallback", result.Status)
	}
	if len(result.Messages) != 1 {
		t.Errorf("messages = %d, want 1", len(result.Messages))
	}
}

func TestProcessJobScorePersistFailureMeansPartial(t *testing.T) {
	store := &fakeStore{scoreErr: errors.New("constraint violation")}
	uc := newTestUsecase(store, matchingPool(), &stubDrafter{}, nil, testPipelineConfig())

	result := uc.ProcessJob(context.Background(), matchingJob())
	if result.Status != model.StatusPartial {
		t.Errorf("status = %q, want partial", result.Status)
	}
}

func TestProcessBatchIsolation(t *testing.T) {
	uc := newTestUsecase(&fakeStore{}, matchingPool(), &stubDrafter{}, nil, testPipelineConfig())

	jobs := []*model.Job{
		matchingJob(),
		{ID: "job_blank", Title: "Accountant", Company: "Acme"},
	}

	results := uc.ProcessBatch(context.Background(), jobs)
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].Status != model.StatusCompleted {
		t.Errorf("results[0].Status = %q, want completed", results[0].Status)
	}
	if results[1].Status != model.StatusFailed {
		t.Errorf("results[1].Status = %q, want failed", results[1].Status)
	}
}

func TestSearchCandidatesCaching(t *testing.T) {
	c := newFakeCache()
	uc := newTestUsecase(&fakeStore{}, matchingPool(), &stubDrafter{}, c, testPipelineConfig())

	first, err := uc.SearchCandidates(context.Background(), matchingJob())
	if err != nil {
		t.Fatalf("SearchCandidates: %v", err)
	}
	if first.Cached {
		t.Error("first search reported a cache hit")
	}
	if first.TotalFound != 2 {
		t.Errorf("TotalFound = %d, want 2", first.TotalFound)
	}
	if first.Candidates[0].Score != 10.0 {
		t.Errorf("top score = %v, want 10", first.Candidates[0].Score)
	}

	second, err := uc.SearchCandidates(context.Background(), matchingJob())
	if err != nil {
		t.Fatalf("SearchCandidates (cached): %v", err)
	}
	if !second.Cached {
		t.Error("second search should be served from cache")
	}
	if second.TotalFound != first.TotalFound {
		t.Errorf("cached TotalFound = %d, want %d", second.TotalFound, first.TotalFound)
	}
}

func TestSearchCandidatesWithoutCache(t *testing.T) {
	cfg := testPipelineConfig()
	cfg.CacheEnabled = false
	uc := newTestUsecase(&fakeStore{}, matchingPool(), &stubDrafter{}, nil, cfg)

	result, err := uc.SearchCandidates(context.Background(), matchingJob())
	if err != nil {
		t.Fatalf("SearchCandidates: %v", err)
	}
	if result.Cached || result.TotalFound != 2 {
		t.Errorf("result = %+v", result)
	}
}

func TestGenerateMessagesAppliesGate(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUsecase(store, matchingPool(), &stubDrafter{}, nil, testPipelineConfig())

	candidates := []model.ScoredCandidate{
		{Candidate: model.Candidate{ID: "pass"}, Score: 8.0, Confidence: 0.9},
		{Candidate: model.Candidate{ID: "gated"}, Score: 4.0, Confidence: 0.9},
	}

	messages := uc.GenerateMessages(context.Background(), candidates, matchingJob())
	if len(messages) != 1 || messages[0].CandidateID != "pass" {
		t.Errorf("messages = %+v, want one for pass", messages)
	}
	if len(store.jobs) != 1 {
		t.Errorf("job not persisted before message generation")
	}
}

func TestJobStatsPassthrough(t *testing.T) {
	store := &fakeStore{stats: &model.JobStats{
		TotalCandidates:   4,
		AverageScore:      7.1,
		TopScore:          9.3,
		MessagesGenerated: 2,
	}}
	uc := newTestUsecase(store, matchingPool(), &stubDrafter{}, nil, testPipelineConfig())

	stats, err := uc.JobStats("job_uc")
	if err != nil {
		t.Fatalf("JobStats: %v", err)
	}
	if stats.TotalCandidates != 4 || stats.MessagesGenerated != 2 {
		t.Errorf("stats = %+v", stats)
	}
}
