package model

// Processing statuses for a job run.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusPartial   = "partial"
)

// JobProcessingResult summarizes one full pipeline run for a job. Messages
// is a prefix of the eligible candidates, bounded by the max-messages cap.
type JobProcessingResult struct {
	JobID          string            `json:"jobId"`
	Candidates     []ScoredCandidate `json:"candidates"`
	Messages       []OutreachMessage `json:"messages"`
	ProcessingTime int64             `json:"processingTime"`
	Status         string            `json:"status"`
	Error          string            `json:"error,omitempty"`
}

// SearchResult is the outcome of the search and scoring stages alone, with
// no outreach drafting.
type SearchResult struct {
	Query      string            `json:"query"`
	Candidates []ScoredCandidate `json:"candidates"`
	TotalFound int               `json:"totalFound"`
	SearchTime int64             `json:"searchTime"`
	Cached     bool              `json:"cached"`
}

// JobStats aggregates the persisted scoring and outreach rows for a job.
type JobStats struct {
	TotalCandidates   int64   `json:"totalCandidates"`
	AverageScore      float64 `json:"averageScore"`
	TopScore          float64 `json:"topScore"`
	MessagesGenerated int64   `json:"messagesGenerated"`
}
