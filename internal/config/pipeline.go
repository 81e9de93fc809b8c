package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Candidate pool kinds accepted in CANDIDATE_POOL.
const (
	PoolSynthetic = "synthetic"
	PoolSample    = "sample"
)

// PipelineConfig carries the sourcing pipeline knobs: ranking threshold,
// outreach caps and the rate-limit delays between external calls.
type PipelineConfig struct {
	MinMatchScore float64
	TopCandidates int
	MaxMessages   int
	MessageDelay  time.Duration
	JobDelay      time.Duration
	CandidatePool string
	PoolSize      int
	PoolSeed      int64
	CacheEnabled  bool
	CacheTTL      time.Duration
}

var (
	pipelineConfig *PipelineConfig
	pipelineOnce   sync.Once
)

func LoadPipelineConfig() *PipelineConfig {
	pipelineOnce.Do(func() {
		pipelineConfig = &PipelineConfig{
			MinMatchScore: envFloat("MIN_MATCH_SCORE", 0.2),
			TopCandidates: envInt("TOP_CANDIDATES", 10),
			MaxMessages:   envInt("MAX_MESSAGES_PER_JOB", 5),
			MessageDelay:  envDuration("MESSAGE_DELAY_MS", 1000),
			JobDelay:      envDuration("JOB_DELAY_MS", 2000),
			CandidatePool: envString("CANDIDATE_POOL", PoolSynthetic),
			PoolSize:      envInt("POOL_SIZE", 1000),
			PoolSeed:      int64(envInt("POOL_SEED", 0)),
			CacheEnabled:  os.Getenv("CACHE_ENABLED") == "true",
			CacheTTL:      time.Duration(envInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
		}
	})
	return pipelineConfig
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return fallback
}

func envDuration(key string, fallbackMillis int) time.Duration {
	return time.Duration(envInt(key, fallbackMillis)) * time.Millisecond
}
