package config

import (
	"os"
	"strconv"
	"sync"
)

// LLM provider names accepted in LLM_PROVIDER.
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

type LLMConfig struct {
	Provider         string
	Model            string
	MaxTokens        int
	Temperature      float64
	GeminiAPIKey     string
	OpenRouterAPIKey string
	ScoringEnabled   bool
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		provider := os.Getenv("LLM_PROVIDER")
		if provider == "" {
			provider = ProviderGemini
		}
		model := os.Getenv("LLM_MODEL")
		if model == "" {
			model = "gemini-2.5-flash"
		}
		maxTokens := 2000
		if s := os.Getenv("LLM_MAX_TOKENS"); s != "" {
			if v, err := strconv.Atoi(s); err == nil && v > 0 {
				maxTokens = v
			}
		}
		temperature := 0.7
		if s := os.Getenv("LLM_TEMPERATURE"); s != "" {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				temperature = v
			}
		}
		llmConfig = &LLMConfig{
			Provider:         provider,
			Model:            model,
			MaxTokens:        maxTokens,
			Temperature:      temperature,
			GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
			OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
			ScoringEnabled:   os.Getenv("LLM_SCORING") == "true",
		}
	})
	return llmConfig
}
