package service

import (
	"context"
)

// GenerateRequest is the provider-neutral request for one text generation
// call: system instruction, user prompt, model name and sampling knobs.
type GenerateRequest struct {
	System      string
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Generator is implemented by the LLM providers. The response is free
// text; callers are responsible for extracting structure from it and for
// falling back when they cannot.
type Generator interface {
	GenerateText(ctx context.Context, req GenerateRequest) (string, error)
}
