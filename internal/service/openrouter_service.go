package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterService calls an OpenAI-compatible chat/completions endpoint.
type OpenRouterService struct {
	client *resty.Client
	apiKey string
	logger *zap.Logger
}

func NewOpenRouterService(apiKey string, logger *zap.Logger) (*OpenRouterService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	return &OpenRouterService{
		client: resty.New(),
		apiKey: apiKey,
		logger: logger,
	}, nil
}

func (s *OpenRouterService) GenerateText(ctx context.Context, req GenerateRequest) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": req.Model,
			"messages": []map[string]string{
				{"role": "system", "content": req.System},
				{"role": "user", "content": req.Prompt},
			},
			"max_tokens":  req.MaxTokens,
			"temperature": req.Temperature,
		}).
		Post(openRouterURL)
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	if resp.IsError() {
		s.logger.Warn("openrouter error response",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return "", fmt.Errorf("openrouter returned status %d", resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no content in openrouter response")
	}
	return text, nil
}
