package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/fadilmartias/talent-sourcer/internal/config"
	"github.com/fadilmartias/talent-sourcer/internal/matching"
	"github.com/fadilmartias/talent-sourcer/internal/model"
	"github.com/fadilmartias/talent-sourcer/internal/util"
)

// Outreach gate: only candidates at or above both thresholds are drafted
// messages, independent of the ranking threshold.
const (
	OutreachMinScore      = 6.0
	OutreachMinConfidence = 0.5
)

// Defaults applied when the LLM reply is unusable.
const (
	defaultLLMScore      = 5.0
	defaultLLMConfidence = 0.3
	defaultLLMBreakdown  = 5.0
)

const scoringSystemPrompt = "You are an expert technical recruiter. " +
	"Score how well a candidate fits a job. Respond with a single JSON object only, no prose."

// ScoringService turns ranked matches into scored candidates. The
// baseline score is derived from the keyword match fraction; when an LLM
// generator is configured it refines each candidate's score, falling back
// to conservative defaults on any failure.
type ScoringService struct {
	generator Generator
	cfg       *config.LLMConfig
	logger    *zap.Logger
}

func NewScoringService(generator Generator, cfg *config.LLMConfig, logger *zap.Logger) *ScoringService {
	return &ScoringService{
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}
}

// ScoreCandidates scores every ranked match for the job and returns the
// results sorted by score descending. Order among equal scores follows the
// input ranking.
func (s *ScoringService) ScoreCandidates(ctx context.Context, matches []matching.Match, job *model.Job) []model.ScoredCandidate {
	jobText := matching.JobText(job)
	scored := make([]model.ScoredCandidate, 0, len(matches))

	for _, m := range matches {
		var sc model.ScoredCandidate
		if s.cfg.ScoringEnabled && s.generator != nil {
			sc = s.ScoreCandidate(ctx, m.Candidate, job)
		} else {
			sc = baselineScore(jobText, m.Candidate, m.Fraction)
		}
		scored = append(scored, sc)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// ScoreCandidate asks the LLM for a structured score. Any failure, from
// transport to unparsable output, degrades to the default score rather
// than surfacing an error.
func (s *ScoringService) ScoreCandidate(ctx context.Context, candidate model.Candidate, job *model.Job) model.ScoredCandidate {
	sc := model.ScoredCandidate{
		Candidate:  candidate,
		Score:      defaultLLMScore,
		Confidence: defaultLLMConfidence,
		Breakdown: model.Breakdown{
			TitleMatch:      defaultLLMBreakdown,
			SkillsMatch:     defaultLLMBreakdown,
			ExperienceMatch: defaultLLMBreakdown,
			LocationMatch:   defaultLLMBreakdown,
			IndustryMatch:   defaultLLMBreakdown,
		},
		Reasoning: "Default score applied; structured scoring unavailable.",
	}

	text, err := s.generator.GenerateText(ctx, GenerateRequest{
		System:      scoringSystemPrompt,
		Prompt:      buildScoringPrompt(candidate, job),
		Model:       s.cfg.Model,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.logger.Warn("llm scoring failed, using default score",
			zap.String("candidate_id", candidate.ID),
			zap.Error(err),
		)
		return sc
	}

	raw, ok := util.ExtractJSON(text)
	if !ok || !gjson.Valid(raw) {
		s.logger.Warn("unparsable llm scoring reply, using default score",
			zap.String("candidate_id", candidate.ID),
		)
		return sc
	}

	parsed := gjson.Parse(raw)
	sc.Score = clamp(numberOr(parsed, "score", defaultLLMScore), 1, 10)
	sc.Confidence = clamp(numberOr(parsed, "confidence", defaultLLMConfidence), 0, 1)
	sc.Breakdown = model.Breakdown{
		TitleMatch:      clamp(numberOr(parsed, "breakdown.titleMatch", defaultLLMBreakdown), 0, 10),
		SkillsMatch:     clamp(numberOr(parsed, "breakdown.skillsMatch", defaultLLMBreakdown), 0, 10),
		ExperienceMatch: clamp(numberOr(parsed, "breakdown.experienceMatch", defaultLLMBreakdown), 0, 10),
		LocationMatch:   clamp(numberOr(parsed, "breakdown.locationMatch", defaultLLMBreakdown), 0, 10),
		IndustryMatch:   clamp(numberOr(parsed, "breakdown.industryMatch", defaultLLMBreakdown), 0, 10),
	}
	if reasoning := parsed.Get("reasoning").String(); reasoning != "" {
		sc.Reasoning = reasoning
	}
	return sc
}

// TopCandidates filters to candidates passing the outreach gate, re-sorts
// by score descending, and caps the result at limit.
func (s *ScoringService) TopCandidates(scored []model.ScoredCandidate, limit int) []model.ScoredCandidate {
	top := make([]model.ScoredCandidate, 0, limit)
	for _, sc := range scored {
		if sc.Score >= OutreachMinScore && sc.Confidence >= OutreachMinConfidence {
			top = append(top, sc)
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Score > top[j].Score
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}

// baselineScore maps the keyword match fraction onto the 0-10 scale. The
// skills dimension carries the whole signal; the other dimensions stay at
// zero because keyword matching says nothing about them.
func baselineScore(jobText string, candidate model.Candidate, fraction float64) model.ScoredCandidate {
	matched, total := matching.MatchedCount(jobText, candidate.Skills)
	score := round1(fraction * 10)

	confidence := 0.0
	if matched > 0 {
		confidence = 1.0
	}

	return model.ScoredCandidate{
		Candidate:  candidate,
		Score:      score,
		Confidence: confidence,
		Breakdown:  model.Breakdown{SkillsMatch: score},
		Reasoning:  fmt.Sprintf("Matched %d of %d skill keywords.", matched, total),
	}
}

func buildScoringPrompt(candidate model.Candidate, job *model.Job) string {
	var b strings.Builder

	b.WriteString("Job:\n")
	fmt.Fprintf(&b, "- Title: %s\n", job.Title)
	fmt.Fprintf(&b, "- Company: %s\n", job.Company)
	fmt.Fprintf(&b, "- Location: %s\n", job.Location)
	if len(job.Requirements) > 0 {
		fmt.Fprintf(&b, "- Requirements: %s\n", strings.Join(job.Requirements, ", "))
	}
	if job.Description != "" {
		fmt.Fprintf(&b, "- Description: %s\n", job.Description)
	}

	b.WriteString("\nCandidate:\n")
	fmt.Fprintf(&b, "- Name: %s\n", candidate.Name)
	fmt.Fprintf(&b, "- Headline: %s\n", candidate.Headline)
	fmt.Fprintf(&b, "- Company: %s\n", candidate.Company)
	fmt.Fprintf(&b, "- Location: %s\n", candidate.Location)
	fmt.Fprintf(&b, "- Experience: %s\n", candidate.Experience)
	if len(candidate.Skills) > 0 {
		fmt.Fprintf(&b, "- Skills: %s\n", strings.Join(candidate.Skills, ", "))
	}

	b.WriteString(`
Return JSON with this exact shape:
{
  "score": <1-10 overall fit>,
  "confidence": <0-1>,
  "breakdown": {
    "titleMatch": <0-10>,
    "skillsMatch": <0-10>,
    "experienceMatch": <0-10>,
    "locationMatch": <0-10>,
    "industryMatch": <0-10>
  },
  "reasoning": "<one or two sentences>"
}`)

	return b.String()
}

func numberOr(parsed gjson.Result, path string, def float64) float64 {
	v := parsed.Get(path)
	if !v.Exists() {
		return def
	}
	return v.Float()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
