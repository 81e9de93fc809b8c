package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/fadilmartias/talent-sourcer/internal/config"
	"github.com/fadilmartias/talent-sourcer/internal/model"
	"github.com/fadilmartias/talent-sourcer/internal/util"
)

const messageSystemPrompt = "You are a recruiter writing a short, warm LinkedIn outreach message. " +
	"Respond with a single JSON object only, no prose."

// MessageSaver persists a generated message. Saves happen as messages are
// produced so a later failure cannot lose earlier messages.
type MessageSaver interface {
	SaveOutreachMessage(message *model.OutreachMessage, jobID string) error
}

// MessageService drafts outreach messages for scored candidates. Every
// candidate receives a message: if the LLM is unavailable or its reply
// cannot be used, the deterministic template takes over.
type MessageService struct {
	generator Generator
	cfg       *config.LLMConfig
	delay     time.Duration
	logger    *zap.Logger
}

// NewMessageService builds a message service. generator may be nil, in
// which case every message is the fallback template. delay is the pause
// between successive candidates.
func NewMessageService(generator Generator, cfg *config.LLMConfig, delay time.Duration, logger *zap.Logger) *MessageService {
	return &MessageService{
		generator: generator,
		cfg:       cfg,
		delay:     delay,
		logger:    logger,
	}
}

// GenerateOutreachMessages drafts up to maxMessages messages, saving each
// through saver as it is produced. It reports the messages alongside the
// number that fell back to the template and the number of failed saves;
// neither failure mode stops the run.
func (s *MessageService) GenerateOutreachMessages(ctx context.Context, candidates []model.ScoredCandidate, job *model.Job, maxMessages int, saver MessageSaver) (messages []model.OutreachMessage, fallbacks, saveFailures int) {
	if maxMessages > 0 && len(candidates) > maxMessages {
		candidates = candidates[:maxMessages]
	}

	for i, candidate := range candidates {
		message, fellBack := s.generateMessage(ctx, candidate, job)
		if fellBack {
			fallbacks++
		}
		messages = append(messages, message)

		if saver != nil {
			if err := saver.SaveOutreachMessage(&message, job.ID); err != nil {
				saveFailures++
				s.logger.Error("failed to save outreach message",
					zap.String("candidate_id", candidate.ID),
					zap.String("job_id", job.ID),
					zap.Error(err),
				)
			}
		}

		if i < len(candidates)-1 && s.delay > 0 {
			select {
			case <-time.After(s.delay):
			case <-ctx.Done():
				return messages, fallbacks, saveFailures
			}
		}
	}

	return messages, fallbacks, saveFailures
}

func (s *MessageService) generateMessage(ctx context.Context, candidate model.ScoredCandidate, job *model.Job) (model.OutreachMessage, bool) {
	if s.generator == nil {
		return fallbackMessage(candidate), true
	}

	text, err := s.generator.GenerateText(ctx, GenerateRequest{
		System:      messageSystemPrompt,
		Prompt:      buildMessagePrompt(candidate, job),
		Model:       s.cfg.Model,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.logger.Warn("message generation failed, using fallback",
			zap.String("candidate_id", candidate.ID),
			zap.Error(err),
		)
		return fallbackMessage(candidate), true
	}

	raw, ok := util.ExtractJSON(text)
	if !ok || !gjson.Valid(raw) {
		s.logger.Warn("unparsable message reply, using fallback",
			zap.String("candidate_id", candidate.ID),
		)
		return fallbackMessage(candidate), true
	}

	parsed := gjson.Parse(raw)
	body := strings.TrimSpace(parsed.Get("message").String())
	if body == "" {
		s.logger.Warn("message reply missing message field, using fallback",
			zap.String("candidate_id", candidate.ID),
		)
		return fallbackMessage(candidate), true
	}

	return model.OutreachMessage{
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		Message:       body,
		Subject:       strings.TrimSpace(parsed.Get("subject").String()),
		Personalization: model.Personalization{
			CompanyMention:    parsed.Get("personalization.companyMention").Bool(),
			SkillMention:      parsed.Get("personalization.skillMention").Bool(),
			ExperienceMention: parsed.Get("personalization.experienceMention").Bool(),
		},
		GeneratedAt: time.Now(),
	}, false
}

// fallbackMessage is the deterministic template used whenever the LLM
// path cannot produce a usable message.
func fallbackMessage(candidate model.ScoredCandidate) model.OutreachMessage {
	return model.OutreachMessage{
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		Message: fmt.Sprintf("Hi %s, I came across your profile and was impressed by your background. "+
			"Would you be interested in discussing a new opportunity?", candidate.FirstName()),
		GeneratedAt: time.Now(),
	}
}

func buildMessagePrompt(candidate model.ScoredCandidate, job *model.Job) string {
	var b strings.Builder

	b.WriteString("Write an outreach message for this candidate about this role.\n\n")

	b.WriteString("Role:\n")
	fmt.Fprintf(&b, "- Title: %s\n", job.Title)
	fmt.Fprintf(&b, "- Company: %s\n", job.Company)
	fmt.Fprintf(&b, "- Location: %s\n", job.Location)
	if reqs := topN(job.Requirements, 3); len(reqs) > 0 {
		fmt.Fprintf(&b, "- Key requirements: %s\n", strings.Join(reqs, ", "))
	}

	b.WriteString("\nCandidate:\n")
	fmt.Fprintf(&b, "- Name: %s\n", candidate.Name)
	fmt.Fprintf(&b, "- Headline: %s\n", candidate.Headline)
	if candidate.Company != "" {
		fmt.Fprintf(&b, "- Current company: %s\n", candidate.Company)
	}
	fmt.Fprintf(&b, "- Location: %s\n", candidate.Location)
	if skills := topN(candidate.Skills, 3); len(skills) > 0 {
		fmt.Fprintf(&b, "- Top skills: %s\n", strings.Join(skills, ", "))
	}
	fmt.Fprintf(&b, "- Fit score: %.1f/10, strongest on %s\n", candidate.Score, topMatchReason(candidate.Breakdown))

	b.WriteString(`
Keep it under 100 words, reference something specific from the profile, and end with a soft call to action.

Return JSON with this exact shape:
{
  "message": "<the message>",
  "subject": "<a short subject line>",
  "personalization": {
    "companyMention": <true if the message names the candidate's company>,
    "skillMention": <true if the message names one of their skills>,
    "experienceMention": <true if the message references their experience>
  }
}`)

	return b.String()
}

// topMatchReason names the strongest breakdown dimension. Ties resolve in
// a fixed order so repeated runs describe the same candidate the same way.
func topMatchReason(b model.Breakdown) string {
	dims := []struct {
		label string
		value float64
	}{
		{"title alignment", b.TitleMatch},
		{"skills alignment", b.SkillsMatch},
		{"experience alignment", b.ExperienceMatch},
		{"location alignment", b.LocationMatch},
		{"industry alignment", b.IndustryMatch},
	}

	best := dims[0]
	for _, d := range dims[1:] {
		if d.value > best.value {
			best = d
		}
	}
	return fmt.Sprintf("%s (%.1f/10)", best.label, best.value)
}

func topN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
