package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/fadilmartias/talent-sourcer/internal/model"
)

type saverStub struct {
	saved []model.OutreachMessage
	err   error
}

func (s *saverStub) SaveOutreachMessage(message *model.OutreachMessage, jobID string) error {
	if s.err != nil {
		return s.err
	}
	message.JobID = jobID
	s.saved = append(s.saved, *message)
	return nil
}

func messageJob() *model.Job {
	return &model.Job{
		ID:           "job_msg",
		Title:        "Backend Engineer",
		Company:      "Acme",
		Location:     "Remote",
		Requirements: []string{"Go", "PostgreSQL", "Kubernetes", "Kafka"},
	}
}

func messageCandidates() []model.ScoredCandidate {
	return []model.ScoredCandidate{
		{
			Candidate: model.Candidate{
				ID:       "c1",
				Name:     "Ava Chen",
				Headline: "Backend Engineer at DataWorks",
				Company:  "DataWorks",
				Location: "Berlin",
				Skills:   []string{"Go", "PostgreSQL", "Kafka", "Docker"},
			},
			Score:      8.5,
			Confidence: 0.9,
			Breakdown:  model.Breakdown{SkillsMatch: 8.5},
		},
		{
			Candidate: model.Candidate{ID: "c2", Name: "Ben Ortiz", Skills: []string{"Go"}},
			Score:     7.0, Confidence: 0.8,
		},
		{
			Candidate: model.Candidate{ID: "c3", Name: "Cleo Park", Skills: []string{"Go"}},
			Score:     6.5, Confidence: 0.7,
		},
	}
}

func TestGenerateOutreachMessagesParsesLLMReply(t *testing.T) {
	gen := &generatorStub{reply: `{"message": "Hi Ava, your Kafka work at DataWorks caught my eye.", "subject": "Backend role at Acme", "personalization": {"companyMention": true, "skillMention": true, "experienceMention": false}}`}
	svc := NewMessageService(gen, testLLMConfig(false), 0, zap.NewNop())
	saver := &saverStub{}

	messages, fallbacks, saveFailures := svc.GenerateOutreachMessages(
		context.Background(), messageCandidates()[:1], messageJob(), 5, saver)

	if len(messages) != 1 || fallbacks != 0 || saveFailures != 0 {
		t.Fatalf("got %d messages, %d fallbacks, %d save failures", len(messages), fallbacks, saveFailures)
	}

	msg := messages[0]
	if msg.CandidateID != "c1" || msg.CandidateName != "Ava Chen" {
		t.Errorf("message identity = %s/%s", msg.CandidateID, msg.CandidateName)
	}
	if !strings.Contains(msg.Message, "Kafka") {
		t.Errorf("message body = %q", msg.Message)
	}
	if msg.Subject != "Backend role at Acme" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if !msg.Personalization.CompanyMention || !msg.Personalization.SkillMention || msg.Personalization.ExperienceMention {
		t.Errorf("personalization = %+v", msg.Personalization)
	}

	if len(saver.saved) != 1 || saver.saved[0].JobID != "job_msg" {
		t.Errorf("saved = %+v", saver.saved)
	}
}

func TestGenerateOutreachMessagesFallsBackOnGarbage(t *testing.T) {
	gen := &generatorStub{reply: "I will not produce JSON today."}
	svc := NewMessageService(gen, testLLMConfig(false), 0, zap.NewNop())

	messages, fallbacks, _ := svc.GenerateOutreachMessages(
		context.Background(), messageCandidates()[:1], messageJob(), 5, nil)

	if fallbacks != 1 {
		t.Fatalf("fallbacks = %d, want 1", fallbacks)
	}
	if !strings.HasPrefix(messages[0].Message, "Hi Ava,") {
		t.Errorf("fallback message = %q", messages[0].Message)
	}
	if messages[0].Personalization != (model.Personalization{}) {
		t.Errorf("fallback personalization = %+v, want all false", messages[0].Personalization)
	}
}

func TestGenerateOutreachMessagesFallsBackOnGeneratorError(t *testing.T) {
	gen := &generatorStub{err: errors.New("unavailable")}
	svc := NewMessageService(gen, testLLMConfig(false), 0, zap.NewNop())

	messages, fallbacks, _ := svc.GenerateOutreachMessages(
		context.Background(), messageCandidates(), messageJob(), 5, nil)

	if len(messages) != 3 || fallbacks != 3 {
		t.Errorf("got %d messages, %d fallbacks, want 3 and 3", len(messages), fallbacks)
	}
}

func TestGenerateOutreachMessagesNilGenerator(t *testing.T) {
	svc := NewMessageService(nil, testLLMConfig(false), 0, zap.NewNop())

	messages, fallbacks, _ := svc.GenerateOutreachMessages(
		context.Background(), messageCandidates()[:1], messageJob(), 5, nil)

	if len(messages) != 1 || fallbacks != 1 {
		t.Errorf("got %d messages, %d fallbacks, want 1 and 1", len(messages), fallbacks)
	}
}

func TestGenerateOutreachMessagesEmptyMessageFieldFallsBack(t *testing.T) {
	gen := &generatorStub{reply: `{"subject": "hello", "message": ""}`}
	svc := NewMessageService(gen, testLLMConfig(false), 0, zap.NewNop())

	messages, fallbacks, _ := svc.GenerateOutreachMessages(
		context.Background(), messageCandidates()[:1], messageJob(), 5, nil)

	if fallbacks != 1 {
		t.Errorf("fallbacks = %d, want 1", fallbacks)
	}
	if messages[0].Subject != "" {
		t.Errorf("fallback should not carry the reply subject, got %q", messages[0].Subject)
	}
}

func TestGenerateOutreachMessagesCap(t *testing.T) {
	svc := NewMessageService(nil, testLLMConfig(false), 0, zap.NewNop())

	messages, _, _ := svc.GenerateOutreachMessages(
		context.Background(), messageCandidates(), messageJob(), 2, nil)

	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if messages[0].CandidateID != "c1" || messages[1].CandidateID != "c2" {
		t.Errorf("capped messages = %s, %s", messages[0].CandidateID, messages[1].CandidateID)
	}
}

func TestGenerateOutreachMessagesSaveFailuresDoNotStopRun(t *testing.T) {
	svc := NewMessageService(nil, testLLMConfig(false), 0, zap.NewNop())
	saver := &saverStub{err: errors.New("db down")}

	messages, _, saveFailures := svc.GenerateOutreachMessages(
		context.Background(), messageCandidates(), messageJob(), 5, saver)

	if len(messages) != 3 {
		t.Errorf("got %d messages, want 3", len(messages))
	}
	if saveFailures != 3 {
		t.Errorf("saveFailures = %d, want 3", saveFailures)
	}
}

func TestTopMatchReasonTieBreaksInFixedOrder(t *testing.T) {
	got := topMatchReason(model.Breakdown{TitleMatch: 7, SkillsMatch: 7, ExperienceMatch: 2})
	if got != "title alignment (7.0/10)" {
		t.Errorf("topMatchReason = %q", got)
	}

	got = topMatchReason(model.Breakdown{SkillsMatch: 9.5})
	if got != "skills alignment (9.5/10)" {
		t.Errorf("topMatchReason = %q", got)
	}
}

func TestBuildMessagePromptTruncatesLists(t *testing.T) {
	prompt := buildMessagePrompt(messageCandidates()[0], messageJob())

	if !strings.Contains(prompt, "Go, PostgreSQL, Kubernetes") {
		t.Errorf("prompt missing top requirements:\n%s", prompt)
	}
	if strings.Contains(prompt, "Key requirements: Go, PostgreSQL, Kubernetes, Kafka") {
		t.Errorf("prompt should cap requirements at three:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Go, PostgreSQL, Kafka") {
		t.Errorf("prompt missing top skills:\n%s", prompt)
	}
	if !strings.Contains(prompt, "8.5/10") {
		t.Errorf("prompt missing score:\n%s", prompt)
	}
}
