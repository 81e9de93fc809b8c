package model

import (
	"time"

	"github.com/google/uuid"
)

// Personalization records which profile attributes the generated message
// actually mentions. All flags are false for the fallback template.
type Personalization struct {
	CompanyMention    bool `json:"companyMention"`
	SkillMention      bool `json:"skillMention"`
	ExperienceMention bool `json:"experienceMention"`
}

// OutreachMessage is one generated message for a (candidate, job) pair.
// Regeneration produces a new row; messages are not idempotent.
type OutreachMessage struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"-"`
	CandidateID     string          `gorm:"index" json:"candidateId"`
	JobID           string          `gorm:"index" json:"-"`
	CandidateName   string          `json:"candidateName"`
	Message         string          `gorm:"type:text" json:"message"`
	Subject         string          `json:"subject,omitempty"`
	Personalization Personalization `gorm:"embedded" json:"personalization"`
	GeneratedAt     time.Time       `gorm:"autoCreateTime" json:"generatedAt"`
}

func (m *OutreachMessage) TableName() string {
	return "outreach_messages"
}
