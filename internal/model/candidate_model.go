package model

import (
	"time"
)

// Candidate is a sourced profile. It is read-only input to the ranking
// pipeline; the pool that supplied it owns the data.
type Candidate struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	LinkedinURL  string    `gorm:"uniqueIndex" json:"linkedinUrl"`
	Headline     string    `json:"headline"`
	Location     string    `json:"location"`
	Company      string    `json:"company,omitempty"`
	Experience   string    `json:"experience,omitempty"`
	Education    string    `json:"education,omitempty"`
	Skills       []string  `gorm:"serializer:json;type:jsonb" json:"skills"`
	ProfileImage string    `json:"profileImage,omitempty"`
	ExtractedAt  time.Time `json:"extractedAt"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}

// FirstName returns the first whitespace-separated token of the name,
// used by the fallback outreach template.
func (c *Candidate) FirstName() string {
	for i, r := range c.Name {
		if r == ' ' {
			return c.Name[:i]
		}
	}
	return c.Name
}
