package model

import (
	"time"
)

// Job is a posting submitted for sourcing. Re-submitting the same id
// overwrites the stored copy.
type Job struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Description  string    `gorm:"type:text" json:"description"`
	Requirements []string  `gorm:"serializer:json;type:jsonb" json:"requirements"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (j *Job) TableName() string {
	return "jobs"
}
