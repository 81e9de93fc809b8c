package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/fadilmartias/talent-sourcer/internal/model"
)

// JobRequest is the inbound job payload shared by the process, batch and
// search endpoints.
type JobRequest struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
}

// ToModel converts the request into a job, generating an id when the
// client omitted one and defaulting the location to remote.
func (r *JobRequest) ToModel() *model.Job {
	id := r.ID
	if id == "" {
		id = "job_" + uuid.NewString()
	}
	location := r.Location
	if location == "" {
		location = "Remote"
	}
	return &model.Job{
		ID:           id,
		Title:        r.Title,
		Company:      r.Company,
		Description:  r.Description,
		Requirements: r.Requirements,
		Location:     location,
		Salary:       r.Salary,
		CreatedAt:    time.Now(),
	}
}

type BatchJobsRequest struct {
	Jobs []JobRequest `json:"jobs"`
}

type SearchRequest struct {
	JobDescription *JobRequest `json:"jobDescription"`
}

type GenerateMessagesRequest struct {
	Candidates     []model.ScoredCandidate `json:"candidates"`
	JobDescription *JobRequest             `json:"jobDescription"`
}
