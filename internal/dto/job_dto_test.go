package dto

import (
	"strings"
	"testing"
)

func TestJobRequestToModelDefaults(t *testing.T) {
	req := JobRequest{Title: "Engineer", Company: "Acme"}
	job := req.ToModel()

	if !strings.HasPrefix(job.ID, "job_") {
		t.Errorf("generated id = %q, want job_ prefix", job.ID)
	}
	if job.Location != "Remote" {
		t.Errorf("location = %q, want Remote default", job.Location)
	}
	if job.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestJobRequestToModelKeepsClientValues(t *testing.T) {
	req := JobRequest{
		ID:           "job_42",
		Title:        "Engineer",
		Company:      "Acme",
		Location:     "Berlin",
		Requirements: []string{"Go"},
		Salary:       "100k",
	}
	job := req.ToModel()

	if job.ID != "job_42" || job.Location != "Berlin" || job.Salary != "100k" {
		t.Errorf("job = %+v", job)
	}
	if len(job.Requirements) != 1 || job.Requirements[0] != "Go" {
		t.Errorf("requirements = %v", job.Requirements)
	}
}
