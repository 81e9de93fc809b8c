// Package matching implements the candidate-ranking core: keyword
// detection over job text, the match scorer, and the ranker.
package matching

import (
	"strings"

	"github.com/fadilmartias/talent-sourcer/internal/model"
	"github.com/fadilmartias/talent-sourcer/internal/vocabulary"
)

// JobText concatenates the fields of a job that participate in keyword
// detection: title, requirements and description.
func JobText(job *model.Job) string {
	parts := make([]string, 0, 3)
	parts = append(parts, job.Title)
	parts = append(parts, strings.Join(job.Requirements, " "))
	parts = append(parts, job.Description)
	return strings.Join(parts, " ")
}

// DetectKeywords returns the vocabulary terms appearing as substrings of
// jobText, deduplicated, in vocabulary order.
func DetectKeywords(jobText string) []string {
	jobLower := strings.ToLower(jobText)
	seen := make(map[string]bool, len(vocabulary.SkillKeywords))
	var detected []string
	for _, term := range vocabulary.SkillKeywords {
		if seen[term] {
			continue
		}
		if strings.Contains(jobLower, term) {
			seen[term] = true
			detected = append(detected, term)
		}
	}
	return detected
}

// Score returns the match fraction in [0,1] between a job's text and a
// candidate's skill list: the share of detected job keywords covered by at
// least one skill. Zero detected keywords means no signal and scores 0.
func Score(jobText string, skills []string) float64 {
	detected := DetectKeywords(jobText)
	if len(detected) == 0 {
		return 0
	}

	lowered := make([]string, len(skills))
	for i, skill := range skills {
		lowered[i] = strings.ToLower(skill)
	}

	matched := 0
	for _, keyword := range detected {
		if keywordMatches(keyword, lowered) {
			matched++
		}
	}
	return float64(matched) / float64(len(detected))
}

// MatchedCount reports how many of the job's detected keywords a skill
// list covers, along with the total detected. Used for reasoning text.
func MatchedCount(jobText string, skills []string) (matched, total int) {
	detected := DetectKeywords(jobText)
	lowered := make([]string, len(skills))
	for i, skill := range skills {
		lowered[i] = strings.ToLower(skill)
	}
	for _, keyword := range detected {
		if keywordMatches(keyword, lowered) {
			matched++
		}
	}
	return matched, len(detected)
}

// keywordMatches applies the bidirectional substring test against each
// lowercased skill, augmented by the curated synonym map.
func keywordMatches(keyword string, loweredSkills []string) bool {
	for _, skill := range loweredSkills {
		if skill == "" {
			continue
		}
		if strings.Contains(skill, keyword) || strings.Contains(keyword, skill) {
			return true
		}
		if vocabulary.Related(keyword, skill) {
			return true
		}
	}
	return false
}
