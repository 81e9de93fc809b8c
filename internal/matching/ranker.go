package matching

import (
	"sort"

	"github.com/fadilmartias/talent-sourcer/internal/model"
)

// Match pairs a candidate with its match fraction for one job.
type Match struct {
	Candidate model.Candidate
	Fraction  float64
}

// Rank scores every pool member against the job, keeps entries at or above
// minScore and sorts descending by fraction. Equal scores keep their pool
// order.
func Rank(pool []model.Candidate, job *model.Job, minScore float64) []Match {
	jobText := JobText(job)

	// A job with no detected keywords carries no signal; nobody ranks,
	// whatever the threshold.
	if len(DetectKeywords(jobText)) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(pool))
	for _, candidate := range pool {
		fraction := Score(jobText, candidate.Skills)
		if fraction >= minScore {
			matches = append(matches, Match{Candidate: candidate, Fraction: fraction})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Fraction > matches[j].Fraction
	})

	return matches
}
