package model

import "time"

// ScoredMatch is a knowledge base rule that scored above zero.
type ScoredMatch struct {
	Name            string   `json:"name"`
	RawScore        float64  `json:"raw_score"`
	Urgency         Urgency  `json:"urgency"`
	Explanation     string   `json:"explanation"`
	Recommendations []string `json:"recommendations"`
	Matched         []string `json:"matched_symptoms,omitempty"`
}

// NormalizedResult is a ScoredMatch with a presentation confidence.
type NormalizedResult struct {
	ScoredMatch
	Confidence float64 `json:"confidence"`
}

// Assessment is a published set of results together with the symptoms
// that produced them.
type Assessment struct {
	ID        string             `json:"id"`
	Session   string             `json:"session"`
	Email     string             `json:"email,omitempty"`
	Symptoms  []string           `json:"symptoms"`
	Results   []NormalizedResult `json:"results"`
	CreatedAt time.Time          `json:"created_at"`
}

// Top returns the highest ranked result, if any.
func (a *Assessment) Top() (NormalizedResult, bool) {
	if a == nil || len(a.Results) == 0 {
		return NormalizedResult{}, false
	}
	return a.Results[0], true
}
