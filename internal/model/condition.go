// Package model defines the core health assessment data types.
package model

// Urgency is the triage level attached to a condition.
type Urgency string

const (
	UrgencyLow      Urgency = "Low"
	UrgencyModerate Urgency = "Moderate"
	UrgencyHigh     Urgency = "High"
)

// ValidUrgencies are the allowed urgency levels.
var ValidUrgencies = map[Urgency]bool{
	UrgencyLow:      true,
	UrgencyModerate: true,
	UrgencyHigh:     true,
}

// ConditionRule is one entry of the knowledge base.
type ConditionRule struct {
	Name            string   `json:"name" toml:"name"`
	Symptoms        []string `json:"symptoms" toml:"symptoms"`
	BaseWeight      float64  `json:"base_weight" toml:"weight"`
	Urgency         Urgency  `json:"urgency" toml:"urgency"`
	Explanation     string   `json:"explanation" toml:"explanation"`
	Recommendations []string `json:"recommendations" toml:"recommendations"`
}

// Clone returns a deep copy so callers cannot alias catalog slices.
func (r ConditionRule) Clone() ConditionRule {
	r.Symptoms = append([]string(nil), r.Symptoms...)
	r.Recommendations = append([]string(nil), r.Recommendations...)
	return r
}

// Specialist is a referral target for one or more conditions.
type Specialist struct {
	Name      string  `json:"name" toml:"name"`
	Specialty string  `json:"specialty" toml:"specialty"`
	Location  string  `json:"location" toml:"location"`
	Contact   string  `json:"contact" toml:"contact"`
	Rating    float64 `json:"rating" toml:"rating"`
}
