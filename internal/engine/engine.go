// Package engine scores knowledge base rules against reported symptoms.
package engine

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/rcliao/healthpredict/internal/model"
)

// Catalog is the read side of a knowledge base.
type Catalog interface {
	ListRules() []model.ConditionRule
}

// Inputs is everything a scoring run reads. Profile may be nil, in which
// case no contextual multiplier applies.
type Inputs struct {
	Symptoms []string
	Profile  *model.UserProfile
	Vitals   model.Vitals
	History  []string
}

// Engine is a pure scorer over an injected catalog.
type Engine struct {
	catalog Catalog
}

// New creates an engine over the given catalog.
func New(c Catalog) *Engine {
	return &Engine{catalog: c}
}

// Score returns every rule with a positive score, highest first. Rules
// with equal scores keep catalog order. An empty symptom set yields an
// empty result.
func (e *Engine) Score(in Inputs) []model.ScoredMatch {
	matches := []model.ScoredMatch{}
	if len(in.Symptoms) == 0 {
		return matches
	}

	fold := cases.Fold()
	reported := make([]string, len(in.Symptoms))
	for i, s := range in.Symptoms {
		reported[i] = fold.String(s)
	}

	for _, rule := range e.catalog.ListRules() {
		matched := matchSymptoms(fold, rule.Symptoms, reported)
		if len(matched) == 0 {
			continue
		}
		score := float64(len(matched)) / float64(len(rule.Symptoms)) * rule.BaseWeight
		if in.Profile != nil {
			score = applyModifiers(rule.Name, score, in)
		}
		if score <= 0 {
			continue
		}
		matches = append(matches, model.ScoredMatch{
			Name:            rule.Name,
			RawScore:        score,
			Urgency:         rule.Urgency,
			Explanation:     rule.Explanation,
			Recommendations: rule.Recommendations,
			Matched:         matched,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].RawScore > matches[j].RawScore
	})
	return matches
}

// matchSymptoms returns the rule symptoms contained in any reported
// symptom. Containment is one-way: "High fever" matches rule symptom
// "Fever", but "Fever" does not match "High fever". Substrings count, so
// "Headache-free" still matches "Headache".
func matchSymptoms(fold cases.Caser, ruleSymptoms, reported []string) []string {
	var matched []string
	for _, rs := range ruleSymptoms {
		needle := fold.String(rs)
		for _, r := range reported {
			if strings.Contains(r, needle) {
				matched = append(matched, rs)
				break
			}
		}
	}
	return matched
}
