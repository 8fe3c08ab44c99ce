// Package kb holds the immutable condition catalog and referral table.
package kb

import (
	"errors"
	"fmt"

	"github.com/rcliao/healthpredict/internal/model"
)

// ErrInvalidRule is wrapped by every validation failure.
var ErrInvalidRule = errors.New("invalid rule")

// SpecialistEntry maps a specialist to the conditions they take referrals for.
type SpecialistEntry struct {
	model.Specialist
	Conditions []string `toml:"conditions"`
}

// KnowledgeBase is the read-only rule catalog. Safe for concurrent use.
type KnowledgeBase struct {
	rules       []model.ConditionRule
	index       map[string]int
	specialists []SpecialistEntry
	referral    map[string][]model.Specialist
}

// New validates and copies the given rules and specialists.
func New(rules []model.ConditionRule, specialists []SpecialistEntry) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{
		rules:    make([]model.ConditionRule, 0, len(rules)),
		index:    make(map[string]int, len(rules)),
		referral: map[string][]model.Specialist{},
	}
	for i, r := range rules {
		if err := validate(r); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		if _, dup := kb.index[r.Name]; dup {
			return nil, fmt.Errorf("rule %d: %w: duplicate name %q", i, ErrInvalidRule, r.Name)
		}
		kb.index[r.Name] = len(kb.rules)
		kb.rules = append(kb.rules, r.Clone())
	}
	for _, sp := range specialists {
		sp.Conditions = append([]string(nil), sp.Conditions...)
		kb.specialists = append(kb.specialists, sp)
		for _, c := range sp.Conditions {
			kb.referral[c] = append(kb.referral[c], sp.Specialist)
		}
	}
	return kb, nil
}

func validate(r model.ConditionRule) error {
	if r.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRule)
	}
	if len(r.Symptoms) == 0 {
		return fmt.Errorf("%w: %q has no symptoms", ErrInvalidRule, r.Name)
	}
	for _, s := range r.Symptoms {
		if s == "" {
			return fmt.Errorf("%w: %q has an empty symptom", ErrInvalidRule, r.Name)
		}
	}
	if r.BaseWeight <= 0 || r.BaseWeight > 1 {
		return fmt.Errorf("%w: %q weight %v outside (0, 1]", ErrInvalidRule, r.Name, r.BaseWeight)
	}
	if !model.ValidUrgencies[r.Urgency] {
		return fmt.Errorf("%w: %q has unknown urgency %q", ErrInvalidRule, r.Name, r.Urgency)
	}
	return nil
}

// ListRules returns a copy of the catalog in declaration order.
func (kb *KnowledgeBase) ListRules() []model.ConditionRule {
	out := make([]model.ConditionRule, len(kb.rules))
	for i, r := range kb.rules {
		out[i] = r.Clone()
	}
	return out
}

// Rule looks up a rule by condition name.
func (kb *KnowledgeBase) Rule(name string) (model.ConditionRule, bool) {
	i, ok := kb.index[name]
	if !ok {
		return model.ConditionRule{}, false
	}
	return kb.rules[i].Clone(), true
}

// SpecialistsFor returns the referral list for a condition. Unmapped
// conditions yield an empty slice.
func (kb *KnowledgeBase) SpecialistsFor(name string) []model.Specialist {
	return append([]model.Specialist{}, kb.referral[name]...)
}

// Len returns the number of rules.
func (kb *KnowledgeBase) Len() int { return len(kb.rules) }
