// Package scoring turns statement data and filing evidence into
// checklist metric scores. Every function is pure: inputs in, a Score
// with its reasoning out. Missing data degrades to the metric's
// documented neutral value rather than erroring, so one thin provider
// response never sinks a whole run.
package scoring

import (
	"strings"

	"github.com/ternarybob/gauntlet/internal/rules"
)

// Score is one checklist metric's outcome.
type Score struct {
	// Value is the awarded score. Zero when Manual is set.
	Value float64 `json:"value"`
	// Manual marks metrics that need human judgement; Value is a
	// placeholder and the metric is excluded from automated totals.
	Manual bool `json:"manual,omitempty"`
	// Reasoning explains the score in one line for the audit trail.
	Reasoning string `json:"reasoning"`
}

// Scorer applies the checklist ladders using a rule set's thresholds.
type Scorer struct {
	rules *rules.Rules
}

// NewScorer creates a scorer over the given rule set.
func NewScorer(r *rules.Rules) *Scorer {
	return &Scorer{rules: r}
}

func (s *Scorer) thresholds() rules.Thresholds {
	return s.rules.Thresholds
}

func scored(value float64, reasoning string) Score {
	return Score{Value: value, Reasoning: reasoning}
}

func manual(reasoning string) Score {
	return Score{Manual: true, Reasoning: reasoning}
}

// joinStrengths assembles reasoning fragments into one sentence.
func joinStrengths(parts []string) string {
	joined := strings.Join(parts, "; ")
	if joined == "" {
		return joined
	}
	return strings.ToUpper(joined[:1]) + joined[1:]
}
