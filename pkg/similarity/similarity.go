// Package similarity scores how alike two cardinals are.
//
// The score is the sum of independent rule contributions. Every rule is
// symmetric in its arguments, so the total is too, and no cap is applied.
package similarity

import "github.com/dd0wney/cluso-conclave/pkg/cardinal"

// Rule is one additive contribution to the similarity score
type Rule struct {
	Name  string
	Score func(a, b cardinal.Cardinal) int
}

// Contribution is the score a single rule gave a pair
type Contribution struct {
	Rule  string `json:"rule"`
	Score int    `json:"score"`
}

// Weigher evaluates a fixed rule list
type Weigher struct {
	rules []Rule
}

// NewWeigher returns a Weigher over the given rules. With no rules it uses DefaultRules.
func NewWeigher(rules ...Rule) *Weigher {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Weigher{rules: rules}
}

var defaultWeigher = NewWeigher()

// Weight scores a pair with the default rules
func Weight(a, b cardinal.Cardinal) int {
	return defaultWeigher.Weight(a, b)
}

// Weight sums every rule's contribution
func (w *Weigher) Weight(a, b cardinal.Cardinal) int {
	total := 0
	for _, r := range w.rules {
		total += r.Score(a, b)
	}
	return total
}

// Breakdown returns each rule's contribution in rule order
func (w *Weigher) Breakdown(a, b cardinal.Cardinal) []Contribution {
	out := make([]Contribution, len(w.rules))
	for i, r := range w.rules {
		out[i] = Contribution{Rule: r.Name, Score: r.Score(a, b)}
	}
	return out
}

// Rules returns a copy of the rule list
func (w *Weigher) Rules() []Rule {
	out := make([]Rule, len(w.rules))
	copy(out, w.rules)
	return out
}
