package similarity

import "github.com/dd0wney/cluso-conclave/pkg/cardinal"

// Rule names, as reported by Breakdown
const (
	// RuleSamePope scores a shared creating pope
	RuleSamePope = "same_pope"
	// RuleSameDate scores a shared consistory date
	RuleSameDate = "same_date"
	// RuleAgeTier scores how many of the pair are under 70
	RuleAgeTier = "age_tier"
	// RuleSameCountry scores a shared country
	RuleSameCountry = "same_country"
	// RuleSameContinent scores a shared continent
	RuleSameContinent = "same_continent"
	// RuleRank scores how many of the pair are cardinal bishops
	RuleRank = "rank"
)

// DefaultRules is the conclave rule set:
//
//	same_pope       +1  both created by the same pope
//	same_date       +1  both created at the same consistory date
//	age_tier        +2  both under 70, +1 if exactly one is
//	same_country    +1
//	same_continent  +1
//	rank            +2  both CB, +1 if exactly one is
func DefaultRules() []Rule {
	return []Rule{
		{Name: RuleSamePope, Score: func(a, b cardinal.Cardinal) int {
			return sameKnown(a.Pope, b.Pope)
		}},
		{Name: RuleSameDate, Score: func(a, b cardinal.Cardinal) int {
			return sameKnown(a.ConsistoryDate, b.ConsistoryDate)
		}},
		{Name: RuleAgeTier, Score: func(a, b cardinal.Cardinal) int {
			return tier(a.Younger(), b.Younger())
		}},
		{Name: RuleSameCountry, Score: func(a, b cardinal.Cardinal) int {
			return same(a.Country, b.Country)
		}},
		{Name: RuleSameContinent, Score: func(a, b cardinal.Cardinal) int {
			return same(a.Continent, b.Continent)
		}},
		{Name: RuleRank, Score: func(a, b cardinal.Cardinal) int {
			return tier(a.Distinguished(), b.Distinguished())
		}},
	}
}

func same(x, y string) int {
	if x == y {
		return 1
	}
	return 0
}

// sameKnown treats an absent value as matching nothing
func sameKnown(x, y string) int {
	if x == "" || y == "" {
		return 0
	}
	return same(x, y)
}

// tier gives 2 when both hold, 1 when exactly one does
func tier(x, y bool) int {
	switch {
	case x && y:
		return 2
	case x || y:
		return 1
	default:
		return 0
	}
}
