package cardinal

import "strings"

const (
	// DistinguishedOrder is the order tag that earns the rank bonus
	DistinguishedOrder = "CB"
	// AgeThreshold separates the two age tiers; ages strictly below it are the younger tier
	AgeThreshold = 70
	// MaxAge bounds accepted ages
	MaxAge = 130
)

// Cardinal is an immutable, validated member of the population
type Cardinal struct {
	Name           string `json:"name"`
	Country        string `json:"country"`
	Continent      string `json:"continent"`
	Order          string `json:"order"`
	Age            int    `json:"age"`
	Pope           string `json:"pope,omitempty"`
	ConsistoryDate string `json:"consistory_date,omitempty"`
}

// Distinguished reports whether the cardinal holds the CB order tag
func (c Cardinal) Distinguished() bool {
	return c.Order == DistinguishedOrder
}

// Younger reports whether the cardinal is below AgeThreshold
func (c Cardinal) Younger() bool {
	return c.Age < AgeThreshold
}

// Record is a raw row before validation. Empty strings and a nil Age mean the
// attribute was absent in the source.
type Record struct {
	Name           string `validate:"required"`
	Country        string `validate:"required"`
	Continent      string `validate:"required"`
	Order          string `validate:"required"`
	Age            *int   `validate:"required,gte=0,lte=130"`
	Pope           string
	ConsistoryDate string
}

func (r *Record) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Country = strings.TrimSpace(r.Country)
	r.Continent = strings.TrimSpace(r.Continent)
	r.Order = strings.TrimSpace(r.Order)
	r.Pope = strings.TrimSpace(r.Pope)
	r.ConsistoryDate = strings.TrimSpace(r.ConsistoryDate)
}

func (r *Record) cardinal() Cardinal {
	return Cardinal{
		Name:           r.Name,
		Country:        r.Country,
		Continent:      r.Continent,
		Order:          r.Order,
		Age:            *r.Age,
		Pope:           r.Pope,
		ConsistoryDate: r.ConsistoryDate,
	}
}

// RecordOf converts a Cardinal back to its raw form
func RecordOf(c Cardinal) Record {
	age := c.Age
	return Record{
		Name:           c.Name,
		Country:        c.Country,
		Continent:      c.Continent,
		Order:          c.Order,
		Age:            &age,
		Pope:           c.Pope,
		ConsistoryDate: c.ConsistoryDate,
	}
}

// DefaultPolicy supplies values for absent attributes. A nil policy means
// absence is an error. Name is never defaulted.
type DefaultPolicy struct {
	Country   string `yaml:"country"`
	Continent string `yaml:"continent"`
	Order     string `yaml:"order"`
	Age       *int   `yaml:"age"`
}

// applyCountry fills the country alone, ahead of continent resolution
func (p *DefaultPolicy) applyCountry(r *Record) {
	if p != nil && r.Country == "" {
		r.Country = p.Country
	}
}

func (p *DefaultPolicy) apply(r *Record) {
	if p == nil {
		return
	}
	p.applyCountry(r)
	if r.Continent == "" {
		r.Continent = p.Continent
	}
	if r.Order == "" {
		r.Order = p.Order
	}
	if r.Age == nil && p.Age != nil {
		age := *p.Age
		r.Age = &age
	}
}
