package cardinal

import (
	"errors"

	"github.com/dd0wney/cluso-conclave/pkg/validation"
)

// StoreOptions configures how raw records become cardinals
type StoreOptions struct {
	Defaults *DefaultPolicy
	Resolver ContinentResolver
}

// Store is the immutable, ordered population. Order is the input order and
// defines node indices downstream.
type Store struct {
	cardinals []Cardinal
	index     map[string]int
}

// NewStore validates records and builds a Store. It fails on the first
// malformed or duplicate record.
func NewStore(records []Record, opts StoreOptions) (*Store, error) {
	s := &Store{
		cardinals: make([]Cardinal, 0, len(records)),
		index:     make(map[string]int, len(records)),
	}

	for row, rec := range records {
		rec.normalize()
		opts.Defaults.applyCountry(&rec)
		rec.Country = CleanCountry(rec.Country)

		if rec.Continent == "" && rec.Country != "" && opts.Resolver != nil {
			if c, ok := opts.Resolver.Continent(rec.Country); ok {
				rec.Continent = c
			}
		}
		opts.Defaults.apply(&rec)

		if err := validation.ValidateStruct(&rec); err != nil {
			return nil, recordError(row, rec.Name, err)
		}
		if _, dup := s.index[rec.Name]; dup {
			return nil, &EntityError{Op: "NewStore", Row: row, Name: rec.Name, Field: "Name", Cause: ErrDuplicateName}
		}

		s.index[rec.Name] = len(s.cardinals)
		s.cardinals = append(s.cardinals, rec.cardinal())
	}

	return s, nil
}

// FromCardinals builds a Store from already typed cardinals, applying the
// same validation as NewStore.
func FromCardinals(cardinals ...Cardinal) (*Store, error) {
	records := make([]Record, len(cardinals))
	for i, c := range cardinals {
		records[i] = RecordOf(c)
	}
	return NewStore(records, StoreOptions{})
}

func recordError(row int, name string, err error) error {
	var fe *validation.FieldError
	if !errors.As(err, &fe) {
		return &EntityError{Op: "NewStore", Row: row, Name: name, Cause: err}
	}

	cause := ErrInvalidAttribute
	if fe.Tag == "required" {
		cause = ErrMissingAttribute
	}
	return &EntityError{Op: "NewStore", Row: row, Name: name, Field: fe.Field, Cause: cause}
}

// Len returns the population size
func (s *Store) Len() int {
	return len(s.cardinals)
}

// At returns the cardinal at position i
func (s *Store) At(i int) Cardinal {
	return s.cardinals[i]
}

// Lookup finds a cardinal by name
func (s *Store) Lookup(name string) (Cardinal, bool) {
	i, ok := s.index[name]
	if !ok {
		return Cardinal{}, false
	}
	return s.cardinals[i], true
}

// IndexOf returns the position of the named cardinal
func (s *Store) IndexOf(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// All returns a copy of the population in input order
func (s *Store) All() []Cardinal {
	out := make([]Cardinal, len(s.cardinals))
	copy(out, s.cardinals)
	return out
}
