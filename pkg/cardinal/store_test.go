package cardinal

import (
	"errors"
	"strings"
	"testing"
)

func age(v int) *int { return &v }

func validRecord(name string) Record {
	return Record{
		Name:           name,
		Country:        "Italy",
		Continent:      "Europe",
		Order:          "CP",
		Age:            age(72),
		Pope:           "Francis",
		ConsistoryDate: "2014-02-22",
	}
}

func TestNewStore_Valid(t *testing.T) {
	store, err := NewStore([]Record{validRecord("A"), validRecord("B")}, StoreOptions{})
	if err != nil {
		t.Fatalf("NewStore() = %v", err)
	}

	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
	if store.At(1).Name != "B" {
		t.Errorf("At(1) = %+v", store.At(1))
	}
	if i, ok := store.IndexOf("B"); !ok || i != 1 {
		t.Errorf("IndexOf(B) = %d, %v", i, ok)
	}
	if _, ok := store.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}

	all := store.All()
	all[0].Name = "mutated"
	if store.At(0).Name != "A" {
		t.Error("All() must return a copy")
	}
}

func TestNewStore_MissingAttributeFailsFast(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
		field  string
	}{
		{"missing country", func(r *Record) { r.Country = "" }, "Country"},
		{"missing continent", func(r *Record) { r.Continent = "  " }, "Continent"},
		{"missing order", func(r *Record) { r.Order = "" }, "Order"},
		{"missing age", func(r *Record) { r.Age = nil }, "Age"},
		{"missing name", func(r *Record) { r.Name = "" }, "Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := validRecord("Bad")
			tt.mutate(&bad)

			_, err := NewStore([]Record{validRecord("A"), bad}, StoreOptions{})
			if !errors.Is(err, ErrMissingAttribute) {
				t.Fatalf("NewStore() = %v, want ErrMissingAttribute", err)
			}

			var ee *EntityError
			if !errors.As(err, &ee) {
				t.Fatalf("expected *EntityError, got %T", err)
			}
			if ee.Row != 1 || ee.Field != tt.field {
				t.Errorf("EntityError = %+v, want row 1 field %s", ee, tt.field)
			}
		})
	}
}

func TestNewStore_ErrorNamesEntity(t *testing.T) {
	bad := validRecord("Cardinal Bad")
	bad.Age = nil

	_, err := NewStore([]Record{bad}, StoreOptions{})
	if err == nil || !strings.Contains(err.Error(), `"Cardinal Bad"`) {
		t.Fatalf("error should name the entity, got %v", err)
	}
}

func TestNewStore_InvalidAge(t *testing.T) {
	bad := validRecord("A")
	bad.Age = age(-3)

	_, err := NewStore([]Record{bad}, StoreOptions{})
	if !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("NewStore() = %v, want ErrInvalidAttribute", err)
	}
}

func TestNewStore_ZeroAgeIsPresent(t *testing.T) {
	r := validRecord("A")
	r.Age = age(0)

	store, err := NewStore([]Record{r}, StoreOptions{})
	if err != nil {
		t.Fatalf("age 0 should be accepted: %v", err)
	}
	if store.At(0).Age != 0 {
		t.Errorf("Age = %d", store.At(0).Age)
	}
}

func TestNewStore_DuplicateName(t *testing.T) {
	_, err := NewStore([]Record{validRecord("A"), validRecord(" A ")}, StoreOptions{})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("NewStore() = %v, want ErrDuplicateName", err)
	}
}

func TestNewStore_DefaultPolicy(t *testing.T) {
	r := Record{Name: "A", Country: "Italy"}
	policy := &DefaultPolicy{Continent: "Unknown", Order: "CP", Age: age(80)}

	store, err := NewStore([]Record{r}, StoreOptions{Defaults: policy})
	if err != nil {
		t.Fatalf("NewStore() = %v", err)
	}

	c := store.At(0)
	if c.Continent != "Unknown" || c.Order != "CP" || c.Age != 80 {
		t.Errorf("defaults not applied: %+v", c)
	}

	// a policy that leaves age unset still fails
	_, err = NewStore([]Record{r}, StoreOptions{Defaults: &DefaultPolicy{Continent: "X", Order: "CP"}})
	if !errors.Is(err, ErrMissingAttribute) {
		t.Fatalf("NewStore() = %v, want ErrMissingAttribute", err)
	}
}

func TestNewStore_ResolverFillsContinent(t *testing.T) {
	r := validRecord("A")
	r.Country = "Brazil[b]"
	r.Continent = ""

	resolver := StaticResolver{"brazil": "South America"}
	store, err := NewStore([]Record{r}, StoreOptions{Resolver: resolver})
	if err != nil {
		t.Fatalf("NewStore() = %v", err)
	}
	if got := store.At(0); got.Country != "Brazil" || got.Continent != "South America" {
		t.Errorf("got %+v", got)
	}
}

func TestNewStore_ResolverSeesDefaultCountry(t *testing.T) {
	r := validRecord("A")
	r.Country = ""
	r.Continent = ""

	opts := StoreOptions{
		Resolver: StaticResolver{"vatican city": "Europe"},
		Defaults: &DefaultPolicy{Country: "Vatican City", Continent: "Unknown"},
	}
	store, err := NewStore([]Record{r}, opts)
	if err != nil {
		t.Fatalf("NewStore() = %v", err)
	}
	if got := store.At(0); got.Country != "Vatican City" || got.Continent != "Europe" {
		t.Errorf("got %+v, want Vatican City in Europe", got)
	}
}

func TestCleanCountry(t *testing.T) {
	cases := map[string]string{
		"Italy":          "Italy",
		"Italy[a]":       "Italy",
		" Spain [12] ":   "Spain",
		"Peru[a][b]":     "Peru",
		"[note]Portugal": "Portugal",
	}
	for in, want := range cases {
		if got := CleanCountry(in); got != want {
			t.Errorf("CleanCountry(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCardinalPredicates(t *testing.T) {
	c := Cardinal{Order: DistinguishedOrder, Age: AgeThreshold - 1}
	if !c.Distinguished() || !c.Younger() {
		t.Errorf("predicates wrong for %+v", c)
	}
	c = Cardinal{Order: "CD", Age: AgeThreshold}
	if c.Distinguished() || c.Younger() {
		t.Errorf("predicates wrong for %+v", c)
	}
}

func TestFromCardinals(t *testing.T) {
	store, err := FromCardinals(
		Cardinal{Name: "A", Country: "Italy", Continent: "Europe", Order: "CB", Age: 65},
		Cardinal{Name: "B", Country: "Italy", Continent: "Europe", Order: "CB", Age: 66},
	)
	if err != nil {
		t.Fatalf("FromCardinals() = %v", err)
	}
	if store.Len() != 2 {
		t.Errorf("Len() = %d", store.Len())
	}

	if _, err := FromCardinals(Cardinal{Name: "A"}); !errors.Is(err, ErrMissingAttribute) {
		t.Errorf("FromCardinals() = %v, want ErrMissingAttribute", err)
	}
}
