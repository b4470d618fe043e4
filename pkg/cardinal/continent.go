package cardinal

import (
	"regexp"
	"strings"
)

// ContinentResolver maps a country to its continent. Implementations live
// outside this package; the store only consults one for records that arrive
// without a continent.
type ContinentResolver interface {
	Continent(country string) (string, bool)
}

// StaticResolver is a ContinentResolver backed by a fixed table
type StaticResolver map[string]string

// Continent looks the country up exactly, then case-insensitively
func (s StaticResolver) Continent(country string) (string, bool) {
	if c, ok := s[country]; ok {
		return c, true
	}
	for k, c := range s {
		if strings.EqualFold(k, country) {
			return c, true
		}
	}
	return "", false
}

var annotationPattern = regexp.MustCompile(`\[.*?\]`)

// CleanCountry strips bracketed footnote markers such as "Italy[a]"
func CleanCountry(country string) string {
	return strings.TrimSpace(annotationPattern.ReplaceAllString(country, ""))
}
