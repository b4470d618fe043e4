package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-conclave/pkg/cardinal"
)

// Input column names
const (
	ColName           = "Name"
	ColCountry        = "Country"
	ColContinent      = "Continent"
	ColOrder          = "Order"
	ColAge            = "Age"
	ColPope           = "Pope_of_consistory"
	ColConsistoryDate = "Date_of_consistory"
)

// ErrMissingColumn is returned when the header lacks the Name column
var ErrMissingColumn = errors.New("missing column")

// ReadCardinals parses a header-led CSV of cardinals. Columns are matched by
// name, in any order; only Name is mandatory and unknown columns are ignored.
// Empty cells become absent attributes, left for the store's validation or
// default policy. Row numbers in errors count data rows from 0.
func ReadCardinals(r io.Reader) ([]cardinal.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		columns[name] = i
	}
	if _, ok := columns[ColName]; !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, ColName)
	}

	field := func(row []string, col string) string {
		i, ok := columns[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []cardinal.Record
	for rowNum := 0; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNum, err)
		}

		rec := cardinal.Record{
			Name:           field(row, ColName),
			Country:        field(row, ColCountry),
			Continent:      field(row, ColContinent),
			Order:          field(row, ColOrder),
			Pope:           field(row, ColPope),
			ConsistoryDate: field(row, ColConsistoryDate),
		}

		if raw := field(row, ColAge); raw != "" {
			age, ok := parseAge(raw)
			if !ok {
				return nil, &cardinal.EntityError{
					Op:    "ReadCardinals",
					Row:   rowNum,
					Name:  rec.Name,
					Field: ColAge,
					Cause: cardinal.ErrInvalidAttribute,
				}
			}
			rec.Age = &age
		}

		records = append(records, rec)
	}

	return records, nil
}

// parseAge accepts integers and integral decimals such as "78.0"
func parseAge(raw string) (int, bool) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
