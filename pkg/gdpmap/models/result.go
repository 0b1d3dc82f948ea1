package models

import (
	"encoding/json"
	"sort"
)

// CodeSet is a set of plot-codes. It serializes as a sorted JSON array.
type CodeSet map[string]struct{}

// NewCodeSet creates a set holding codes.
func NewCodeSet(codes ...string) CodeSet {
	s := make(CodeSet, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts code into the set.
func (s CodeSet) Add(code string) {
	s[code] = struct{}{}
}

// Has reports whether code is in the set.
func (s CodeSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// Sorted returns the members in sorted order.
func (s CodeSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON implements json.Marshaler.
func (s CodeSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *CodeSet) UnmarshalJSON(data []byte) error {
	var codes []string
	if err := json.Unmarshal(data, &codes); err != nil {
		return err
	}
	*s = NewCodeSet(codes...)
	return nil
}

// ReconciliationResult is the outcome of joining a catalog against the
// names of a GDP source. Every code of the catalog is in exactly one of
// Matched and Unmatched.
type ReconciliationResult struct {
	// Matched maps plot-code to the matched display-name.
	Matched map[string]string `json:"matched"`
	// Unmatched holds plot-codes whose name is absent from the source.
	Unmatched CodeSet `json:"unmatched"`
}

// YearExtraction is the per-year partition of catalog codes.
// Values, NotInFile and NoData are pairwise disjoint and together cover
// every catalog code.
type YearExtraction struct {
	// Year is the column label the values were read from.
	Year string `json:"year"`
	// Values maps plot-code to log10 of the GDP value.
	Values map[string]float64 `json:"values"`
	// NotInFile holds codes whose name has no row in the source.
	NotInFile CodeSet `json:"not_in_file"`
	// NoData holds codes whose row has an empty value for Year.
	NoData CodeSet `json:"no_data"`
}

// NewYearExtraction returns an empty extraction for year.
func NewYearExtraction(year string) *YearExtraction {
	return &YearExtraction{
		Year:      year,
		Values:    make(map[string]float64),
		NotInFile: make(CodeSet),
		NoData:    make(CodeSet),
	}
}

// Status classifies code within the extraction.
func (y *YearExtraction) Status(code string) CodeStatus {
	if _, ok := y.Values[code]; ok {
		return StatusValue
	}
	if y.NotInFile.Has(code) {
		return StatusNotInFile
	}
	if y.NoData.Has(code) {
		return StatusNoData
	}
	return StatusUnknown
}

// Len returns the total number of classified codes.
func (y *YearExtraction) Len() int {
	return len(y.Values) + len(y.NotInFile) + len(y.NoData)
}

// CodeStatus is the partition a code falls into for a year.
type CodeStatus string

const (
	// StatusValue means the code has a GDP value.
	StatusValue CodeStatus = "value"
	// StatusNotInFile means the country is missing from the source.
	StatusNotInFile CodeStatus = "not_in_file"
	// StatusNoData means the country row has no value for the year.
	StatusNoData CodeStatus = "no_data"
	// StatusUnknown means the code was not part of the extraction.
	StatusUnknown CodeStatus = "unknown"
)
