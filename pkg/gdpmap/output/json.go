// Package output serializes reconciliation and extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
)

// ToJSON serializes v to JSON, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ExtractionToJSON serializes a single year extraction.
func ExtractionToJSON(e *models.YearExtraction, pretty bool) ([]byte, error) {
	return ToJSON(e, pretty)
}

// ReconciliationToJSON serializes a reconciliation result.
func ReconciliationToJSON(r models.ReconciliationResult, pretty bool) ([]byte, error) {
	return ToJSON(r, pretty)
}
