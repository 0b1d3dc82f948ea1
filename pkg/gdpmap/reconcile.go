package gdpmap

import "github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"

// Reconcile matches every catalog entry against gdpNames by exact,
// case-sensitive name equality. Codes whose name is present are mapped
// to that name; all other codes are returned as unmatched.
func Reconcile(catalog *models.CountryCatalog, gdpNames map[string]struct{}) models.ReconciliationResult {
	result := models.ReconciliationResult{
		Matched:   make(map[string]string),
		Unmatched: make(models.CodeSet),
	}
	for code, name := range catalog.Map() {
		if _, ok := gdpNames[name]; ok {
			result.Matched[code] = name
		} else {
			result.Unmatched.Add(code)
		}
	}
	return result
}

// ReconcileTable reconciles catalog against the country names of table.
func ReconcileTable(catalog *models.CountryCatalog, table *models.GdpTable) models.ReconciliationResult {
	return Reconcile(catalog, table.Names())
}
