package gdpmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
)

func mustCatalog(t *testing.T, m map[string]string) *models.CountryCatalog {
	t.Helper()
	c, err := models.CatalogFromMap(m)
	require.NoError(t, err)
	return c
}

func names(n ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(n))
	for _, s := range n {
		out[s] = struct{}{}
	}
	return out
}

func TestReconcile(t *testing.T) {
	t.Run("partial match", func(t *testing.T) {
		catalog := mustCatalog(t, map[string]string{"us": "United States", "ca": "Canada"})
		result := Reconcile(catalog, names("United States"))

		assert.Equal(t, map[string]string{"us": "United States"}, result.Matched)
		assert.Equal(t, models.NewCodeSet("ca"), result.Unmatched)
	})

	t.Run("exact case-sensitive match", func(t *testing.T) {
		catalog := mustCatalog(t, map[string]string{"us": "United States", "ca": "Canada", "mx": "Mexico"})
		result := Reconcile(catalog, names("united states", "Canada ", "Mexico"))

		assert.Equal(t, map[string]string{"mx": "Mexico"}, result.Matched)
		assert.Equal(t, models.NewCodeSet("us", "ca"), result.Unmatched)
	})

	t.Run("duplicate catalog names", func(t *testing.T) {
		catalog := mustCatalog(t, map[string]string{"cd": "Congo", "cg": "Congo"})
		result := Reconcile(catalog, names("Congo"))

		assert.Equal(t, map[string]string{"cd": "Congo", "cg": "Congo"}, result.Matched)
		assert.Empty(t, result.Unmatched)
	})

	t.Run("no names", func(t *testing.T) {
		catalog := mustCatalog(t, map[string]string{"us": "United States"})
		result := Reconcile(catalog, nil)

		assert.Empty(t, result.Matched)
		assert.Equal(t, models.NewCodeSet("us"), result.Unmatched)
	})
}

func TestReconcilePartition(t *testing.T) {
	catalog := mustCatalog(t, map[string]string{
		"us": "United States",
		"ca": "Canada",
		"fr": "France",
		"de": "Germany",
		"xx": "Nowhereland",
	})
	result := Reconcile(catalog, names("Canada", "Germany", "Atlantis"))

	for _, code := range catalog.Codes() {
		_, matched := result.Matched[code]
		unmatched := result.Unmatched.Has(code)
		assert.True(t, matched != unmatched, "code %s must be in exactly one output", code)
	}
	assert.Equal(t, catalog.Len(), len(result.Matched)+len(result.Unmatched))
	for code, name := range result.Matched {
		catalogName, ok := catalog.Name(code)
		require.True(t, ok)
		assert.Equal(t, catalogName, name)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	catalog := mustCatalog(t, map[string]string{"us": "United States", "ca": "Canada", "xx": "Nowhereland"})
	gdpNames := names("United States", "Canada")

	first := Reconcile(catalog, gdpNames)
	second := Reconcile(catalog, gdpNames)
	assert.Equal(t, first, second)
}

func TestReconcileTable(t *testing.T) {
	table, err := models.NewGdpTable([]string{"Country Name", "2000"}, "Country Name", [][]string{
		{"United States", "1"},
		{"France", "2"},
	})
	require.NoError(t, err)
	catalog := mustCatalog(t, map[string]string{"us": "United States", "ca": "Canada"})

	result := ReconcileTable(catalog, table)
	assert.Equal(t, map[string]string{"us": "United States"}, result.Matched)
	assert.Equal(t, []string{"ca"}, result.Unmatched.Sorted())
}
