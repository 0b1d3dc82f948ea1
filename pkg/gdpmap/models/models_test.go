package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountryCatalog(t *testing.T) {
	c, err := NewCountryCatalog([]Country{
		{Code: "us", Name: "United States", Center: &Coordinates{Lat: 37, Lon: -95}},
		{Code: "ca", Name: "Canada"},
		{Code: "cg", Name: "Congo"},
		{Code: "cd", Name: "Congo"},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"ca", "cd", "cg", "us"}, c.Codes())
	assert.True(t, c.Has("cd"))
	assert.False(t, c.Has("xx"))

	name, ok := c.Name("cg")
	assert.True(t, ok)
	assert.Equal(t, "Congo", name)

	_, ok = c.Center("ca")
	assert.False(t, ok)
	center, ok := c.Center("us")
	assert.True(t, ok)
	assert.Equal(t, Coordinates{Lat: 37, Lon: -95}, center)
}

func TestCountryCatalogImmutable(t *testing.T) {
	center := &Coordinates{Lat: 1, Lon: 2}
	c, err := NewCountryCatalog([]Country{{Code: "us", Name: "United States", Center: center}})
	require.NoError(t, err)

	center.Lat = 99
	got, _ := c.Center("us")
	assert.Equal(t, 1.0, got.Lat)

	entries := c.Entries()
	entries[0].Name = "Changed"
	entries[0].Center.Lat = 50
	name, _ := c.Name("us")
	assert.Equal(t, "United States", name)
	got, _ = c.Center("us")
	assert.Equal(t, 1.0, got.Lat)

	codes := c.Codes()
	codes[0] = "zz"
	assert.Equal(t, []string{"us"}, c.Codes())
}

func TestNewCountryCatalogErrors(t *testing.T) {
	_, err := NewCountryCatalog([]Country{{Code: "", Name: "Nowhere"}})
	assert.Error(t, err)

	_, err = NewCountryCatalog([]Country{{Code: "us", Name: "A"}, {Code: "us", Name: "B"}})
	assert.Error(t, err)
}

func TestCatalogFromMap(t *testing.T) {
	m := map[string]string{"us": "United States", "ca": "Canada"}
	c, err := CatalogFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, m, c.Map())
}

func TestGdpTable(t *testing.T) {
	table, err := NewGdpTable([]string{"Country Name", "1960", "2000"}, "Country Name", [][]string{
		{"Canada", "1", "2"},
		{"Chad"},
		{"Canada", "3", "4", "extra"},
		{"France", "5", "6"},
		{"France", "7", "8"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Country Name", table.KeyColumn())
	assert.Equal(t, 5, table.Len())
	assert.True(t, table.HasColumn("2000"))
	assert.False(t, table.HasColumn("2001"))
	assert.Equal(t, map[string]struct{}{"Canada": {}, "Chad": {}, "France": {}}, table.Names())

	index, dups := table.Index()
	assert.Equal(t, []string{"Canada", "France"}, dups)
	v, _ := index["Canada"].Get("1960")
	assert.Equal(t, "3", v)
	v, ok := index["Chad"].Get("2000")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	_, ok = index["Canada"].Get("extra")
	assert.False(t, ok)
}

func TestNewGdpTableMissingKey(t *testing.T) {
	_, err := NewGdpTable([]string{"Name", "2000"}, "Country Name", nil)
	assert.Error(t, err)
}

func TestRowCopies(t *testing.T) {
	values := map[string]string{"Country Name": "Canada"}
	row := NewRow(values)
	values["Country Name"] = "Changed"

	v, _ := row.Get("Country Name")
	assert.Equal(t, "Canada", v)

	out := row.Values()
	out["Country Name"] = "Other"
	v, _ = row.Get("Country Name")
	assert.Equal(t, "Canada", v)
}

func TestCodeSetJSON(t *testing.T) {
	data, err := json.Marshal(NewCodeSet("us", "ca", "fr"))
	require.NoError(t, err)
	assert.Equal(t, `["ca","fr","us"]`, string(data))

	var s CodeSet
	require.NoError(t, json.Unmarshal([]byte(`["de","de","it"]`), &s))
	assert.Equal(t, []string{"de", "it"}, s.Sorted())
}

func TestYearExtractionChoropleth(t *testing.T) {
	e := NewYearExtraction("2000")
	e.Values["us"] = 13
	e.NotInFile.Add("xx")
	e.NoData.Add("ca")
	e.NoData.Add("bo")

	chart := e.Choropleth("title", "values", "missing", "empty")
	assert.Equal(t, "title", chart.Title)
	require.Len(t, chart.Series, 3)
	assert.Equal(t, SeriesValues, chart.Series[0].Kind)
	assert.Equal(t, []string{"us"}, chart.Series[0].Codes())
	assert.Equal(t, []string{"xx"}, chart.Series[1].Members)
	assert.Equal(t, []string{"bo", "ca"}, chart.Series[2].Codes())

	chart.Series[0].Values["us"] = 0
	assert.Equal(t, 13.0, e.Values["us"])

	assert.Equal(t, StatusValue, e.Status("us"))
	assert.Equal(t, StatusNoData, e.Status("ca"))
	assert.Equal(t, StatusUnknown, e.Status("zz"))
	assert.Equal(t, 4, e.Len())
}
