// Package catalog provides plot-code catalogs for the world map renderer.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

//go:embed countries.yaml
var embeddedCountries []byte

// file is the on-disk catalog schema.
type file struct {
	Countries []entry `yaml:"countries"`
}

type entry struct {
	Code string   `yaml:"code"`
	Name string   `yaml:"name"`
	Lat  *float64 `yaml:"lat"`
	Lon  *float64 `yaml:"lon"`
}

// Embedded returns the compiled-in catalog.
func Embedded() (*models.CountryCatalog, error) {
	c, err := Parse(embeddedCountries)
	if err != nil {
		return nil, fmt.Errorf("loading embedded catalog: %w", err)
	}
	return c, nil
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*models.CountryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog. Entries without both lat and lon have no
// map center.
func Parse(data []byte) (*models.CountryCatalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Countries) == 0 {
		return nil, fmt.Errorf("catalog has no countries")
	}

	entries := make([]models.Country, 0, len(f.Countries))
	for _, e := range f.Countries {
		country := models.Country{Code: e.Code, Name: e.Name}
		if e.Lat != nil && e.Lon != nil {
			country.Center = &models.Coordinates{Lat: *e.Lat, Lon: *e.Lon}
		}
		entries = append(entries, country)
	}
	return models.NewCountryCatalog(entries)
}

// CLDR returns a copy of base whose names are the CLDR display names of
// each code in the language tag. Codes that are not ISO 3166 regions, or
// have no CLDR name, keep their original name.
func CLDR(base *models.CountryCatalog, tag language.Tag) (*models.CountryCatalog, error) {
	namer := display.Regions(tag)
	if namer == nil {
		return nil, fmt.Errorf("no region names for %s", tag)
	}

	entries := base.Entries()
	for i, e := range entries {
		region, err := language.ParseRegion(e.Code)
		if err != nil {
			continue
		}
		if name := namer.Name(region); name != "" {
			entries[i].Name = name
		}
	}
	return models.NewCountryCatalog(entries)
}
