// Package models defines data structures for GDP map reconciliation.
package models

import (
	"fmt"
	"sort"
)

// Coordinates is a map position in degrees.
type Coordinates struct {
	// Lat is the latitude in degrees.
	Lat float64 `json:"lat" yaml:"lat"`
	// Lon is the longitude in degrees.
	Lon float64 `json:"lon" yaml:"lon"`
}

// Country is a single catalog entry.
type Country struct {
	// Code is the plot-code used by the map renderer (e.g. "us").
	Code string `json:"code"`
	// Name is the display-name matched against the GDP source.
	Name string `json:"name"`
	// Center is the approximate map center (nil if unknown).
	Center *Coordinates `json:"center,omitempty"`
}

// CountryCatalog maps plot-codes to display-names.
// Codes are non-empty and unique; names may repeat.
// A catalog is read-only after construction.
type CountryCatalog struct {
	entries map[string]Country
	codes   []string
}

// NewCountryCatalog builds a catalog from entries.
// It fails on an empty or duplicated code.
func NewCountryCatalog(entries []Country) (*CountryCatalog, error) {
	c := &CountryCatalog{
		entries: make(map[string]Country, len(entries)),
		codes:   make([]string, 0, len(entries)),
	}
	for i, e := range entries {
		if e.Code == "" {
			return nil, fmt.Errorf("catalog entry %d: empty code", i)
		}
		if _, dup := c.entries[e.Code]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate code %q", i, e.Code)
		}
		if e.Center != nil {
			center := *e.Center
			e.Center = &center
		}
		c.entries[e.Code] = e
		c.codes = append(c.codes, e.Code)
	}
	sort.Strings(c.codes)
	return c, nil
}

// CatalogFromMap builds a catalog from a code to name mapping.
func CatalogFromMap(m map[string]string) (*CountryCatalog, error) {
	entries := make([]Country, 0, len(m))
	for code, name := range m {
		entries = append(entries, Country{Code: code, Name: name})
	}
	return NewCountryCatalog(entries)
}

// Len returns the number of entries.
func (c *CountryCatalog) Len() int {
	return len(c.codes)
}

// Codes returns all plot-codes in sorted order.
func (c *CountryCatalog) Codes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Name returns the display-name for code.
func (c *CountryCatalog) Name(code string) (string, bool) {
	e, ok := c.entries[code]
	return e.Name, ok
}

// Has reports whether code is in the catalog.
func (c *CountryCatalog) Has(code string) bool {
	_, ok := c.entries[code]
	return ok
}

// Center returns the map center for code, if known.
func (c *CountryCatalog) Center(code string) (Coordinates, bool) {
	e, ok := c.entries[code]
	if !ok || e.Center == nil {
		return Coordinates{}, false
	}
	return *e.Center, true
}

// Entries returns a copy of all entries sorted by code.
func (c *CountryCatalog) Entries() []Country {
	out := make([]Country, 0, len(c.codes))
	for _, code := range c.codes {
		e := c.entries[code]
		if e.Center != nil {
			center := *e.Center
			e.Center = &center
		}
		out = append(out, e)
	}
	return out
}

// Map returns the catalog as a plain code to name mapping.
func (c *CountryCatalog) Map() map[string]string {
	out := make(map[string]string, len(c.entries))
	for code, e := range c.entries {
		out[code] = e.Name
	}
	return out
}
