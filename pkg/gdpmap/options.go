// Package gdpmap joins a GDP table against a catalog of map plot-codes and
// renders one choropleth per year.
package gdpmap

import (
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/parser"
)

// GDPInfo describes the GDP source file.
type GDPInfo struct {
	// GDPFile is the path to the delimited text or xlsx file.
	GDPFile string `json:"gdpfile" mapstructure:"gdpfile"`
	// Separator is the field delimiter (one character).
	Separator string `json:"separator" mapstructure:"separator"`
	// Quote is the quote character (one character).
	Quote string `json:"quote" mapstructure:"quote"`
	// CountryName is the column holding the country display-name.
	CountryName string `json:"country_name" mapstructure:"country_name"`
	// CountryCode is the column holding the country code. Informational.
	CountryCode string `json:"country_code" mapstructure:"country_code"`
	// MinYear and MaxYear bound the years in the file. Not enforced.
	MinYear int `json:"min_year" mapstructure:"min_year"`
	MaxYear int `json:"max_year" mapstructure:"max_year"`
	// Sheet selects the workbook sheet for xlsx sources.
	Sheet string `json:"sheet,omitempty" mapstructure:"sheet"`
	// Range restricts the workbook cells read for xlsx sources.
	Range string `json:"range,omitempty" mapstructure:"range"`
}

// DefaultGDPInfo returns the settings for the World Bank GDP export.
func DefaultGDPInfo() GDPInfo {
	return GDPInfo{
		GDPFile:     "isp_gdp.csv",
		Separator:   ",",
		Quote:       `"`,
		MinYear:     1960,
		MaxYear:     2015,
		CountryName: "Country Name",
		CountryCode: "Country Code",
	}
}

// Validate checks that the settings can be used to load a table.
func (g GDPInfo) Validate() error {
	if g.GDPFile == "" {
		return NewConfigurationError("gdpfile", g.GDPFile, "must not be empty")
	}
	if g.CountryName == "" {
		return NewConfigurationError("country_name", g.CountryName, "must not be empty")
	}
	if utf8.RuneCountInString(g.Separator) != 1 {
		return NewConfigurationError("separator", g.Separator, "must be a single character")
	}
	if utf8.RuneCountInString(g.Quote) != 1 {
		return NewConfigurationError("quote", g.Quote, "must be a single character")
	}
	if g.Separator == g.Quote {
		return NewConfigurationError("quote", g.Quote, "must differ from separator")
	}
	return nil
}

// ParserOptions converts the settings to loader options.
func (g GDPInfo) ParserOptions() (parser.Options, error) {
	if err := g.Validate(); err != nil {
		return parser.Options{}, err
	}
	delim, _ := utf8.DecodeRuneInString(g.Separator)
	quote, _ := utf8.DecodeRuneInString(g.Quote)
	return parser.Options{
		Delimiter: delim,
		Quote:     quote,
		KeyColumn: g.CountryName,
		Sheet:     g.Sheet,
		Range:     g.Range,
	}, nil
}

// String returns a short description for logs.
func (g GDPInfo) String() string {
	return fmt.Sprintf("%s (key %q)", g.GDPFile, g.CountryName)
}

// DuplicatePolicy selects how rows sharing a country name are handled.
type DuplicatePolicy string

const (
	// DuplicateLastWins keeps the last row for a repeated name and logs a warning.
	DuplicateLastWins DuplicatePolicy = "last-wins"
	// DuplicateReject fails the extraction on a repeated name.
	DuplicateReject DuplicatePolicy = "reject"
)

// Options configures extraction behavior.
type Options struct {
	// Duplicates specifies the duplicate country name policy.
	// Defaults to DuplicateLastWins.
	Duplicates DuplicatePolicy
	// Logger receives diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Duplicates: DuplicateLastWins,
	}
}

// rejectDuplicates returns whether repeated names fail the extraction.
func (o Options) rejectDuplicates() bool {
	return o.Duplicates == DuplicateReject
}
