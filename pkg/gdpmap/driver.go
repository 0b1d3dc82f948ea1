package gdpmap

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
	"github.com/ukaji3/gdpmap-go/pkg/logging"
)

// defaultYears are the years rendered when none are requested.
var defaultYears = []string{"1960", "1980", "2000", "2010"}

// DefaultYearList returns a fresh copy of the default years.
func DefaultYearList() []string {
	return append([]string(nil), defaultYears...)
}

// DefaultFileName is the map file name pattern; %s is the year.
const DefaultFileName = "isp_gdp_world_name_%s.svg"

// Driver renders one map per year. It does nothing until Run is called.
type Driver struct {
	Info     GDPInfo
	Catalog  *models.CountryCatalog
	Renderer Renderer
	// Years are rendered in order. Defaults to DefaultYearList.
	Years []string
	// FileName is the output name pattern. Defaults to DefaultFileName.
	FileName string
	// OutputDir is prepended to every file name.
	OutputDir string
	Options   Options
	Logger    *zerolog.Logger
}

// YearResult is the outcome of one rendered year.
type YearResult struct {
	Path       string                 `json:"path"`
	Extraction *models.YearExtraction `json:"extraction"`
}

// MapPath returns the output path for year.
func (d *Driver) MapPath(year string) string {
	pattern := d.FileName
	if pattern == "" {
		pattern = DefaultFileName
	}
	return filepath.Join(d.OutputDir, fmt.Sprintf(pattern, year))
}

// Run loads the GDP source once and renders every year in order.
// The first failure aborts the run.
func (d *Driver) Run() ([]YearResult, error) {
	log := logging.OrNop(d.Logger)
	opts := d.Options
	if opts.Logger == nil {
		opts.Logger = d.Logger
	}

	if d.Catalog == nil || d.Catalog.Len() == 0 {
		return nil, NewConfigurationError("catalog", "", "must not be empty")
	}

	years := d.Years
	if len(years) == 0 {
		years = DefaultYearList()
	}

	table, err := LoadTable(d.Info)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", d.Info.GDPFile, err)
	}
	log.Info().
		Str("file", d.Info.GDPFile).
		Int("rows", table.Len()).
		Int("catalog", d.Catalog.Len()).
		Msg("Loaded GDP table")

	results := make([]YearResult, 0, len(years))
	for _, year := range years {
		extraction, err := ExtractYear(table, d.Catalog, year, opts)
		if err != nil {
			return results, fmt.Errorf("year %s: %w", year, err)
		}

		path := d.MapPath(year)
		if err := renderExtraction(extraction, path, d.Renderer); err != nil {
			return results, err
		}

		log.Info().
			Str("year", year).
			Str("path", path).
			Int("values", len(extraction.Values)).
			Int("not_in_file", len(extraction.NotInFile)).
			Int("no_data", len(extraction.NoData)).
			Msg("Rendered map")

		results = append(results, YearResult{Path: path, Extraction: extraction})
	}
	return results, nil
}
