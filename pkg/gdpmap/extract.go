package gdpmap

import (
	"math"

	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/parser"
	"github.com/ukaji3/gdpmap-go/pkg/logging"
)

// ExtractYear partitions the catalog codes for year: codes with a GDP
// value get log10 of it, codes whose name has no row go to NotInFile and
// codes whose row has an empty value go to NoData.
//
// A year that is not a column of table is a *ConfigurationError. A value
// that is not a number is a *ValueError of kind ErrParse; zero, negative,
// NaN and infinite values are a *ValueError of kind ErrDomain. Either
// aborts the extraction.
func ExtractYear(table *models.GdpTable, catalog *models.CountryCatalog, year string, opts Options) (*models.YearExtraction, error) {
	log := logging.OrNop(opts.Logger)

	if !table.HasColumn(year) {
		return nil, NewConfigurationError("year", year, "is not a column of the GDP table")
	}

	index, dups := table.Index()
	if len(dups) > 0 {
		if opts.rejectDuplicates() {
			return nil, &DuplicateKeyError{Column: table.KeyColumn(), Names: dups}
		}
		log.Warn().
			Strs("names", dups).
			Str("column", table.KeyColumn()).
			Msg("Duplicate country names, last row wins")
	}

	result := models.NewYearExtraction(year)
	for _, entry := range catalog.Entries() {
		row, ok := index[entry.Name]
		if !ok {
			result.NotInFile.Add(entry.Code)
			continue
		}

		raw, _ := row.Get(year)
		if raw == "" {
			result.NoData.Add(entry.Code)
			continue
		}

		value, err := parser.ParseNumber(raw)
		if err != nil {
			return nil, &ValueError{Year: year, Code: entry.Code, Country: entry.Name, Value: raw, Kind: ErrParse, Err: err}
		}
		if !(value > 0) || math.IsInf(value, 1) {
			return nil, &ValueError{Year: year, Code: entry.Code, Country: entry.Name, Value: raw, Kind: ErrDomain}
		}
		result.Values[entry.Code] = math.Log10(value)
	}

	log.Debug().
		Str("year", year).
		Int("values", len(result.Values)).
		Int("not_in_file", len(result.NotInFile)).
		Int("no_data", len(result.NoData)).
		Msg("Extracted year")

	return result, nil
}

// LoadTable reads the GDP table described by info.
func LoadTable(info GDPInfo) (*models.GdpTable, error) {
	opts, err := info.ParserOptions()
	if err != nil {
		return nil, err
	}
	return parser.Load(info.GDPFile, opts)
}

// BuildMapDict loads the GDP source described by info and extracts year.
func BuildMapDict(info GDPInfo, catalog *models.CountryCatalog, year string, opts Options) (*models.YearExtraction, error) {
	table, err := LoadTable(info)
	if err != nil {
		return nil, err
	}
	return ExtractYear(table, catalog, year, opts)
}
