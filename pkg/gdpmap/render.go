package gdpmap

import (
	"fmt"

	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
)

// Series labels of the rendered map.
const (
	NotInFileLabel = "Missing from World Bank Data"
	NoDataLabel    = "No GDP data"
)

// Renderer draws a choropleth to the file at path.
type Renderer interface {
	Render(chart models.Choropleth, path string) error
}

// MapTitle returns the chart title for year.
func MapTitle(year string) string {
	return "GDP by country for " + year + " (log scale), unified by common country NAME"
}

// ValueLabel returns the legend label of the value series for year.
func ValueLabel(year string) string {
	return "GDP for " + year
}

// Chart turns an extraction into the three-series map for its year.
func Chart(extraction *models.YearExtraction) models.Choropleth {
	return extraction.Choropleth(MapTitle(extraction.Year), ValueLabel(extraction.Year), NotInFileLabel, NoDataLabel)
}

// RenderWorldMap extracts year from the GDP source described by info and
// renders it to mapFile. The extraction is returned for reporting.
func RenderWorldMap(info GDPInfo, catalog *models.CountryCatalog, year, mapFile string, renderer Renderer, opts Options) (*models.YearExtraction, error) {
	extraction, err := BuildMapDict(info, catalog, year, opts)
	if err != nil {
		return nil, err
	}
	if err := renderExtraction(extraction, mapFile, renderer); err != nil {
		return nil, err
	}
	return extraction, nil
}

func renderExtraction(extraction *models.YearExtraction, path string, renderer Renderer) error {
	if renderer == nil {
		return &RenderError{Year: extraction.Year, Path: path, Err: fmt.Errorf("no renderer configured")}
	}
	if err := renderer.Render(Chart(extraction), path); err != nil {
		return &RenderError{Year: extraction.Year, Path: path, Err: err}
	}
	return nil
}
