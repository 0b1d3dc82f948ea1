package gdpmap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
)

type recordingRenderer struct {
	charts []models.Choropleth
	paths  []string
	err    error
}

func (r *recordingRenderer) Render(chart models.Choropleth, path string) error {
	if r.err != nil {
		return r.err
	}
	r.charts = append(r.charts, chart)
	r.paths = append(r.paths, path)
	return nil
}

func writeGDPFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "isp_gdp.csv")
	content := `"Country Name","Country Code","1960","1980","2000","2010"
"United States","USA","543300000000","2862475000000","10284779000000","14964372000000"
"Canada","CAN","41093453544.6","273853826377.5","742293448252.37",""
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenderWorldMap(t *testing.T) {
	info := DefaultGDPInfo()
	info.GDPFile = writeGDPFile(t)
	catalog := mustCatalog(t, map[string]string{"us": "United States", "ca": "Canada", "xx": "Nowhereland"})
	renderer := &recordingRenderer{}

	extraction, err := RenderWorldMap(info, catalog, "2010", "out.svg", renderer, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, renderer.charts, 1)

	chart := renderer.charts[0]
	assert.Equal(t, "GDP by country for 2010 (log scale), unified by common country NAME", chart.Title)
	require.Len(t, chart.Series, 3)
	assert.Equal(t, "GDP for 2010", chart.Series[0].Label)
	assert.Equal(t, models.SeriesValues, chart.Series[0].Kind)
	assert.Contains(t, chart.Series[0].Values, "us")
	assert.Equal(t, NotInFileLabel, chart.Series[1].Label)
	assert.Equal(t, []string{"xx"}, chart.Series[1].Members)
	assert.Equal(t, NoDataLabel, chart.Series[2].Label)
	assert.Equal(t, []string{"ca"}, chart.Series[2].Members)
	assert.Equal(t, []string{"out.svg"}, renderer.paths)
	assert.Equal(t, "2010", extraction.Year)
}

func TestRenderWorldMapRendererFailure(t *testing.T) {
	info := DefaultGDPInfo()
	info.GDPFile = writeGDPFile(t)
	catalog := mustCatalog(t, map[string]string{"us": "United States"})
	boom := errors.New("disk full")

	_, err := RenderWorldMap(info, catalog, "2000", "out.svg", &recordingRenderer{err: boom}, DefaultOptions())
	assert.ErrorIs(t, err, boom)
	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, "2000", renderErr.Year)

	_, err = RenderWorldMap(info, catalog, "2000", "out.svg", nil, DefaultOptions())
	assert.Error(t, err)
}

func TestDriverRun(t *testing.T) {
	info := DefaultGDPInfo()
	info.GDPFile = writeGDPFile(t)
	catalog := mustCatalog(t, map[string]string{"us": "United States", "ca": "Canada"})
	renderer := &recordingRenderer{}
	outDir := t.TempDir()

	driver := &Driver{Info: info, Catalog: catalog, Renderer: renderer, OutputDir: outDir}
	results, err := driver.Run()
	require.NoError(t, err)

	require.Len(t, results, len(DefaultYearList()))
	for i, year := range DefaultYearList() {
		assert.Equal(t, year, results[i].Extraction.Year)
		assert.Equal(t, filepath.Join(outDir, "isp_gdp_world_name_"+year+".svg"), results[i].Path)
		assert.Equal(t, results[i].Path, renderer.paths[i])
	}
	assert.Equal(t, []string{"ca"}, results[3].Extraction.NoData.Sorted())
}

func TestDefaultYearListIsCopy(t *testing.T) {
	years := DefaultYearList()
	years[0] = "1999"
	assert.Equal(t, []string{"1960", "1980", "2000", "2010"}, DefaultYearList())
}

func TestDriverRunAbortsOnMissingYear(t *testing.T) {
	info := DefaultGDPInfo()
	info.GDPFile = writeGDPFile(t)
	catalog := mustCatalog(t, map[string]string{"us": "United States"})
	renderer := &recordingRenderer{}

	driver := &Driver{
		Info:     info,
		Catalog:  catalog,
		Renderer: renderer,
		Years:    []string{"2000", "1999", "2010"},
		FileName: "gdp_%s.png",
	}
	results, err := driver.Run()
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Len(t, results, 1)
	assert.Equal(t, []string{"gdp_2000.png"}, renderer.paths)
}

func TestDriverRunRequiresCatalog(t *testing.T) {
	driver := &Driver{Info: DefaultGDPInfo(), Renderer: &recordingRenderer{}}
	_, err := driver.Run()
	assert.ErrorIs(t, err, ErrConfiguration)
}
