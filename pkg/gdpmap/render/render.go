// Package render draws GDP choropleths with gonum/plot.
//
// Countries are placed at their map centers on a longitude/latitude plane.
// The value series is shaded with a diverging color map between its
// smallest and largest value; membership series use a fixed color and
// glyph each. Country outlines are not drawn: a code is a single glyph,
// so the map shows no region geometry.
package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
	"github.com/ukaji3/gdpmap-go/pkg/logging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Locator resolves plot-codes to map centers.
type Locator interface {
	Center(code string) (models.Coordinates, bool)
}

// memberStyles are applied to membership series in order.
var memberStyles = []draw.GlyphStyle{
	{Color: color.RGBA{R: 150, G: 150, B: 150, A: 255}, Radius: vg.Points(4), Shape: draw.CircleGlyph{}},
	{Color: color.RGBA{R: 230, G: 140, B: 20, A: 255}, Radius: vg.Points(4), Shape: draw.CrossGlyph{}},
	{Color: color.RGBA{R: 120, G: 60, B: 160, A: 255}, Radius: vg.Points(4), Shape: draw.TriangleGlyph{}},
}

// Map renders choropleths to image files.
type Map struct {
	Locator Locator
	// Width and Height of the output image.
	Width, Height vg.Length
	// Labels draws the plot-code next to each point.
	Labels bool
	// ColorMap shades the value series. Defaults to moreland.SmoothBlueRed.
	ColorMap func() palette.ColorMap
	Logger   *zerolog.Logger
}

// NewMap returns a renderer with default size and code labels.
func NewMap(locator Locator) *Map {
	return &Map{
		Locator: locator,
		Width:   16 * vg.Inch,
		Height:  9 * vg.Inch,
		Labels:  true,
	}
}

// Render writes chart to path. The image format follows the file
// extension (svg, png, pdf, jpg, eps, tif); no extension means svg.
func (m *Map) Render(chart models.Choropleth, path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		format = "svg"
	}

	// The chart is drawn before the file is created so a failed plot
	// leaves nothing at path.
	wt, err := m.writerTo(chart, format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// WriteTo renders chart in format to w.
func (m *Map) WriteTo(w io.Writer, chart models.Choropleth, format string) error {
	wt, err := m.writerTo(chart, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func (m *Map) writerTo(chart models.Choropleth, format string) (io.WriterTo, error) {
	p, err := m.Plot(chart)
	if err != nil {
		return nil, err
	}
	wt, err := p.WriterTo(m.Width, m.Height, format)
	if err != nil {
		return nil, fmt.Errorf("format %q: %w", format, err)
	}
	return wt, nil
}

// Plot builds the gonum plot for chart.
func (m *Map) Plot(chart models.Choropleth) (*plot.Plot, error) {
	if m.Locator == nil {
		return nil, fmt.Errorf("no locator configured")
	}

	p := plot.New()
	p.Title.Text = chart.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.X.Min, p.X.Max = -180, 180
	p.Y.Min, p.Y.Max = -90, 90
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	members := 0
	for _, s := range chart.Series {
		var err error
		switch s.Kind {
		case models.SeriesValues:
			err = m.addValues(p, s)
		case models.SeriesMembers:
			err = m.addMembers(p, s, memberStyles[members%len(memberStyles)])
			members++
		default:
			err = fmt.Errorf("unknown series kind %q", s.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
	}
	return p, nil
}

// Locate returns the centers of codes as plot points, in order, together
// with the located codes and the codes without a known center.
func Locate(locator Locator, codes []string) (xys plotter.XYs, located, missing []string) {
	for _, code := range codes {
		c, ok := locator.Center(code)
		if !ok {
			missing = append(missing, code)
			continue
		}
		xys = append(xys, plotter.XY{X: c.Lon, Y: c.Lat})
		located = append(located, code)
	}
	return xys, located, missing
}

func (m *Map) addValues(p *plot.Plot, s models.Series) error {
	codes := make([]string, 0, len(s.Values))
	for code := range s.Values {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	xys, located, missing := Locate(m.Locator, codes)
	m.logMissing(s.Label, missing)

	values := make([]float64, len(located))
	for i, code := range located {
		values[i] = s.Values[code]
	}
	colors, err := m.shade(values)
	if err != nil {
		return err
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  color.RGBA{R: 59, G: 76, B: 192, A: 255},
		Radius: vg.Points(5),
		Shape:  draw.CircleGlyph{},
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		gs := scatter.GlyphStyle
		gs.Color = colors[i]
		return gs
	}
	return m.addScatter(p, s.Label, scatter, xys, located)
}

func (m *Map) addMembers(p *plot.Plot, s models.Series, style draw.GlyphStyle) error {
	xys, located, missing := Locate(m.Locator, s.Members)
	m.logMissing(s.Label, missing)

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle = style
	return m.addScatter(p, s.Label, scatter, xys, located)
}

func (m *Map) addScatter(p *plot.Plot, label string, scatter *plotter.Scatter, xys plotter.XYs, codes []string) error {
	p.Legend.Add(label, scatter)
	if len(xys) == 0 {
		return nil
	}
	p.Add(scatter)

	if !m.Labels {
		return nil
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: codes})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(5)
	}
	labels.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(-2)}
	p.Add(labels)
	return nil
}

// shade maps values to colors. A single distinct value gets the middle color.
func (m *Map) shade(values []float64) ([]color.Color, error) {
	if len(values) == 0 {
		return nil, nil
	}

	var cmap palette.ColorMap = moreland.SmoothBlueRed()
	if m.ColorMap != nil {
		cmap = m.ColorMap()
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		lo, hi = lo-0.5, hi+0.5
	}
	cmap.SetMax(hi)
	cmap.SetMin(lo)

	colors := make([]color.Color, len(values))
	for i, v := range values {
		c, err := cmap.At(v)
		if err != nil {
			return nil, fmt.Errorf("shading %v: %w", v, err)
		}
		colors[i] = c
	}
	return colors, nil
}

func (m *Map) logMissing(label string, missing []string) {
	if len(missing) == 0 {
		return
	}
	logging.OrNop(m.Logger).Debug().
		Str("series", label).
		Strs("codes", missing).
		Msg("No map center, codes not drawn")
}
