package models

// SeriesKind distinguishes value series from membership series.
type SeriesKind string

const (
	// SeriesValues carries a float per code.
	SeriesValues SeriesKind = "values"
	// SeriesMembers carries a set of codes; membership is the signal.
	SeriesMembers SeriesKind = "members"
)

// Series is one named data series of a choropleth.
type Series struct {
	// Label is the legend text for the series.
	Label string `json:"label"`
	// Kind is the series kind.
	Kind SeriesKind `json:"kind"`
	// Values maps plot-code to value (SeriesValues only).
	Values map[string]float64 `json:"values,omitempty"`
	// Members holds plot-codes in sorted order (SeriesMembers only).
	Members []string `json:"members,omitempty"`
}

// Codes returns the plot-codes covered by the series.
func (s Series) Codes() []string {
	if s.Kind == SeriesMembers {
		return append([]string(nil), s.Members...)
	}
	return NewCodeSetFromValues(s.Values).Sorted()
}

// Choropleth is a renderable map: a title and overlaid series.
type Choropleth struct {
	// Title is the chart title.
	Title string `json:"title"`
	// Series are drawn in order.
	Series []Series `json:"series"`
}

// NewCodeSetFromValues returns the key set of a value mapping.
func NewCodeSetFromValues(values map[string]float64) CodeSet {
	s := make(CodeSet, len(values))
	for c := range values {
		s[c] = struct{}{}
	}
	return s
}

// Choropleth exposes the extraction as three series: the value series,
// the missing-from-source series and the no-data series.
func (y *YearExtraction) Choropleth(title, valueLabel, notInFileLabel, noDataLabel string) Choropleth {
	values := make(map[string]float64, len(y.Values))
	for k, v := range y.Values {
		values[k] = v
	}
	return Choropleth{
		Title: title,
		Series: []Series{
			{Label: valueLabel, Kind: SeriesValues, Values: values},
			{Label: notInFileLabel, Kind: SeriesMembers, Members: y.NotInFile.Sorted()},
			{Label: noDataLabel, Kind: SeriesMembers, Members: y.NoData.Sorted()},
		},
	}
}
