package engine

import "errors"

// ============================================================================
// ENGINE TYPES — Survival aggregation over a passenger view
// ============================================================================
// The engine never owns the data. It reads through the View interface,
// which the dataset package satisfies; tests satisfy it with in-memory
// fakes. Summarize produces a Summary; the chart builder turns one
// Summary into three render-ready bar chart configs.
// ============================================================================

var (
	// ErrInvalidFeature is returned for a feature key outside the
	// schema catalog. No partial computation is performed.
	ErrInvalidFeature = errors.New("unsupported feature")

	// ErrEmptyDataset is returned when the view has no records.
	ErrEmptyDataset = errors.New("no records to summarize")
)

// View provides indexed access to a passenger dataset.
// Label returns the category label of record i for a feature key; the
// empty label marks a record with no value for that feature.
type View interface {
	Len() int
	Label(i int, feature string) string
	Survived(i int) bool
}

// Summary holds the three per-category aggregates for one feature.
// Total, Survivors, and Rate share the key set and ordering given by
// Categories.
type Summary struct {
	Feature    string             `json:"feature"`
	Categories []string           `json:"categories"`
	Total      map[string]int     `json:"total"`
	Survivors  map[string]int     `json:"survivors"`
	Rate       map[string]float64 `json:"rate"` // survivors/total, in [0,1]
	Excluded   int                `json:"excluded"`
}

// OverviewStats summarizes the dataset as a whole.
type OverviewStats struct {
	Passengers int     `json:"passengers"`
	Survivors  int     `json:"survivors"`
	Rate       float64 `json:"rate"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Charts bundles the three chart configs produced per feature
// selection: total population, survivors only, and survival rate.
type Charts struct {
	Total     *ChartConfig `json:"total"`
	Survivors *ChartConfig `json:"survivors"`
	Rate      *ChartConfig `json:"rate"`
}
