package engine

import (
	"math"

	"github.com/maiden-org/maiden/schema"
)

// ============================================================================
// CHART BUILDER — Summary → three bar chart configs
// ============================================================================
// Pure presentation transform: no aggregation logic lives here. The
// three charts share the Summary's category order so they line up
// visually. Rate values are expressed as percentages (0–100).
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildCharts produces the three bar charts for one summary: total
// passenger counts, survivor counts, and survival rate in percent.
func BuildCharts(s *Summary, opts ...Option) *Charts {
	if s == nil {
		return nil
	}
	cfg := applyOptions(opts)
	display := schema.DisplayNameFor(s.Feature)

	return &Charts{
		Total: buildBar(s, cfg,
			display+" — All Passengers", display, "Count of Passengers",
			func(c string) float64 { return float64(s.Total[c]) }),
		Survivors: buildBar(s, cfg,
			display+" — Survivors", display, "Count of Survivors",
			func(c string) float64 { return float64(s.Survivors[c]) }),
		Rate: buildBar(s, cfg,
			display+" Survival Rate (%)", display, "Survival Rate (%)",
			func(c string) float64 { return RoundTo2(s.Rate[c] * 100) }),
	}
}

func buildBar(s *Summary, cfg *chartConfig, title, xAxis, yAxis string, value func(string) float64) *ChartConfig {
	points := make([]ChartPoint, 0, len(s.Categories))
	for _, c := range s.Categories {
		points = append(points, ChartPoint{
			Label: schema.DisplayLabel(s.Feature, c),
			Value: value(c),
		})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      cfg.TitlePrefix + title,
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     []ChartSeries{{Name: yAxis, Data: points}},
		Colors:     assignColors(cfg.Palette, len(points)),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

func assignColors(palette []string, count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
