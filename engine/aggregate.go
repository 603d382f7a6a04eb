package engine

import (
	"fmt"

	"github.com/maiden-org/maiden/schema"
)

// ============================================================================
// AGGREGATOR — Partition by category, count, rate
// ============================================================================
// Single pass over the view: discover categories, count totals and
// survivors. Records with an empty label for the selected feature are
// excluded from that feature's aggregation and reported in
// Summary.Excluded. Category ordering comes from the schema catalog's
// per-feature policy, so repeated calls on the same data are stable.
// ============================================================================

// Summarize computes per-category totals, survivor counts, and survival
// rates for one of the six supported features.
func Summarize(view View, feature string) (*Summary, error) {
	feat, ok := schema.Lookup(feature)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFeature, feature)
	}
	if view == nil || view.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	total := make(map[string]int)
	survivors := make(map[string]int)
	var categories []string
	excluded := 0

	for i := 0; i < view.Len(); i++ {
		label := view.Label(i, feature)
		if label == "" {
			excluded++
			continue
		}
		if _, seen := total[label]; !seen {
			categories = append(categories, label)
			survivors[label] = 0
		}
		total[label]++
		if view.Survived(i) {
			survivors[label]++
		}
	}

	categories = feat.SortLabels(categories)

	rate := make(map[string]float64, len(total))
	for _, c := range categories {
		if total[c] > 0 {
			rate[c] = float64(survivors[c]) / float64(total[c])
		} else {
			rate[c] = 0 // degenerate partition
		}
	}

	return &Summary{
		Feature:    feature,
		Categories: categories,
		Total:      total,
		Survivors:  survivors,
		Rate:       rate,
		Excluded:   excluded,
	}, nil
}

// Overview computes whole-dataset survival stats.
func Overview(view View) (*OverviewStats, error) {
	if view == nil || view.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	survivors := 0
	for i := 0; i < view.Len(); i++ {
		if view.Survived(i) {
			survivors++
		}
	}
	return &OverviewStats{
		Passengers: view.Len(),
		Survivors:  survivors,
		Rate:       float64(survivors) / float64(view.Len()),
	}, nil
}
