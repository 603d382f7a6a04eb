package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/maiden-org/maiden/engine"
	"github.com/maiden-org/maiden/schema"
)

// WriteSummaryCSV writes a feature summary as CSV, one row per
// category, ready for Sheets/Excel.
func WriteSummaryCSV(w io.Writer, s *engine.Summary) error {
	if s == nil {
		return fmt.Errorf("nil summary")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"category", "total", "survivors", "survival_rate"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range s.Categories {
		row := []string{
			schema.DisplayLabel(s.Feature, c),
			strconv.Itoa(s.Total[c]),
			strconv.Itoa(s.Survivors[c]),
			strconv.FormatFloat(s.Rate[c], 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
