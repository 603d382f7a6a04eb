package helpers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maiden-org/maiden/engine"
	"github.com/maiden-org/maiden/schema"
)

func TestWriteSummaryCSV(t *testing.T) {
	s := &engine.Summary{
		Feature:    schema.FeatureSex,
		Categories: []string{"female", "male"},
		Total:      map[string]int{"female": 4, "male": 6},
		Survivors:  map[string]int{"female": 3, "male": 1},
		Rate:       map[string]float64{"female": 0.75, "male": 1.0 / 6.0},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryCSV(&buf, s))

	want := "category,total,survivors,survival_rate\n" +
		"Female,4,3,0.7500\n" +
		"Male,6,1,0.1667\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSummaryCSVNil(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteSummaryCSV(&buf, nil))
}
