package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogKeys(t *testing.T) {
	assert.Equal(t, []string{
		FeatureClass, FeatureSex, FeatureAgeGroup,
		FeatureFamilySize, FeatureFareQuartile, FeatureEmbarked,
	}, Keys())
}

func TestLookup(t *testing.T) {
	f, ok := Lookup(FeatureAgeGroup)
	require.True(t, ok)
	assert.Equal(t, "Age Group", f.DisplayName)
	assert.True(t, f.Derived)
	assert.Equal(t, OrderFixed, f.Order)

	_, ok = Lookup("cabin")
	assert.False(t, ok)
}

func TestSortLabelsNumeric(t *testing.T) {
	f, _ := Lookup(FeatureFamilySize)
	assert.Equal(t,
		[]string{"1", "2", "10"},
		f.SortLabels([]string{"10", "2", "1"}))
}

func TestSortLabelsFixed(t *testing.T) {
	f, _ := Lookup(FeatureAgeGroup)
	got := f.SortLabels([]string{UnknownAge, AgeAdult, AgeChild})
	assert.Equal(t, []string{AgeChild, AgeAdult, UnknownAge}, got)

	// Labels outside the fixed list go last, lexically.
	got = f.SortLabels([]string{"Zz", AgeSenior, "Aa"})
	assert.Equal(t, []string{AgeSenior, "Aa", "Zz"}, got)
}

func TestSortLabelsLexical(t *testing.T) {
	f, _ := Lookup(FeatureEmbarked)
	assert.Equal(t,
		[]string{"C", "Q", "S"},
		f.SortLabels([]string{"S", "C", "Q"}))
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "Male", DisplayLabel(FeatureSex, "male"))
	assert.Equal(t, "Female", DisplayLabel(FeatureSex, "female"))
	// Other features pass through untouched.
	assert.Equal(t, "Q1 (Low)", DisplayLabel(FeatureFareQuartile, "Q1 (Low)"))
	assert.Equal(t, "S", DisplayLabel(FeatureEmbarked, "S"))
}

func TestDisplayNameFor(t *testing.T) {
	assert.Equal(t, "Passenger Class", DisplayNameFor(FeatureClass))
	assert.Equal(t, "Some Other Key", DisplayNameFor("some_other_key"))
}
