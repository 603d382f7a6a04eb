package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maiden-org/maiden/schema"
)

func TestAgeGroupBoundaries(t *testing.T) {
	cases := []struct {
		age   float64
		known bool
		want  string
	}{
		{0, true, schema.AgeChild},
		{12.999, true, schema.AgeChild},
		{13.0, true, schema.AgeTeenager},
		{19.999, true, schema.AgeTeenager},
		{20.0, true, schema.AgeAdult},
		{59.999, true, schema.AgeAdult},
		{60.0, true, schema.AgeSenior},
		{80, true, schema.AgeSenior},
		{0, false, schema.UnknownAge},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, AgeGroupFor(c.age, c.known),
			"age=%v known=%v", c.age, c.known)
	}
}

func TestFamilySize(t *testing.T) {
	assert.Equal(t, 4, FamilySizeFor(1, 2))
	assert.Equal(t, 1, FamilySizeFor(0, 0))
	assert.Equal(t, 11, FamilySizeFor(8, 2))
}

func TestFareQuartilesEmpty(t *testing.T) {
	_, err := FareQuartiles(nil)
	require.ErrorIs(t, err, ErrEmptyDataset)
}

func TestFareQuartilesDeterministic(t *testing.T) {
	fares := []float64{7.25, 71.28, 7.93, 53.1, 8.05, 8.46, 51.86, 21.08, 30.07, 16.7}

	a, err := FareQuartiles(fares)
	require.NoError(t, err)
	b, err := FareQuartiles(fares)
	require.NoError(t, err)
	assert.Equal(t, a, b, "recomputing on unchanged data must yield identical boundaries")

	// Boundaries are order statistics: monotone and within the range.
	assert.LessOrEqual(t, a[0], a[1])
	assert.LessOrEqual(t, a[1], a[2])
	assert.GreaterOrEqual(t, a[0], 7.25)
	assert.LessOrEqual(t, a[2], 71.28)
}

func TestFareQuartilesInputNotMutated(t *testing.T) {
	fares := []float64{3, 1, 2}
	_, err := FareQuartiles(fares)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, fares)
}

func TestFareQuartileTiesGoLower(t *testing.T) {
	bounds := [3]float64{10, 20, 30}
	cases := []struct {
		fare float64
		want string
	}{
		{0, schema.FareQuartileLabels[0]},
		{10, schema.FareQuartileLabels[0]}, // boundary → lower quartile
		{10.01, schema.FareQuartileLabels[1]},
		{20, schema.FareQuartileLabels[1]},
		{25, schema.FareQuartileLabels[2]},
		{30, schema.FareQuartileLabels[2]},
		{30.01, schema.FareQuartileLabels[3]},
		{500, schema.FareQuartileLabels[3]},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, fareQuartileFor(c.fare, bounds), "fare=%v", c.fare)
	}
}

func TestDeriveAssignsEveryQuartile(t *testing.T) {
	passengers := make([]Passenger, 0, 100)
	for i := 1; i <= 100; i++ {
		passengers = append(passengers, Passenger{
			Class: 3, Sex: "male", Fare: float64(i), Survived: i%2 == 0,
		})
	}
	ds, err := New(passengers)
	require.NoError(t, err)

	counts := make(map[string]int)
	for i := 0; i < ds.Len(); i++ {
		counts[ds.Label(i, schema.FeatureFareQuartile)]++
	}
	for _, label := range schema.FareQuartileLabels {
		assert.Greaterf(t, counts[label], 0, "quartile %s should be populated", label)
	}

	// Quartiles split evenly-by-count within interpolation slack.
	for label, n := range counts {
		assert.InDeltaf(t, 25, n, 2, "quartile %s size", label)
	}
}

func TestDeriveStableAcrossRebuilds(t *testing.T) {
	passengers := []Passenger{
		{Class: 1, Sex: "female", Age: 38, AgeKnown: true, SibSp: 1, Fare: 71.28, Embarked: "C", Survived: true},
		{Class: 3, Sex: "male", Age: 22, AgeKnown: true, SibSp: 1, Fare: 7.25, Embarked: "S"},
		{Class: 2, Sex: "female", Age: 14, AgeKnown: true, SibSp: 1, Fare: 30.07, Embarked: "C", Survived: true},
		{Class: 3, Sex: "male", Fare: 8.46, Embarked: "Q"},
	}

	a, err := New(passengers)
	require.NoError(t, err)
	b, err := New(passengers)
	require.NoError(t, err)

	require.Equal(t, a.FareQuartileBounds(), b.FareQuartileBounds())
	for i := 0; i < a.Len(); i++ {
		for _, key := range schema.Keys() {
			assert.Equal(t, a.Label(i, key), b.Label(i, key))
		}
	}
}

func TestNewEmpty(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrEmptyDataset)
}

func TestLabelMissingValues(t *testing.T) {
	ds, err := New([]Passenger{
		{Class: 3, Sex: "male", Fare: 8.05},              // no age, no embarked
		{Class: 1, Sex: "female", Age: 30, AgeKnown: true, Fare: 50, Embarked: "S"},
	})
	require.NoError(t, err)

	assert.Equal(t, schema.UnknownAge, ds.Label(0, schema.FeatureAgeGroup))
	assert.Equal(t, "", ds.Label(0, schema.FeatureEmbarked))
	assert.Equal(t, schema.AgeAdult, ds.Label(1, schema.FeatureAgeGroup))
	assert.Equal(t, "S", ds.Label(1, schema.FeatureEmbarked))
	assert.Equal(t, "", ds.Label(0, "not_a_feature"))
}
