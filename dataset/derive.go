package dataset

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/maiden-org/maiden/schema"
)

// ============================================================================
// FEATURE DERIVATION — age group, family size, fare quartile
// ============================================================================
// Runs once at Dataset construction. Deterministic given identical
// input: recomputing on unchanged data yields identical boundaries and
// assignments.
// ============================================================================

// Age group bucket boundaries (upper bounds, exclusive except the last).
const (
	childMaxAge    = 13.0 // Child: age < 13
	teenagerMaxAge = 20.0 // Teenager: 13 <= age < 20
	adultMaxAge    = 60.0 // Adult: 20 <= age < 60; Senior: age >= 60
)

// AgeGroupFor buckets an age into its category label.
func AgeGroupFor(age float64, known bool) string {
	switch {
	case !known:
		return schema.UnknownAge
	case age < childMaxAge:
		return schema.AgeChild
	case age < teenagerMaxAge:
		return schema.AgeTeenager
	case age < adultMaxAge:
		return schema.AgeAdult
	default:
		return schema.AgeSenior
	}
}

// FamilySizeFor is siblings/spouses + parents/children + self.
func FamilySizeFor(sibsp, parch int) int {
	return sibsp + parch + 1
}

// FareQuartiles computes the quartile boundaries of a fare distribution
// using linear interpolation between order statistics. Returns
// ErrEmptyDataset for an empty slice.
func FareQuartiles(fares []float64) ([3]float64, error) {
	if len(fares) == 0 {
		return [3]float64{}, ErrEmptyDataset
	}
	sorted := make([]float64, len(fares))
	copy(sorted, fares)
	sort.Float64s(sorted)

	var bounds [3]float64
	for i, p := range [3]float64{0.25, 0.50, 0.75} {
		bounds[i] = stat.Quantile(p, stat.LinInterp, sorted, nil)
	}
	return bounds, nil
}

// fareQuartileFor assigns a fare to its quartile label. A fare exactly
// on a boundary goes to the lower quartile.
func fareQuartileFor(fare float64, bounds [3]float64) string {
	switch {
	case fare <= bounds[0]:
		return schema.FareQuartileLabels[0]
	case fare <= bounds[1]:
		return schema.FareQuartileLabels[1]
	case fare <= bounds[2]:
		return schema.FareQuartileLabels[2]
	default:
		return schema.FareQuartileLabels[3]
	}
}

// derive computes the per-passenger categorical labels and caches them
// alongside the records.
func (ds *Dataset) derive() error {
	fares := make([]float64, len(ds.passengers))
	for i, p := range ds.passengers {
		fares[i] = p.Fare
	}
	bounds, err := FareQuartiles(fares)
	if err != nil {
		return err
	}
	ds.quartiles = bounds

	ds.derived = make([]derived, len(ds.passengers))
	for i, p := range ds.passengers {
		ds.derived[i] = derived{
			ageGroup:     AgeGroupFor(p.Age, p.AgeKnown),
			familySize:   FamilySizeFor(p.SibSp, p.Parch),
			fareQuartile: fareQuartileFor(p.Fare, bounds),
		}
	}
	return nil
}
