package dataset

import (
	"strconv"

	"github.com/maiden-org/maiden/schema"
)

// ============================================================================
// PASSENGER RECORDS — Immutable dataset snapshot
// ============================================================================
// A Dataset is built once (from CSV or from records directly), derives
// its categorical features at construction, and is never mutated after.
// Consumers read it through accessor methods; the engine reads it
// through its View interface, which Dataset satisfies.
// ============================================================================

// Passenger is one row of the source data.
type Passenger struct {
	Class    int     // ticket class, 1..3
	Sex      string  // "male" / "female"
	Age      float64 // years; meaningful only when AgeKnown
	AgeKnown bool
	SibSp    int     // siblings + spouses aboard
	Parch    int     // parents + children aboard
	Fare     float64 // ticket fare, >= 0
	Embarked string  // port code ("C", "Q", "S"), "" when unknown
	Survived bool
}

// derived holds the categorical labels computed per passenger.
type derived struct {
	ageGroup     string
	familySize   int
	fareQuartile string
}

// Dataset is a fixed-size ordered sequence of passengers plus their
// derived features. Safe for concurrent reads.
type Dataset struct {
	passengers []Passenger
	derived    []derived
	quartiles  [3]float64 // fare boundaries at p=0.25, 0.50, 0.75
	dropped    int        // malformed rows dropped at load
}

// New builds a Dataset from passenger records and derives the
// categorical features. Returns ErrEmptyDataset for zero records.
func New(passengers []Passenger) (*Dataset, error) {
	if len(passengers) == 0 {
		return nil, ErrEmptyDataset
	}
	ds := &Dataset{passengers: passengers}
	if err := ds.derive(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Len returns the number of passengers. Safe on a nil receiver so a
// missing snapshot reads as empty rather than panicking.
func (ds *Dataset) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.passengers)
}

// Passenger returns the record at index i.
func (ds *Dataset) Passenger(i int) Passenger { return ds.passengers[i] }

// Survived reports whether the passenger at index i survived.
func (ds *Dataset) Survived(i int) bool { return ds.passengers[i].Survived }

// Dropped returns how many malformed source rows were discarded at load.
func (ds *Dataset) Dropped() int { return ds.dropped }

// FareQuartileBounds returns the fare boundaries at p=0.25/0.50/0.75.
func (ds *Dataset) FareQuartileBounds() [3]float64 { return ds.quartiles }

// Label returns the category label of passenger i for the given feature
// key. An empty label means the record has no value for that feature
// and is excluded from that feature's aggregation. Unsupported keys
// yield the empty label; the engine validates keys before reading.
func (ds *Dataset) Label(i int, feature string) string {
	p := &ds.passengers[i]
	d := &ds.derived[i]
	switch feature {
	case schema.FeatureClass:
		return strconv.Itoa(p.Class)
	case schema.FeatureSex:
		return p.Sex
	case schema.FeatureAgeGroup:
		return d.ageGroup
	case schema.FeatureFamilySize:
		return strconv.Itoa(d.familySize)
	case schema.FeatureFareQuartile:
		return d.fareQuartile
	case schema.FeatureEmbarked:
		return p.Embarked
	}
	return ""
}
