package schema

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ============================================================================
// FEATURE CATALOG — The six categorical features the dashboard supports
// ============================================================================
// The catalog is static: the passenger schema is fixed, so there is no
// runtime discovery step. The server's dropdown, the CLI's features
// command, and the engine's validation all read from here.
// ============================================================================

// Supported feature keys.
const (
	FeatureClass        = "class"
	FeatureSex          = "sex"
	FeatureAgeGroup     = "age_group"
	FeatureFamilySize   = "family_size"
	FeatureFareQuartile = "fare_quartile"
	FeatureEmbarked     = "embarked"
)

// Age group category labels, in display order. UnknownAge is the
// sentinel for passengers with no recorded age.
const (
	AgeChild    = "Child"
	AgeTeenager = "Teenager"
	AgeAdult    = "Adult"
	AgeSenior   = "Senior"
	UnknownAge  = "Unknown"
)

// Fare quartile category labels, in display order.
var FareQuartileLabels = [4]string{"Q1 (Low)", "Q2", "Q3", "Q4 (High)"}

// OrderPolicy determines how a feature's category labels are ordered.
// Chart category ordering is presentational but must be stable across
// repeated calls on the same data.
type OrderPolicy int

const (
	// OrderLexical sorts labels ascending lexicographically.
	OrderLexical OrderPolicy = iota
	// OrderNumeric sorts labels by their integer value.
	OrderNumeric
	// OrderFixed sorts labels by their position in Feature.FixedOrder;
	// labels not in the list go last, lexicographically.
	OrderFixed
)

// Feature describes one selectable categorical feature.
type Feature struct {
	Key         string      `json:"key"`
	DisplayName string      `json:"displayName"`
	Description string      `json:"description,omitempty"`
	Order       OrderPolicy `json:"-"`
	FixedOrder  []string    `json:"-"`
	Derived     bool        `json:"derived"`
	DerivedFrom string      `json:"derivedFrom,omitempty"`
}

var catalog = []Feature{
	{
		Key:         FeatureClass,
		DisplayName: "Passenger Class",
		Description: "Ticket class (1st, 2nd, 3rd)",
		Order:       OrderNumeric,
	},
	{
		Key:         FeatureSex,
		DisplayName: "Sex",
		Order:       OrderLexical,
	},
	{
		Key:         FeatureAgeGroup,
		DisplayName: "Age Group",
		Description: "Child <13, Teenager 13-19, Adult 20-59, Senior 60+",
		Order:       OrderFixed,
		FixedOrder:  []string{AgeChild, AgeTeenager, AgeAdult, AgeSenior, UnknownAge},
		Derived:     true,
		DerivedFrom: "age",
	},
	{
		Key:         FeatureFamilySize,
		DisplayName: "Family Size",
		Description: "Siblings/spouses + parents/children + self",
		Order:       OrderNumeric,
		Derived:     true,
		DerivedFrom: "sibsp, parch",
	},
	{
		Key:         FeatureFareQuartile,
		DisplayName: "Fare Quartile",
		Description: "Position among the empirical fare quartiles",
		Order:       OrderFixed,
		FixedOrder:  FareQuartileLabels[:],
		Derived:     true,
		DerivedFrom: "fare",
	},
	{
		Key:         FeatureEmbarked,
		DisplayName: "Embarked Location",
		Description: "Port of embarkation (C, Q, S)",
		Order:       OrderLexical,
	},
}

// Features returns the full catalog in presentation order.
func Features() []Feature {
	out := make([]Feature, len(catalog))
	copy(out, catalog)
	return out
}

// Keys returns the supported feature keys in presentation order.
func Keys() []string {
	keys := make([]string, len(catalog))
	for i, f := range catalog {
		keys[i] = f.Key
	}
	return keys
}

// Lookup finds a feature by key. The second return is false for
// unsupported keys.
func Lookup(key string) (Feature, bool) {
	for _, f := range catalog {
		if f.Key == key {
			return f, true
		}
	}
	return Feature{}, false
}

// SortLabels orders category labels according to the feature's policy.
// The slice is sorted in place and returned.
func (f Feature) SortLabels(labels []string) []string {
	switch f.Order {
	case OrderNumeric:
		sort.Slice(labels, func(i, j int) bool {
			a, aerr := strconv.Atoi(labels[i])
			b, berr := strconv.Atoi(labels[j])
			if aerr != nil || berr != nil {
				return labels[i] < labels[j]
			}
			return a < b
		})
	case OrderFixed:
		rank := make(map[string]int, len(f.FixedOrder))
		for i, l := range f.FixedOrder {
			rank[l] = i
		}
		sort.Slice(labels, func(i, j int) bool {
			ri, iok := rank[labels[i]]
			rj, jok := rank[labels[j]]
			switch {
			case iok && jok:
				return ri < rj
			case iok:
				return true
			case jok:
				return false
			default:
				return labels[i] < labels[j]
			}
		})
	default:
		sort.Strings(labels)
	}
	return labels
}

// DisplayLabel formats a raw category label for presentation.
// Lower-cased values from the source data ("male", "female") are
// title-cased; everything else passes through unchanged.
func DisplayLabel(featureKey, label string) string {
	if featureKey != FeatureSex {
		return label
	}
	return cases.Title(language.English).String(label)
}

// DisplayNameFor builds a display name from a feature key when the key
// is not in the catalog ("family_size" → "Family Size"). Catalog entries
// use their configured name.
func DisplayNameFor(key string) string {
	if f, ok := Lookup(key); ok {
		return f.DisplayName
	}
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
