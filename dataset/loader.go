package dataset

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"
)

// ============================================================================
// DATASET LOADER — CSV → gota DataFrame → []Passenger
// ============================================================================
// The loader reads the whole file once at startup (or on reload).
// Column matching is case-insensitive on snake_cased header names, so
// both the Kaggle export ("Pclass", "SibSp") and the seaborn export
// ("pclass", "sibsp") load without configuration.
//
// Row policy: a row with an unparseable required value is dropped and
// counted, not patched. Optional values (age, embarked) missing on a
// row are kept and resolved by the derivation/aggregation policy.
// ============================================================================

// Required source columns, by canonical snake_case name.
var requiredColumns = []string{
	"survived", "pclass", "sex", "age", "sibsp", "parch", "fare", "embarked",
}

// Load reads a passenger CSV file into an immutable Dataset.
func Load(path string, log *zap.Logger) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return LoadReader(f, log)
}

// LoadReader reads passenger CSV data into an immutable Dataset.
func LoadReader(r io.Reader, log *zap.Logger) (*Dataset, error) {
	if log == nil {
		log = zap.NewNop()
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{"", "NA", "NaN", "null"}),
	)
	if err := df.Error(); err != nil {
		// gota reports a headers-only or zero-row CSV as an empty frame.
		if strings.Contains(err.Error(), "empty DataFrame") {
			return nil, fmt.Errorf("no rows: %w", ErrEmptyDataset)
		}
		return nil, fmt.Errorf("read dataset csv: %w", err)
	}

	cols, err := resolveColumns(df.Names())
	if err != nil {
		return nil, err
	}

	// Resolve each series once; df.Col copies on every call.
	columns := make(map[string]series.Series, len(cols))
	for canonical, actual := range cols {
		columns[canonical] = df.Col(actual)
	}
	get := func(name string, i int) (string, bool) {
		el := columns[name].Elem(i)
		if el.IsNA() {
			return "", false
		}
		return strings.TrimSpace(el.String()), true
	}

	passengers := make([]Passenger, 0, df.Nrow())
	dropped := 0

	for i := 0; i < df.Nrow(); i++ {
		p, ok := parseRow(get, i)
		if !ok {
			dropped++
			continue
		}
		passengers = append(passengers, p)
	}

	if dropped > 0 {
		log.Warn("dropped malformed rows",
			zap.Int("dropped", dropped),
			zap.Int("kept", len(passengers)))
	}
	if len(passengers) == 0 {
		return nil, fmt.Errorf("no usable rows: %w", ErrEmptyDataset)
	}

	ds, err := New(passengers)
	if err != nil {
		return nil, err
	}
	ds.dropped = dropped

	log.Info("dataset loaded",
		zap.Int("passengers", ds.Len()),
		zap.Int("dropped", dropped),
		zap.Float64s("fare_quartiles", ds.quartiles[:]))
	return ds, nil
}

// resolveColumns maps canonical column names to the actual header names
// in the frame. All required columns must be present.
func resolveColumns(names []string) (map[string]string, error) {
	byCanonical := make(map[string]string, len(names))
	for _, n := range names {
		byCanonical[toSnakeCase(n)] = n
	}

	cols := make(map[string]string, len(requiredColumns))
	for _, want := range requiredColumns {
		actual, ok := byCanonical[want]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, want)
		}
		cols[want] = actual
	}
	return cols, nil
}

// parseRow converts one frame row into a Passenger. Returns false when
// a required value is missing or unparseable.
func parseRow(get func(string, int) (string, bool), i int) (Passenger, bool) {
	var p Passenger

	surv, ok := parseBoolField(get, "survived", i)
	if !ok {
		return p, false
	}
	class, ok := parseIntField(get, "pclass", i)
	if !ok || class < 1 || class > 3 {
		return p, false
	}
	sex, ok := get("sex", i)
	if !ok || sex == "" {
		return p, false
	}
	sibsp, ok := parseIntField(get, "sibsp", i)
	if !ok || sibsp < 0 {
		return p, false
	}
	parch, ok := parseIntField(get, "parch", i)
	if !ok || parch < 0 {
		return p, false
	}
	fare, ok := parseFloatField(get, "fare", i)
	if !ok || fare < 0 {
		return p, false
	}

	p = Passenger{
		Class:    class,
		Sex:      strings.ToLower(sex),
		SibSp:    sibsp,
		Parch:    parch,
		Fare:     fare,
		Survived: surv,
	}

	// Optional fields: absence is data, not an error.
	if age, ok := parseFloatField(get, "age", i); ok && age >= 0 {
		p.Age = age
		p.AgeKnown = true
	}
	if port, ok := get("embarked", i); ok {
		p.Embarked = strings.ToUpper(port)
	}
	return p, true
}

func parseIntField(get func(string, int) (string, bool), name string, i int) (int, bool) {
	s, ok := get(name, i)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Some exports write integer columns as floats ("3.0").
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, false
		}
		v = int(f)
	}
	return v, true
}

func parseFloatField(get func(string, int) (string, bool), name string, i int) (float64, bool) {
	s, ok := get(name, i)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseBoolField(get func(string, int) (string, bool), name string, i int) (bool, bool) {
	s, ok := get(name, i)
	if !ok {
		return false, false
	}
	switch strings.ToLower(s) {
	case "1", "true", "yes":
		return true, true
	case "0", "false", "no":
		return false, true
	}
	return false, false
}

// toSnakeCase converts "Column Name" → "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
