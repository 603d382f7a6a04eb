package dataset

import "errors"

var (
	// ErrEmptyDataset is returned when a load or derivation step ends
	// up with zero usable passenger records. Quartile boundaries are
	// undefined over an empty distribution, so this is fatal.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrMissingColumn is returned when a required column is absent
	// from the source data. Load aborts; there is no per-record
	// recovery from a missing column.
	ErrMissingColumn = errors.New("required column missing")
)
