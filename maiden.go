// Package maiden provides an interactive survival-analysis dashboard for
// the Titanic passenger dataset.
//
// Usage:
//
//	import (
//	    "github.com/maiden-org/maiden/dataset"
//	    "github.com/maiden-org/maiden/engine"
//	)
//
//	ds, err := dataset.Load("titanic.csv", logger)
//	summary, err := engine.Summarize(ds, "age_group")
//	charts := engine.BuildCharts(summary)
//
// The dataset package loads passenger records once and derives the
// categorical features (age group, family size, fare quartile). The
// engine takes a feature key and returns counts, survivor counts, and
// survival rates per category, plus render-ready bar chart configs.
// The server package wires both behind a small HTTP dashboard.
//
// All computation is local and synchronous — the engine never calls
// any external service.
package maiden
