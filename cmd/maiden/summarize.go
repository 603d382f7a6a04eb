package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/maiden-org/maiden/dataset"
	"github.com/maiden-org/maiden/engine"
	"github.com/maiden-org/maiden/helpers"
	"github.com/maiden-org/maiden/schema"
)

var (
	summarizeFeature string
	summarizeFormat  string
	summarizeOut     string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Print survival summaries for one feature",
	Long: `Computes per-category totals, survivor counts, and survival rates
for a feature and writes them to stdout or a file.

Examples:
  maiden summarize --data titanic.csv --feature class
  maiden summarize --data titanic.csv --feature fare_quartile --format csv --out rates.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(cfg.Dataset.Path, logger)
		if err != nil {
			return err
		}

		summary, err := engine.Summarize(ds, summarizeFeature)
		if err != nil {
			return err
		}

		out := os.Stdout
		if summarizeOut != "" {
			f, err := os.Create(summarizeOut)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		switch summarizeFormat {
		case "csv":
			return helpers.WriteSummaryCSV(out, summary)
		case "text":
			printTextSummary(out, ds, summary)
			return nil
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		default:
			return fmt.Errorf("unknown format %q (want json, csv, or text)", summarizeFormat)
		}
	},
}

func printTextSummary(out io.Writer, ds *dataset.Dataset, s *engine.Summary) {
	fmt.Fprintf(out, "%s — %d passengers", schema.DisplayNameFor(s.Feature), ds.Len())
	if s.Excluded > 0 {
		fmt.Fprintf(out, " (%d without a value)", s.Excluded)
	}
	fmt.Fprintln(out)
	for _, c := range s.Categories {
		fmt.Fprintf(out, "  %-12s total %4d   survivors %4d   rate %5.1f%%\n",
			schema.DisplayLabel(s.Feature, c), s.Total[c], s.Survivors[c], s.Rate[c]*100)
	}
}

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List the supported feature keys",
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range schema.Features() {
			derived := ""
			if f.Derived {
				derived = " (derived from " + f.DerivedFrom + ")"
			}
			fmt.Printf("%-14s %s%s\n", f.Key, f.DisplayName, derived)
		}
	},
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeFeature, "feature", schema.FeatureClass,
		"Feature key (class, sex, age_group, family_size, fare_quartile, embarked)")
	summarizeCmd.Flags().StringVar(&summarizeFormat, "format", "text", "Output format: json, csv, text")
	summarizeCmd.Flags().StringVar(&summarizeOut, "out", "", "Write output to file instead of stdout")
}
