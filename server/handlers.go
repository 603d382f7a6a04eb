package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/maiden-org/maiden/engine"
	"github.com/maiden-org/maiden/helpers"
	"github.com/maiden-org/maiden/schema"
)

// chartsResponse is the payload for one feature selection.
type chartsResponse struct {
	Feature  string                `json:"feature"`
	Overview *engine.OverviewStats `json:"overview"`
	Summary  *engine.Summary       `json:"summary"`
	Charts   *engine.Charts        `json:"charts"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data := struct {
		Features []schema.Feature
		Default  string
	}{
		Features: schema.Features(),
		Default:  schema.FeatureClass,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.log.Error("render page", zap.Error(err))
	}
}

func (s *Server) handleFeatures(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, schema.Features())
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	feature := r.URL.Query().Get("feature")
	ds := s.store.Current() // one snapshot for both computations

	summary, err := engine.Summarize(ds, feature)
	if err != nil {
		s.writeSummarizeError(w, feature, err)
		return
	}
	overview, err := engine.Overview(ds)
	if err != nil {
		s.writeSummarizeError(w, feature, err)
		return
	}

	writeJSON(w, http.StatusOK, chartsResponse{
		Feature:  feature,
		Overview: overview,
		Summary:  summary,
		Charts:   engine.BuildCharts(summary),
	})
}

func (s *Server) handleSummaryCSV(w http.ResponseWriter, r *http.Request) {
	feature := r.URL.Query().Get("feature")

	summary, err := engine.Summarize(s.store.Current(), feature)
	if err != nil {
		s.writeSummarizeError(w, feature, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "survival_"+feature+".csv"))
	if err := helpers.WriteSummaryCSV(w, summary); err != nil {
		s.log.Error("write summary csv", zap.Error(err))
	}
}

// writeSummarizeError maps engine errors to HTTP statuses: an unknown
// feature is the caller's fault, an empty dataset is ours.
func (s *Server) writeSummarizeError(w http.ResponseWriter, feature string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrInvalidFeature):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrEmptyDataset):
		status = http.StatusServiceUnavailable
	}
	s.log.Warn("summarize failed",
		zap.String("feature", feature),
		zap.Int("status", status),
		zap.Error(err))
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
