package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/maiden-org/maiden/config"
)

// ============================================================================
// HTTP DASHBOARD — Interaction controller
// ============================================================================
// One feature-selection event is one synchronous request: the page's
// dropdown fires GET /api/charts?feature=K, the handler summarizes the
// current snapshot and returns three render-ready chart configs. No
// state beyond the read-only snapshot in the Store.
// ============================================================================

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// Server serves the dashboard page and its JSON/CSV API.
type Server struct {
	cfg   config.Config
	log   *zap.Logger
	store *Store
	page  *template.Template
}

// New builds a Server around a dataset store.
func New(cfg config.Config, store *Store, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	page, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, log: log, store: store, page: page}, nil
}

// Handler returns the full route table wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /api/features", s.handleFeatures)
	mux.HandleFunc("GET /api/charts", s.handleCharts)
	mux.HandleFunc("GET /api/summary.csv", s.handleSummaryCSV)
	return s.logRequests(mux)
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("dashboard listening", zap.String("addr", s.cfg.Server.Listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.log.Info("dashboard stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// ============================================================================
// REQUEST LOGGING
// ============================================================================

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
