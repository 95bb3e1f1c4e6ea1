// Package api exposes the estimation pipeline over a JSON REST
// boundary. The API ingests input, orchestrates the aggregator, and
// serializes output; it performs no energy arithmetic itself.
package api

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/findajay/energy-intelligence/internal/discovery"
	"github.com/findajay/energy-intelligence/internal/energy"
	"github.com/findajay/energy-intelligence/internal/report"
	"github.com/findajay/energy-intelligence/internal/storage"
)

// Server wires the pipeline behind HTTP handlers.
type Server struct {
	aggregator *report.Aggregator
	sink       storage.Sink
	store      storage.ReportStore
	discoverer discovery.Discoverer
	logger     zerolog.Logger
	version    string
	// mockDiscovery marks responses whose discovery data is canned.
	mockDiscovery bool
	now           func() time.Time
}

// NewServer creates the API server.
func NewServer(
	aggregator *report.Aggregator,
	sink storage.Sink,
	store storage.ReportStore,
	discoverer discovery.Discoverer,
	mockDiscovery bool,
	version string,
	logger zerolog.Logger,
) *Server {
	return &Server{
		aggregator:    aggregator,
		sink:          sink,
		store:         store,
		discoverer:    discoverer,
		logger:        logger,
		version:       version,
		mockDiscovery: mockDiscovery,
		now:           time.Now,
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging(s.logger))

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	v1.HandleFunc("/energy/analyze/platform", s.handleAnalyzePlatform).Methods(http.MethodPost)
	v1.HandleFunc("/energy/reports/history", s.handleReportHistory).Methods(http.MethodGet)
	v1.HandleFunc("/resources", s.handleListResources).Methods(http.MethodGet)
	v1.HandleFunc("/resources/microservices", s.handleListMicroservices).Methods(http.MethodGet)

	return r
}

// handleAnalyzePlatform runs the estimation pipeline for the supplied
// topology. The endpoint succeeds with whatever resource lists arrive
// in the body, independent of discovery health; only the analyze-all
// fallback depends on the discoverer.
func (s *Server) handleAnalyzePlatform(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	aggReq := report.Request{
		Microservices:       req.Microservices,
		SharedResourceIDs:   req.SharedResourceIDs,
		Window:              s.resolveWindow(req.StartTime, req.EndTime),
		UtilizationPercent:  req.UtilizationPercent,
		AnalyzeAllResources: req.AnalyzeAllResources,
	}

	rep, err := s.aggregator.Aggregate(r.Context(), aggReq)
	if err != nil {
		// Only the analyze-all path fails structurally, and only on
		// upstream discovery.
		s.respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	if s.mockDiscovery && req.AnalyzeAllResources {
		rep.UsedMockData = true
	}

	payload := report.Assemble(rep, aggReq.MicroserviceNames())
	analysesTotal.Inc()

	// Persistence is fire-and-forget; the response does not wait.
	if record, err := storage.NewRecord(rep, s.now()); err == nil {
		s.sink.Submit(record)
	} else {
		s.logger.Error().Err(err).Str("report_id", rep.ReportID).Msg("report record encoding failed")
	}

	s.respondJSON(w, http.StatusOK, payload)
}

func (s *Server) handleReportHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.respondError(w, http.StatusServiceUnavailable, "report store not configured")
		return
	}

	now := s.now()
	start := parseDateOr(r.URL.Query().Get("startDate"), now.AddDate(0, 0, -30))
	end := parseDateOr(r.URL.Query().Get("endDate"), now)
	if end.Before(start) {
		start, end = end, start
	}

	records, err := s.store.History(r.Context(), start, end)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "report history query failed")
		s.logger.Error().Err(err).Msg("report history query failed")
		return
	}

	s.respondJSON(w, http.StatusOK, HistoryResponse{Reports: records, Count: len(records)})
}

func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := s.discoverer.ListResources(r.Context())
	if err != nil {
		s.respondError(w, http.StatusBadGateway, "resource discovery unavailable")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"resources":    resources,
		"count":        len(resources),
		"usedMockData": s.mockDiscovery,
	})
}

func (s *Server) handleListMicroservices(w http.ResponseWriter, r *http.Request) {
	microservices, err := s.discoverer.ListMicroservices(r.Context())
	if err != nil {
		s.respondError(w, http.StatusBadGateway, "resource discovery unavailable")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"microservices": microservices,
		"count":         len(microservices),
		"usedMockData":  s.mockDiscovery,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"version":   s.version,
		"timestamp": s.now().UTC().Format(time.RFC3339),
	})
}

// resolveWindow defaults missing bounds to a trailing 30-day window.
// An inverted or zero span is left to the window's own clamping.
func (s *Server) resolveWindow(start, end *time.Time) energy.Window {
	now := s.now()
	if start == nil && end == nil {
		return energy.DefaultWindow(now)
	}
	window := energy.Window{}
	if end != nil {
		window.End = *end
	} else {
		window.End = now
	}
	if start != nil {
		window.Start = *start
	} else {
		window.Start = window.End.AddDate(0, 0, -30)
	}
	return window
}

// parseDateOr accepts RFC3339 or date-only values.
func parseDateOr(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	return fallback
}

func (s *Server) respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","message":"response encoding failed"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

func (s *Server) respondError(w http.ResponseWriter, code int, message string) {
	s.respondJSON(w, code, ErrorResponse{Status: "error", Message: message})
}
