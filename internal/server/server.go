package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hatake/internal/advisor"
	"hatake/internal/models"
)

// DashboardBuilder produces the current dashboard. *dashboard.Service satisfies it.
type DashboardBuilder interface {
	Build(ctx context.Context) *models.Dashboard
}

// Server exposes the dashboard and the rule engine over HTTP.
type Server struct {
	httpServer *http.Server
	router     *mux.Router
	dashboard  DashboardBuilder
	engine     *advisor.Engine
	logger     *slog.Logger
	started    time.Time
}

// NewServer creates a server with the health, metrics, and /api/v1 routes registered.
func NewServer(addr string, dashboard DashboardBuilder, engine *advisor.Engine, logger *slog.Logger) *Server {
	if engine == nil {
		engine = advisor.NewEngine(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := mux.NewRouter()
	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:    r,
		dashboard: dashboard,
		engine:    engine,
		logger:    logger,
		started:   time.Now(),
	}

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
	api.HandleFunc("/evaluate", s.handleEvaluate).Methods(http.MethodPost)
	api.HandleFunc("/risk", s.handleRisk).Methods(http.MethodGet)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleHealth returns the server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

// handleDashboard returns the full dashboard for the configured location
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if s.dashboard == nil {
		writeError(w, http.StatusServiceUnavailable, "dashboard not configured")
		return
	}

	d := s.dashboard.Build(r.Context())
	if d.Synthetic {
		s.logger.Warn("serving synthetic dashboard", "source", d.Source)
	}
	writeJSON(w, http.StatusOK, d)
}

type evaluateRequest struct {
	CurrentTemperatureC     *float64 `json:"current_temperature_c"`
	CurrentWindSpeedKmh     *float64 `json:"current_wind_speed_kmh"`
	CurrentWindDirectionDeg *float64 `json:"current_wind_direction_deg"`
	TodayMaxTempC           *float64 `json:"today_max_temp_c"`
	TodayMinTempC           *float64 `json:"today_min_temp_c"`
	TodayPrecipitationMm    *float64 `json:"today_precipitation_mm"`
}

func (req evaluateRequest) snapshot() (models.WeatherSnapshot, error) {
	fields := []struct {
		name string
		v    *float64
	}{
		{"current_temperature_c", req.CurrentTemperatureC},
		{"current_wind_speed_kmh", req.CurrentWindSpeedKmh},
		{"current_wind_direction_deg", req.CurrentWindDirectionDeg},
		{"today_max_temp_c", req.TodayMaxTempC},
		{"today_min_temp_c", req.TodayMinTempC},
		{"today_precipitation_mm", req.TodayPrecipitationMm},
	}
	for _, f := range fields {
		if f.v == nil {
			return models.WeatherSnapshot{}, fmt.Errorf("%s is required", f.name)
		}
	}

	return models.WeatherSnapshot{
		CurrentTemperatureC:     *req.CurrentTemperatureC,
		CurrentWindSpeedKmh:     *req.CurrentWindSpeedKmh,
		CurrentWindDirectionDeg: *req.CurrentWindDirectionDeg,
		TodayMaxTempC:           *req.TodayMaxTempC,
		TodayMinTempC:           *req.TodayMinTempC,
		TodayPrecipitationMm:    *req.TodayPrecipitationMm,
	}, nil
}

type evaluateResponse struct {
	Snapshot      models.WeatherSnapshot `json:"snapshot"`
	WindDirection string                 `json:"wind_direction"`
	advisor.Evaluation
}

// handleEvaluate runs the rule engine on a caller-supplied snapshot
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	engine, err := s.engineFor(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req evaluateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	snapshot, err := req.snapshot()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, evaluateResponse{
		Snapshot:      snapshot,
		WindDirection: engine.WindName(snapshot.CurrentWindDirectionDeg),
		Evaluation:    engine.Evaluate(snapshot),
	})
}

// handleRisk scores the three risk inputs given as query parameters
func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	engine, err := s.engineFor(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := r.URL.Query()
	var values [3]float64
	for i, name := range []string{"max_temp", "precip", "wind"} {
		v, err := parseReading(q.Get(name))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", name, err))
			return
		}
		values[i] = v
	}

	writeJSON(w, http.StatusOK, engine.Score(values[0], values[1], values[2]))
}

// engineFor picks the engine for the optional ?lang= parameter.
func (s *Server) engineFor(r *http.Request) (*advisor.Engine, error) {
	lang := r.URL.Query().Get("lang")
	if lang == "" || lang == s.engine.Catalog().Locale {
		return s.engine, nil
	}
	catalog, err := advisor.CatalogFor(lang)
	if err != nil {
		return nil, err
	}
	return advisor.NewEngine(catalog), nil
}

func parseReading(raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("must be finite")
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
