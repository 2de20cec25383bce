package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/wordsim/internal/taxonomy"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// graphStatser exposes the size of the loaded taxonomy.
type graphStatser interface {
	Stats() taxonomy.Stats
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	graph   graphStatser
	version string
}

// NewHealthHandler creates a HealthHandler. db may be nil when the taxonomy
// was loaded from files.
func NewHealthHandler(db dbPinger, graph graphStatser, version string) *HealthHandler {
	return &HealthHandler{db: db, graph: graph, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string          `json:"status"`
	Latency string          `json:"latency,omitempty"`
	Stats   *taxonomy.Stats `json:"stats,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when the taxonomy is loaded and the
// database, if any, answers a ping; 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ready := h.graph != nil && h.graph.Stats().Synsets > 0
	if ready && h.db != nil {
		ready = h.db.Ping(ctx) == nil
	}

	if !ready {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: taxonomy size, database latency when a
// database is configured, and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	if h.graph == nil || h.graph.Stats().Synsets == 0 {
		components["taxonomy"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		st := h.graph.Stats()
		components["taxonomy"] = CompStatus{Status: "ok", Stats: &st}
	}

	if h.db != nil {
		start := time.Now()
		err := h.db.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components["database"] = CompStatus{Status: "down"}
			overallStatus = "down"
		} else {
			components["database"] = CompStatus{
				Status:  "ok",
				Latency: latency.String(),
			}
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
