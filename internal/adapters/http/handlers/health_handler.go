package handlers

import (
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-ssr-template/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-ssr-template/internal/ports"
)

const (
	statusOK       = "ok"
	statusFailing  = "failing"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the probes used by the process supervisor. Readiness
// covers whichever backend the server was started with: the remote todo API
// or the local SQLite store.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Checks are listed by name; any
// failure turns the response into a 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.HealthResponse{Status: statusReady, Checks: make([]dto.HealthCheck, 0, len(results))}
	for name, err := range results {
		check := dto.HealthCheck{Name: name, Status: statusOK}
		if err != nil {
			check.Status = statusFailing
			check.Error = err.Error()
			resp.Status = statusNotReady
		}
		resp.Checks = append(resp.Checks, check)
	}
	slices.SortFunc(resp.Checks, func(a, b dto.HealthCheck) int {
		return strings.Compare(a.Name, b.Name)
	})

	code := http.StatusOK
	if resp.Status != statusReady {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, resp)
}
