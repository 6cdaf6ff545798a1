package handlers

import (
	"context"
	"net/http"
	"time"

	"SHAREMYTRIP_WEB/internal/dto"
	"SHAREMYTRIP_WEB/internal/utils"
)

// PingFunc checks one dependency
type PingFunc func(ctx context.Context) error

// HealthHandler handles health check related requests
type HealthHandler struct {
	checks map[string]PingFunc
}

// NewHealthHandler creates a new HealthHandler instance. checks are run by ReadinessCheck.
func NewHealthHandler(checks map[string]PingFunc) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// HealthCheck handles basic health check (no dependencies)
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck handles process liveness check
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck runs every dependency check
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	details := map[string]any{}
	healthy := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			details[name] = err.Error()
			healthy = false
			continue
		}
		details[name] = "ok"
	}

	if !healthy {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Details: details,
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: details,
	})
}
