package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck reports whether a dependency is usable
type HealthCheck func(ctx context.Context) error

// HealthHandler reports the dashboard status and the state of its dependencies
type HealthHandler struct {
	network string
	checks  map[string]HealthCheck
}

// NewHealthHandler creates a handler running checks on every request. checks
// may be nil.
func NewHealthHandler(network string, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{network: network, checks: checks}
}

type HealthResponse = responses.HealthResponse

// Health godoc
// @Summary Check the health of the dashboard
// @Description Returns "ok" when every dependency check passes and "degraded" otherwise
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: responses.HealthStatusOK, Network: h.network}
	if len(h.checks) > 0 {
		resp.Checks = make(map[string]string, len(h.checks))
	}

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			requestLog(c).Warn("Health check failed", zap.String("check", name), zap.Error(err))
			resp.Checks[name] = err.Error()
			resp.Status = responses.HealthStatusDegraded
			continue
		}
		resp.Checks[name] = responses.HealthStatusOK
	}

	status := http.StatusOK
	if resp.Status != responses.HealthStatusOK {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
