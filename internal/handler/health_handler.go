package handler

import (
	"context"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/school-registry/internal/response"
)

const healthCheckTimeout = 2 * time.Second

// PingFunc checks a single dependency.
type PingFunc func(ctx context.Context) error

// HealthHandler reports process and dependency status.
type HealthHandler struct {
	checks    map[string]PingFunc
	startTime time.Time
	log       zerolog.Logger
}

// NewHealthHandler creates a HealthHandler running the given named checks.
func NewHealthHandler(checks map[string]PingFunc, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		checks:    checks,
		startTime: time.Now(),
		log:       log.With().Str("component", "health_handler").Logger(),
	}
}

type healthStatus struct {
	Status       string            `json:"status"`
	Uptime       string            `json:"uptime"`
	Goroutines   int               `json:"goroutines"`
	GoVersion    string            `json:"go_version"`
	Dependencies map[string]string `json:"dependencies"`
}

// Health godoc
// GET /health
// Returns 200 when every dependency answers, 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := healthStatus{
		Status:       "ok",
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		Goroutines:   runtime.NumGoroutine(),
		GoVersion:    runtime.Version(),
		Dependencies: make(map[string]string, len(h.checks)),
	}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.log.Warn().Err(err).Str("dependency", name).Msg("health check failed")
			status.Dependencies[name] = "down"
			status.Status = "degraded"
			continue
		}
		status.Dependencies[name] = "up"
	}

	if status.Status != "ok" {
		response.FailWithData(c, http.StatusServiceUnavailable, response.ErrUnavailable, status)
		return
	}
	response.Success(c, http.StatusOK, status)
}
