package handler

import (
	"net/http"
	"runtime"
	"time"

	"tracker/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthHandler serves liveness and process metrics.
type HealthHandler struct {
	candidateRepo repository.CandidateRepository
	startedAt     time.Time
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(candidateRepo repository.CandidateRepository) *HealthHandler {
	return &HealthHandler{
		candidateRepo: candidateRepo,
		startedAt:     time.Now(),
	}
}

type healthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status: "ok",
		Uptime: time.Since(h.startedAt).Seconds(),
	})
}

type memoryMetrics struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	NumGC      uint32 `json:"numGC"`
}

type metricsResponse struct {
	Uptime     float64       `json:"uptime"`
	Memory     memoryMetrics `json:"memory"`
	Candidates int           `json:"candidates"`
	Goroutines int           `json:"goroutines"`
}

// Metrics handles GET /metrics.
func (h *HealthHandler) Metrics(c echo.Context) error {
	count, err := h.candidateRepo.Count(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return c.JSON(http.StatusOK, metricsResponse{
		Uptime: time.Since(h.startedAt).Seconds(),
		Memory: memoryMetrics{
			Alloc:      memStats.Alloc,
			TotalAlloc: memStats.TotalAlloc,
			Sys:        memStats.Sys,
			NumGC:      memStats.NumGC,
		},
		Candidates: count,
		Goroutines: runtime.NumGoroutine(),
	})
}
