package server

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status          string `json:"status"`
	Detector        string `json:"detector"`
	DetectorHealthy bool   `json:"detector_healthy"`
}

type HealthHandler struct {
	detector string
	healthy  *atomic.Bool
}

func NewHealthHandler(detector string, healthy *atomic.Bool) *HealthHandler {
	return &HealthHandler{detector: detector, healthy: healthy}
}

// Healthz reports the last detector probe: 200 when healthy, 503 otherwise.
func (h *HealthHandler) Healthz(c *gin.Context) {
	resp := HealthResponse{
		Status:          "ok",
		Detector:        h.detector,
		DetectorHealthy: h.healthy.Load(),
	}
	if !resp.DetectorHealthy {
		resp.Status = "degraded"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
