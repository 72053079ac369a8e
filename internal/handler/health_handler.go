package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

// HealthHandler serves liveness endpoints.
type HealthHandler struct {
	port string
	ping Pinger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(port string, ping Pinger) *HealthHandler {
	return &HealthHandler{port: port, ping: ping}
}

// StatusResponse describes the running server.
type StatusResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Port      string `json:"port"`
	Database  string `json:"database"`
}

// Status godoc
// @Summary Server and database status
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /test [get]
func (h *HealthHandler) Status(c echo.Context) error {
	database := "connected"
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if h.ping == nil || h.ping(ctx) != nil {
		database = "disconnected"
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Message:   "Server is running correctly!",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Port:      h.port,
		Database:  database,
	})
}

// Healthz answers plain "ok" for probes.
func (h *HealthHandler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
