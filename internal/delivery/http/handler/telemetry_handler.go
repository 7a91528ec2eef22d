package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	domain "fleet-console/internal/domain/device"
	"fleet-console/internal/telemetry"
	"fleet-console/pkg/utils"
)

// TelemetryHandler bridges one client connection to the broker for one
// device as a server-sent event stream.
type TelemetryHandler struct {
	registry    domain.Registry
	simulator   *telemetry.Simulator
	broker      *telemetry.Broker
	heartbeat   time.Duration
	retryMillis int
}

func NewTelemetryHandler(registry domain.Registry, simulator *telemetry.Simulator, broker *telemetry.Broker, heartbeat time.Duration, retryMillis int) *TelemetryHandler {
	if heartbeat <= 0 {
		heartbeat = 15 * time.Second
	}
	if retryMillis <= 0 {
		retryMillis = 5000
	}
	return &TelemetryHandler{
		registry:    registry,
		simulator:   simulator,
		broker:      broker,
		heartbeat:   heartbeat,
		retryMillis: retryMillis,
	}
}

func (h *TelemetryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/devices/:id/telemetry", h.Stream)
}

// Stream serves GET /devices/:id/telemetry. The first connection lazily
// starts the simulator; every published event for the device becomes one
// data frame. The subscription and heartbeat ticker are released on every
// exit path by the defers below, whether the client disconnected, a write
// failed, or the server is shutting down.
func (h *TelemetryHandler) Stream(c *gin.Context) {
	deviceID := c.Param("id")
	if _, err := h.registry.Get(deviceID); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	h.simulator.EnsureStarted()

	sub := h.broker.Subscribe(deviceID)
	defer sub.Cancel()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache, no-transform")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	// Confirm liveness before the first event, then advertise the
	// reconnect delay so dropped clients do not hammer the server.
	if _, err := io.WriteString(c.Writer, ": connected\n\n"); err != nil {
		return
	}
	if _, err := fmt.Fprintf(c.Writer, "retry: %d\n\n", h.retryMillis); err != nil {
		return
	}
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			if err := sse.Encode(c.Writer, sse.Event{Data: ev}); err != nil {
				return
			}
			c.Writer.Flush()
		case <-heartbeat.C:
			if _, err := io.WriteString(c.Writer, ": heartbeat\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
