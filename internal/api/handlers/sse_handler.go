package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mediguide/backend/internal/domain/providers"
)

// SSEHandler streams notifications to connected clients over Server-Sent
// Events.
type SSEHandler struct {
	bus providers.NotificationBus
}

// NewSSEHandler creates a new SSE handler
func NewSSEHandler(bus providers.NotificationBus) *SSEHandler {
	return &SSEHandler{bus: bus}
}

// StreamNotifications handles GET /api/notifications/stream
func (h *SSEHandler) StreamNotifications(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	notifications, err := h.bus.Subscribe(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("failed to subscribe to notification bus")
		respondWithError(w, http.StatusInternalServerError, "subscription failed")
		return
	}

	sendEvent(w, "connected", map[string]interface{}{
		"timestamp": time.Now(),
	})
	flusher.Flush()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now(),
			})
			flusher.Flush()
		case n, ok := <-notifications:
			if !ok {
				return
			}
			sendEvent(w, string(n.Kind), n)
			flusher.Flush()
		}
	}
}

// sendEvent writes one SSE frame.
func sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal SSE event")
		return
	}

	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
}
