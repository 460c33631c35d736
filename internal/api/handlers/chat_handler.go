package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/mediguide/backend/internal/application/services"
	"github.com/mediguide/backend/internal/infrastructure/observability"
)

// ChatHandler handles the hospital assistant conversation endpoint
type ChatHandler struct {
	service *services.ChatService
	metrics *observability.Metrics
}

// NewChatHandler creates a new chat handler. metrics may be nil.
func NewChatHandler(service *services.ChatService, metrics *observability.Metrics) *ChatHandler {
	return &ChatHandler{service: service, metrics: metrics}
}

type chatRequest struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
}

// SendMessage handles POST /api/hospitals/{id}/chat
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid hospital ID")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondWithError(w, http.StatusBadRequest, "message is required")
		return
	}

	conversationID, messages, err := h.service.Send(r.Context(), req.ConversationID, hospitalID, req.Message)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if h.metrics != nil {
		observability.RecordChatReply(r.Context(), h.metrics, hospitalID)
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"conversationId": conversationID,
		"messages":       messages,
	})
}

// GetSuggestions handles GET /api/hospitals/{id}/chat/suggestions
func (h *ChatHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid hospital ID")
		return
	}

	questions, err := h.service.Suggestions(r.Context(), hospitalID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"count":     len(questions),
	})
}
