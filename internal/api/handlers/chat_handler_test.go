package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediguide/backend/internal/adapters/events"
	"github.com/mediguide/backend/internal/adapters/memory"
	"github.com/mediguide/backend/internal/application/services"
	"github.com/mediguide/backend/internal/chat"
)

func newChatMux(t *testing.T) *http.ServeMux {
	t.Helper()
	bus := events.NewMemoryBus()
	t.Cleanup(func() { _ = bus.Close() })

	responder := chat.NewResponderWithRand(func(n int) int { return 0 })
	svc := services.NewChatService(memory.NewHospitalAdapter(), responder, bus, 0)
	h := NewChatHandler(svc, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/hospitals/{id}/chat", h.SendMessage)
	mux.HandleFunc("GET /api/hospitals/{id}/chat/suggestions", h.GetSuggestions)
	return mux
}

func postChat(t *testing.T, mux *http.ServeMux, target, payload string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestSendMessage_StartsConversation(t *testing.T) {
	mux := newChatMux(t)
	rec, body := postChat(t, mux, "/api/hospitals/1/chat", `{"message":"hello"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["conversationId"])

	messages := body["messages"].([]interface{})
	require.Len(t, messages, 2)
	user := messages[0].(map[string]interface{})
	bot := messages[1].(map[string]interface{})
	assert.Equal(t, "user", user["sender"])
	assert.Equal(t, "hello", user["content"])
	assert.Equal(t, "bot", bot["sender"])
	assert.Contains(t, bot["content"], "Apollo Hospitals")
}

func TestSendMessage_ContinuesConversation(t *testing.T) {
	mux := newChatMux(t)
	_, first := postChat(t, mux, "/api/hospitals/1/chat", `{"message":"hello"}`)
	conversationID := first["conversationId"].(string)

	rec, body := postChat(t, mux, "/api/hospitals/1/chat",
		`{"conversationId":"`+conversationID+`","message":"what treatments do you offer?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, conversationID, body["conversationId"])
	messages := body["messages"].([]interface{})
	assert.Len(t, messages, 4)
}

func TestSendMessage_BlankMessage(t *testing.T) {
	mux := newChatMux(t)
	rec, body := postChat(t, mux, "/api/hospitals/1/chat", `{"message":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "message is required", body["message"])
}

func TestSendMessage_InvalidBody(t *testing.T) {
	mux := newChatMux(t)
	rec, body := postChat(t, mux, "/api/hospitals/1/chat", `{"message":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", body["message"])
}

func TestGetSuggestions(t *testing.T) {
	mux := newChatMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals/1/chat/suggestions")

	require.Equal(t, http.StatusOK, rec.Code)
	questions := body["questions"].([]interface{})
	assert.Equal(t, float64(len(questions)), body["count"])
	assert.Contains(t, questions, "How do I book an appointment?")
	assert.Contains(t, questions, "First aid for burns?")
}

func TestGetSuggestions_UnknownHospital(t *testing.T) {
	mux := newChatMux(t)
	rec, _ := doRequest(t, mux, http.MethodGet, "/api/hospitals/999/chat/suggestions")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendMessage_UnknownHospital(t *testing.T) {
	mux := newChatMux(t)
	rec, body := postChat(t, mux, "/api/hospitals/999/chat", `{"message":"hello"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, body["error"])
}
