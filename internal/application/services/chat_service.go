package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mediguide/backend/internal/chat"
	"github.com/mediguide/backend/internal/domain/entities"
	"github.com/mediguide/backend/internal/domain/providers"
	"github.com/mediguide/backend/internal/domain/repositories"
)

// conversation is an append-only message sequence. Its mutex serializes
// sends so the user message is always recorded before the bot reply and
// concurrent sends never interleave their pairs.
type conversation struct {
	mu       sync.Mutex
	messages []entities.ChatMessage
}

// ChatService runs hospital assistant conversations. The clock and sleeper
// are injectable so tests control time; the reply delay mimics the
// assistant "typing".
type ChatService struct {
	hospitals  repositories.HospitalRepository
	responder  *chat.Responder
	bus        providers.NotificationBus
	replyDelay time.Duration

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	mu            sync.RWMutex
	conversations map[string]*conversation
}

// NewChatService creates a chat service. bus may be nil when notifications
// are disabled.
func NewChatService(hospitals repositories.HospitalRepository, responder *chat.Responder, bus providers.NotificationBus, replyDelay time.Duration) *ChatService {
	return &ChatService{
		hospitals:     hospitals,
		responder:     responder,
		bus:           bus,
		replyDelay:    replyDelay,
		now:           time.Now,
		sleep:         sleepCtx,
		conversations: make(map[string]*conversation),
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Send appends the user's message to the conversation, generates a reply
// for the given hospital and appends it. A zero conversationID starts a new
// conversation. Returns the conversation id and the two messages just
// appended, in order.
func (s *ChatService) Send(ctx context.Context, conversationID string, hospitalID int, message string) (string, []entities.ChatMessage, error) {
	hospital, err := s.hospitals.GetByID(ctx, hospitalID)
	if err != nil {
		return "", nil, err
	}

	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	conv := s.conversation(conversationID)
	conv.mu.Lock()
	defer conv.mu.Unlock()

	userMsg := entities.ChatMessage{
		ID:        uuid.NewString(),
		Content:   message,
		Sender:    entities.SenderUser,
		Timestamp: s.now(),
	}
	conv.messages = append(conv.messages, userMsg)

	if err := s.sleep(ctx, s.replyDelay); err != nil {
		return conversationID, []entities.ChatMessage{userMsg}, err
	}

	botMsg := entities.ChatMessage{
		ID:        uuid.NewString(),
		Content:   s.responder.Generate(message, hospital),
		Sender:    entities.SenderBot,
		Timestamp: s.now(),
	}
	conv.messages = append(conv.messages, botMsg)

	s.notifyReply(ctx, hospital)

	return conversationID, []entities.ChatMessage{userMsg, botMsg}, nil
}

// Suggestions returns the predefined starter questions offered alongside
// a hospital's conversation. The hospital must exist.
func (s *ChatService) Suggestions(ctx context.Context, hospitalID int) ([]string, error) {
	if _, err := s.hospitals.GetByID(ctx, hospitalID); err != nil {
		return nil, err
	}
	return chat.PredefinedQuestions, nil
}

// History returns a copy of the conversation's messages in append order.
func (s *ChatService) History(conversationID string) []entities.ChatMessage {
	s.mu.RLock()
	conv, ok := s.conversations[conversationID]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()
	out := make([]entities.ChatMessage, len(conv.messages))
	copy(out, conv.messages)
	return out
}

func (s *ChatService) conversation(id string) *conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.conversations[id]
	if !ok {
		conv = &conversation{}
		s.conversations[id] = conv
	}
	return conv
}

func (s *ChatService) notifyReply(ctx context.Context, hospital *entities.Hospital) {
	if s.bus == nil {
		return
	}
	n := &entities.Notification{
		ID:        uuid.NewString(),
		Kind:      entities.NotificationChatReply,
		Title:     "Assistant reply",
		Message:   "New reply in your conversation with " + hospital.Name,
		CreatedAt: s.now(),
	}
	if err := s.bus.Publish(ctx, n); err != nil {
		log.Warn().Err(err).Msg("failed to publish chat reply notification")
	}
}
