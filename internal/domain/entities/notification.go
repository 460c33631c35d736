package entities

import "time"

// NotificationKind classifies notifications pushed to connected clients.
type NotificationKind string

const (
	NotificationChatReply NotificationKind = "chat.reply"
	NotificationInfo      NotificationKind = "info"
)

// Notification is a transient user-facing event delivered over the
// notification bus (for example to SSE subscribers).
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}
