package models

// ConversationSummary is a computed view over the message log, never
// persisted. OtherParticipant is nil when the directory lookup fails; the
// summary is still returned.
type ConversationSummary struct {
	ConversationID   string           `json:"conversation_id"`
	LastMessage      *MessageResponse `json:"last_message"`
	UnreadCount      int              `json:"unread_count"`
	OtherParticipant *UserResponse    `json:"other_participant"`
}
