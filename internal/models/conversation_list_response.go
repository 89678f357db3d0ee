package models

type ConversationListResponse struct {
	Conversations []ConversationSummary `json:"conversations"`
	Count         int                   `json:"count"`
}
