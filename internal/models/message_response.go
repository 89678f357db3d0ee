package models

import "time"

type MessageResponse struct {
	ID             uint          `json:"id"`
	ConversationID string        `json:"conversation_id"`
	SenderID       uint          `json:"sender_id"`
	RecipientID    uint          `json:"recipient_id"`
	Content        string        `json:"content"`
	Kind           string        `json:"kind"`
	Attachments    Attachments   `json:"attachments"`
	IsRead         bool          `json:"is_read"`
	ReadAt         *time.Time    `json:"read_at"`
	CreatedAt      time.Time     `json:"created_at"`
	Sender         *UserResponse `json:"sender"`
	Recipient      *UserResponse `json:"recipient"`
}
