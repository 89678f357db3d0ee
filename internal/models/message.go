package models

import (
	"time"
)

// Message is the only persisted chat entity. A conversation is never stored
// on its own; it is the set of messages sharing a conversation id.
//
// Read-state and the two deletion flags are the only mutable fields. Each
// deletion flag belongs to one party; a message is fully deleted only when
// both are set, and that is always derived, never stored.
type Message struct {
	ID                 uint        `gorm:"primarykey" json:"id"`
	ConversationID     string      `gorm:"index;not null" json:"conversation_id"`
	SenderID           uint        `gorm:"index;not null" json:"sender_id"`
	RecipientID        uint        `gorm:"index;not null" json:"recipient_id"`
	Content            string      `gorm:"not null" json:"content"`
	Kind               string      `gorm:"not null" json:"kind"`
	Attachments        Attachments `gorm:"type:jsonb" json:"attachments"`
	IsRead             bool        `gorm:"default:false;index" json:"is_read"`
	ReadAt             *time.Time  `json:"read_at"`
	DeletedBySender    bool        `gorm:"default:false" json:"-"`
	DeletedByRecipient bool        `gorm:"default:false" json:"-"`
	CreatedAt          time.Time   `gorm:"index" json:"created_at"`
}

func (m *Message) IsParticipant(userID uint) bool {
	return m.SenderID == userID || m.RecipientID == userID
}

// IsVisibleTo reports whether the given participant has not deleted the
// message on their own side. Deletion by the other party does not matter.
func (m *Message) IsVisibleTo(userID uint) bool {
	if m.SenderID == userID {
		return !m.DeletedBySender
	}
	if m.RecipientID == userID {
		return !m.DeletedByRecipient
	}
	return false
}

// IsDeleted is derived: true only once both parties have deleted the message.
func (m *Message) IsDeleted() bool {
	return m.DeletedBySender && m.DeletedByRecipient
}

func (m *Message) ToMessageResponse(sender, recipient *UserResponse) *MessageResponse {
	return &MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		RecipientID:    m.RecipientID,
		Content:        m.Content,
		Kind:           m.Kind,
		Attachments:    m.Attachments,
		IsRead:         m.IsRead,
		ReadAt:         m.ReadAt,
		CreatedAt:      m.CreatedAt,
		Sender:         sender,
		Recipient:      recipient,
	}
}
