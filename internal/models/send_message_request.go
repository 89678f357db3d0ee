package models

type SendMessageRequestBody struct {
	RecipientID uint        `json:"recipient_id"`
	Content     string      `json:"content"`
	Kind        string      `json:"kind"`
	Attachments Attachments `json:"attachments"`
}
