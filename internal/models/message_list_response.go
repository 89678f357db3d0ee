package models

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Count    int               `json:"count"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    int64             `json:"total"`
}
