package enums

const (
	FILE_BUCKET_USER_PROFILE        = "user-profile"
	FILE_BUCKET_MESSAGE_ATTACHMENTS = "message-attachments"
)
