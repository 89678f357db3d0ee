package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrInvalidParams      = Error("invalid params")
	ErrUnauthorized       = Error("unauthorized")
	ErrInvalidToken       = Error("invalid token")

	ErrUserAlreadyExists = Error("user already exists")
	ErrUserNotFound      = Error("user not found")
	ErrWrongPassword     = Error("wrong password")
	ErrInvalidEmail      = Error("invalid email")
	ErrInvalidPassword   = Error("invalid password")
	ErrInvalidUser       = Error("invalid user")
	ErrFirstName         = Error("first name is empty or too short")
	ErrLastName          = Error("last name is empty or too short")
	ErrInvalidPageOrSize = Error("invalid page or size")

	ErrEmptyContent       = Error("message content is required")
	ErrSelfMessage        = Error("cannot send message to yourself")
	ErrInvalidMessageKind = Error("invalid message kind")
	ErrInvalidAttachment  = Error("invalid attachment")
	ErrRecipientNotFound  = Error("recipient not found")
	ErrMessageNotFound    = Error("message not found")
	ErrNotRecipient       = Error("only the recipient can mark a message as read")
	ErrNotParticipant     = Error("access denied")

	ErrInvalidFile = Error("invalid file")
)
