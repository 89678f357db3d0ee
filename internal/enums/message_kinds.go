package enums

const (
	MESSAGE_KIND_TEXT   = "text"
	MESSAGE_KIND_IMAGE  = "image"
	MESSAGE_KIND_FILE   = "file"
	MESSAGE_KIND_SYSTEM = "system"
)

const (
	ATTACHMENT_KIND_IMAGE    = "image"
	ATTACHMENT_KIND_FILE     = "file"
	ATTACHMENT_KIND_DOCUMENT = "document"
)

func IsValidMessageKind(kind string) bool {
	switch kind {
	case MESSAGE_KIND_TEXT, MESSAGE_KIND_IMAGE, MESSAGE_KIND_FILE, MESSAGE_KIND_SYSTEM:
		return true
	}
	return false
}

func IsValidAttachmentKind(kind string) bool {
	switch kind {
	case ATTACHMENT_KIND_IMAGE, ATTACHMENT_KIND_FILE, ATTACHMENT_KIND_DOCUMENT:
		return true
	}
	return false
}
