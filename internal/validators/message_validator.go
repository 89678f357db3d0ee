package validators

import (
	"strings"

	"github.com/zeroonedevs/SheRisesv1/internal/enums"
	"github.com/zeroonedevs/SheRisesv1/internal/errs"
	"github.com/zeroonedevs/SheRisesv1/internal/models"
)

// ValidateSendMessage runs every precondition of a send before any write
// happens. A rejected request must leave no partial state behind.
func ValidateSendMessage(senderID uint, body *models.SendMessageRequestBody) []error {
	var errors []error
	if body == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	if body.RecipientID < 1 {
		errors = append(errors, errs.ErrInvalidParams)
	}

	if senderID == body.RecipientID {
		errors = append(errors, errs.ErrSelfMessage)
	}

	if strings.TrimSpace(body.Content) == "" {
		errors = append(errors, errs.ErrEmptyContent)
	}

	if body.Kind != "" && !enums.IsValidMessageKind(body.Kind) {
		errors = append(errors, errs.ErrInvalidMessageKind)
	}

	for _, attachment := range body.Attachments {
		if attachment.URL == "" || !enums.IsValidAttachmentKind(attachment.Kind) {
			errors = append(errors, errs.ErrInvalidAttachment)
			break
		}
	}

	return errors
}
