package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/zeroonedevs/SheRisesv1/internal/errs"
	"github.com/zeroonedevs/SheRisesv1/internal/models"
	"github.com/zeroonedevs/SheRisesv1/internal/utils"
)

type MessagingRepository struct {
	db *gorm.DB
}

func NewMessagingRepository(db *gorm.DB) *MessagingRepository {
	return &MessagingRepository{
		db: db,
	}
}

// visibleTo scopes a query to messages the given user participates in and has
// not deleted on their own side. Deletion by the other party is irrelevant.
func visibleTo(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"(sender_id = ? AND deleted_by_sender = ?) OR (recipient_id = ? AND deleted_by_recipient = ?)",
			userID, false, userID, false,
		)
	}
}

func (mr *MessagingRepository) SaveMessage(message *models.Message) (*models.Message, []error) {
	var errorList []error
	if err := mr.db.Create(message).Error; err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}
	return message, nil
}

func (mr *MessagingRepository) GetMessageByID(messageID uint) (*models.Message, error) {
	var message models.Message
	result := mr.db.First(&message, messageID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrMessageNotFound
		}
		return nil, result.Error
	}
	return &message, nil
}

// GetConversationMessages returns one page of the conversation as seen by the
// viewer, newest first. Page 1 holds the most recent messages.
func (mr *MessagingRepository) GetConversationMessages(conversationID string, viewerID uint, page, limit int) ([]models.Message, int64, []error) {
	var errorList []error
	var messages []models.Message
	var total int64

	transactionErr := mr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, limit), visibleTo(viewerID)).
			Where("conversation_id = ?", conversationID).
			Order("created_at DESC, id DESC").
			Find(&messages).Error; err != nil {
			return err
		}

		if err := tx.
			Model(&models.Message{}).
			Scopes(visibleTo(viewerID)).
			Where("conversation_id = ?", conversationID).
			Count(&total).Error; err != nil {
			return err
		}

		return nil
	})
	if transactionErr != nil {
		errorList = append(errorList, transactionErr)
		return nil, 0, errorList
	}

	return messages, total, nil
}

// MarkConversationRead flips every unread message addressed to the viewer in
// a single conditional update, so concurrent retries cannot double-apply it
// or move an existing read_at.
func (mr *MessagingRepository) MarkConversationRead(conversationID string, viewerID uint) error {
	return mr.db.Model(&models.Message{}).
		Where("conversation_id = ? AND recipient_id = ? AND is_read = ? AND deleted_by_recipient = ?",
			conversationID, viewerID, false, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": time.Now()}).Error
}

// MarkMessageRead is conditional on is_read so a repeated call never changes
// the original read_at.
func (mr *MessagingRepository) MarkMessageRead(messageID uint) error {
	return mr.db.Model(&models.Message{}).
		Where("id = ? AND is_read = ?", messageID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": time.Now()}).Error
}

// MarkDeleted records one party's deletion of a message. Setting a flag that
// is already set is a no-op, which makes client retries safe.
func (mr *MessagingRepository) MarkDeleted(messageID uint, bySender bool) error {
	column := "deleted_by_recipient"
	if bySender {
		column = "deleted_by_sender"
	}
	return mr.db.Model(&models.Message{}).
		Where("id = ?", messageID).
		Update(column, true).Error
}

// CountUnread is the notification badge: messages addressed to the viewer,
// unread, and not deleted by the viewer. The viewer of an unread count is by
// definition the recipient, so only the recipient flag matters here.
func (mr *MessagingRepository) CountUnread(viewerID uint) (int64, error) {
	var count int64
	err := mr.db.Model(&models.Message{}).
		Where("recipient_id = ? AND is_read = ? AND deleted_by_recipient = ?", viewerID, false, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetVisibleMessagesInvolving returns every message the user participates in
// and can still see, newest first. Conversation grouping happens in the
// service layer, which relies on this ordering.
func (mr *MessagingRepository) GetVisibleMessagesInvolving(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := mr.db.
		Scopes(visibleTo(userID)).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
