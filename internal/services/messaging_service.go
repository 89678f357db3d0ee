package services

import (
	"log"

	"github.com/zeroonedevs/SheRisesv1/internal/enums"
	"github.com/zeroonedevs/SheRisesv1/internal/errs"
	"github.com/zeroonedevs/SheRisesv1/internal/interfaces"
	"github.com/zeroonedevs/SheRisesv1/internal/models"
	"github.com/zeroonedevs/SheRisesv1/internal/repositories"
	"github.com/zeroonedevs/SheRisesv1/internal/validators"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

type MessagingService struct {
	messagingRepo *repositories.MessagingRepository
	userDirectory interfaces.UserDirectory
	badgeCache    *UnreadCacheService
}

func NewMessagingService(
	messagingRepo *repositories.MessagingRepository,
	userDirectory interfaces.UserDirectory,
	badgeCache *UnreadCacheService,
) *MessagingService {
	return &MessagingService{
		messagingRepo: messagingRepo,
		userDirectory: userDirectory,
		badgeCache:    badgeCache,
	}
}

// SendMessage validates everything before any write. The recipient must exist
// in the user directory and the conversation id is derived, never supplied.
func (ms *MessagingService) SendMessage(senderID uint, body *models.SendMessageRequestBody) (*models.MessageResponse, []error) {
	var errorList []error

	if validationErrs := validators.ValidateSendMessage(senderID, body); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	recipient, err := ms.userDirectory.Lookup(body.RecipientID)
	if err != nil {
		if err == errs.ErrUserNotFound {
			err = errs.ErrRecipientNotFound
		}
		errorList = append(errorList, err)
		return nil, errorList
	}

	conversationID, err := models.ConversationIDFor(senderID, body.RecipientID)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	kind := body.Kind
	if kind == "" {
		kind = enums.MESSAGE_KIND_TEXT
	}

	message := &models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		RecipientID:    body.RecipientID,
		Content:        body.Content,
		Kind:           kind,
		Attachments:    body.Attachments,
	}

	saved, saveErrs := ms.messagingRepo.SaveMessage(message)
	if len(saveErrs) > 0 {
		return nil, saveErrs
	}

	ms.invalidateBadge(body.RecipientID)

	sender, lookupErr := ms.userDirectory.Lookup(senderID)
	if lookupErr != nil {
		log.Println("Sender profile lookup failed:", lookupErr)
	}
	return saved.ToMessageResponse(sender, recipient), nil
}

// GetConversationWithUser returns one page of history, oldest first, and
// marks the page's conversation read for the viewer as a side effect. The
// returned messages reflect the read state at fetch time.
func (ms *MessagingService) GetConversationWithUser(viewerID, otherID uint, page, limit int) (*models.MessageListResponse, []error) {
	var errorList []error

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	conversationID, err := models.ConversationIDFor(viewerID, otherID)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	messages, total, fetchErrs := ms.messagingRepo.GetConversationMessages(conversationID, viewerID, page, limit)
	if len(fetchErrs) > 0 {
		return nil, fetchErrs
	}

	if err := ms.messagingRepo.MarkConversationRead(conversationID, viewerID); err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}
	ms.invalidateBadge(viewerID)

	profiles, lookupErr := ms.userDirectory.LookupMany([]uint{viewerID, otherID})
	if lookupErr != nil {
		log.Println("User directory lookup failed:", lookupErr)
		profiles = map[uint]*models.UserResponse{}
	}

	// The repository pages newest first; reverse for oldest-first display.
	responses := make([]models.MessageResponse, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		message := messages[i]
		responses = append(responses, *message.ToMessageResponse(profiles[message.SenderID], profiles[message.RecipientID]))
	}

	return &models.MessageListResponse{
		Messages: responses,
		Count:    len(responses),
		Page:     page,
		Limit:    limit,
		Total:    total,
	}, nil
}

// ListConversations folds the viewer's visible messages into per-partner
// summaries. The repository hands messages newest first, so the first message
// seen for a conversation is its latest, and conversations enter the result
// already ordered by their latest message.
func (ms *MessagingService) ListConversations(viewerID uint) (*models.ConversationListResponse, []error) {
	var errorList []error

	messages, err := ms.messagingRepo.GetVisibleMessagesInvolving(viewerID)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	var order []string
	groups := make(map[string]*models.ConversationSummary)
	lastMessages := make(map[string]models.Message)
	otherParticipants := make(map[string]uint)

	for _, message := range messages {
		summary, seen := groups[message.ConversationID]
		if !seen {
			summary = &models.ConversationSummary{
				ConversationID: message.ConversationID,
			}
			groups[message.ConversationID] = summary
			order = append(order, message.ConversationID)
			lastMessages[message.ConversationID] = message

			otherID := message.SenderID
			if otherID == viewerID {
				otherID = message.RecipientID
			}
			otherParticipants[message.ConversationID] = otherID
		}
		if message.RecipientID == viewerID && !message.IsRead {
			summary.UnreadCount++
		}
	}

	lookupIDs := make([]uint, 0, len(order)+1)
	lookupIDs = append(lookupIDs, viewerID)
	for _, conversationID := range order {
		lookupIDs = append(lookupIDs, otherParticipants[conversationID])
	}
	profiles, lookupErr := ms.userDirectory.LookupMany(lookupIDs)
	if lookupErr != nil {
		// Summaries are still returned, just without display profiles.
		log.Println("User directory lookup failed:", lookupErr)
		profiles = map[uint]*models.UserResponse{}
	}

	summaries := make([]models.ConversationSummary, 0, len(order))
	for _, conversationID := range order {
		summary := groups[conversationID]
		last := lastMessages[conversationID]
		summary.LastMessage = last.ToMessageResponse(profiles[last.SenderID], profiles[last.RecipientID])
		summary.OtherParticipant = profiles[otherParticipants[conversationID]]
		summaries = append(summaries, *summary)
	}

	return &models.ConversationListResponse{
		Conversations: summaries,
		Count:         len(summaries),
	}, nil
}

func (ms *MessagingService) MarkMessageRead(messageID, viewerID uint) []error {
	message, err := ms.messagingRepo.GetMessageByID(messageID)
	if err != nil {
		return []error{err}
	}
	if message.RecipientID != viewerID {
		return []error{errs.ErrNotRecipient}
	}
	if err := ms.messagingRepo.MarkMessageRead(messageID); err != nil {
		return []error{err}
	}
	ms.invalidateBadge(viewerID)
	return nil
}

func (ms *MessagingService) DeleteMessage(messageID, viewerID uint) []error {
	message, err := ms.messagingRepo.GetMessageByID(messageID)
	if err != nil {
		return []error{err}
	}
	if !message.IsParticipant(viewerID) {
		return []error{errs.ErrNotParticipant}
	}
	bySender := message.SenderID == viewerID
	if err := ms.messagingRepo.MarkDeleted(messageID, bySender); err != nil {
		return []error{err}
	}
	if !bySender {
		// A recipient deleting an unread message shrinks their own badge.
		ms.invalidateBadge(viewerID)
	}
	return nil
}

// UnreadCount serves the notification badge through the read-through cache.
// The store stays authoritative; every mutation path invalidates the key.
func (ms *MessagingService) UnreadCount(viewerID uint) (int64, []error) {
	if ms.badgeCache != nil {
		if count, ok := ms.badgeCache.Get(viewerID); ok {
			return count, nil
		}
	}
	count, err := ms.messagingRepo.CountUnread(viewerID)
	if err != nil {
		return 0, []error{err}
	}
	if ms.badgeCache != nil {
		ms.badgeCache.Set(viewerID, count)
	}
	return count, nil
}

func (ms *MessagingService) invalidateBadge(userID uint) {
	if ms.badgeCache != nil {
		ms.badgeCache.Invalidate(userID)
	}
}
