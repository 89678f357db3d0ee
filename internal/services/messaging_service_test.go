package services

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zeroonedevs/SheRisesv1/internal/errs"
	"github.com/zeroonedevs/SheRisesv1/internal/models"
	"github.com/zeroonedevs/SheRisesv1/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}, &models.Message{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, firstName, lastName, email string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: "hashed",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func newTestMessagingService(t *testing.T) (*MessagingService, *repositories.MessagingRepository, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	messagingRepo := repositories.NewMessagingRepository(db)
	authRepo := repositories.NewAuthenticationRepository(db)
	return NewMessagingService(messagingRepo, authRepo, nil), messagingRepo, db
}

func seedMessageAt(t *testing.T, repo *repositories.MessagingRepository, sender, recipient uint, content string, createdAt time.Time) *models.Message {
	t.Helper()
	conversationID, err := models.ConversationIDFor(sender, recipient)
	if err != nil {
		t.Fatalf("conversation id: %v", err)
	}
	message := &models.Message{
		ConversationID: conversationID,
		SenderID:       sender,
		RecipientID:    recipient,
		Content:        content,
		Kind:           "text",
		CreatedAt:      createdAt,
	}
	saved, saveErrs := repo.SaveMessage(message)
	if len(saveErrs) > 0 {
		t.Fatalf("save message: %v", saveErrs)
	}
	return saved
}

func hasError(errorList []error, target error) bool {
	for _, err := range errorList {
		if err == target {
			return true
		}
	}
	return false
}

func TestSendMessageValidation(t *testing.T) {
	service, _, db := newTestMessagingService(t)
	alice := createUser(t, db, "Alice", "Stone", "alice@example.com")
	bob := createUser(t, db, "Bob", "Reed", "bob@example.com")

	cases := []struct {
		name    string
		body    models.SendMessageRequestBody
		wantErr error
	}{
		{"empty content", models.SendMessageRequestBody{RecipientID: bob.ID, Content: "   "}, errs.ErrEmptyContent},
		{"self message", models.SendMessageRequestBody{RecipientID: alice.ID, Content: "hi"}, errs.ErrSelfMessage},
		{"bad kind", models.SendMessageRequestBody{RecipientID: bob.ID, Content: "hi", Kind: "carrier-pigeon"}, errs.ErrInvalidMessageKind},
		{"unknown recipient", models.SendMessageRequestBody{RecipientID: 9999, Content: "hi"}, errs.ErrRecipientNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, sendErrs := service.SendMessage(alice.ID, &tc.body)
			if !hasError(sendErrs, tc.wantErr) {
				t.Errorf("errors = %v, want to contain %v", sendErrs, tc.wantErr)
			}
		})
	}

	// Nothing may have been written by any rejected request.
	var count int64
	db.Model(&models.Message{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected sends left %d messages behind", count)
	}
}

func TestSendAndHistoryRoundtrip(t *testing.T) {
	service, _, db := newTestMessagingService(t)
	alice := createUser(t, db, "Alice", "Stone", "alice@example.com")
	bob := createUser(t, db, "Bob", "Reed", "bob@example.com")

	sent, sendErrs := service.SendMessage(alice.ID, &models.SendMessageRequestBody{
		RecipientID: bob.ID,
		Content:     "hi",
	})
	if len(sendErrs) > 0 {
		t.Fatalf("send: %v", sendErrs)
	}
	if sent.Kind != "text" {
		t.Errorf("kind defaulted to %q, want text", sent.Kind)
	}
	if sent.Sender == nil || sent.Sender.ID != alice.ID {
		t.Error("sender profile not populated on the send response")
	}

	history, historyErrs := service.GetConversationWithUser(bob.ID, alice.ID, 1, 50)
	if len(historyErrs) > 0 {
		t.Fatalf("history: %v", historyErrs)
	}
	if history.Count != 1 {
		t.Fatalf("history count = %d, want 1", history.Count)
	}
	got := history.Messages[0]
	if got.Content != "hi" || got.RecipientID != bob.ID {
		t.Errorf("unexpected message %+v", got)
	}
	if got.IsRead {
		t.Error("message read before anyone opened the conversation")
	}

	// Opening the conversation marks it read as a side effect.
	second, _ := service.GetConversationWithUser(bob.ID, alice.ID, 1, 50)
	if !second.Messages[0].IsRead || second.Messages[0].ReadAt == nil {
		t.Error("conversation open did not mark the message read")
	}
}

func TestHistoryIsOldestFirst(t *testing.T) {
	service, repo, db := newTestMessagingService(t)
	alice := createUser(t, db, "Alice", "Stone", "alice@example.com")
	bob := createUser(t, db, "Bob", "Reed", "bob@example.com")
	base := time.Now().Add(-time.Hour)

	seedMessageAt(t, repo, alice.ID, bob.ID, "Hello", base)
	seedMessageAt(t, repo, bob.ID, alice.ID, "Hi back", base.Add(time.Minute))

	history, historyErrs := service.GetConversationWithUser(alice.ID, bob.ID, 1, 50)
	if len(historyErrs) > 0 {
		t.Fatalf("history: %v", historyErrs)
	}
	if history.Count != 2 {
		t.Fatalf("count = %d, want 2", history.Count)
	}
	if history.Messages[0].Content != "Hello" || history.Messages[0].SenderID != alice.ID {
		t.Errorf("first message = %+v, want Hello from alice", history.Messages[0])
	}
	if history.Messages[1].Content != "Hi back" || history.Messages[1].SenderID != bob.ID {
		t.Errorf("second message = %+v, want Hi back from bob", history.Messages[1])
	}
}

func TestListConversationsOrderingAndUnreadConsistency(t *testing.T) {
	service, repo, db := newTestMessagingService(t)
	alice := createUser(t, db, "Alice", "Stone", "alice@example.com")
	bob := createUser(t, db, "Bob", "Reed", "bob@example.com")
	carol := createUser(t, db, "Carol", "Wade", "carol@example.com")
	base := time.Now().Add(-time.Hour)

	seedMessageAt(t, repo, bob.ID, alice.ID, "old from bob", base)
	seedMessageAt(t, repo, bob.ID, alice.ID, "newer from bob", base.Add(time.Minute))
	seedMessageAt(t, repo, carol.ID, alice.ID, "latest from carol", base.Add(2*time.Minute))

	listing, listErrs := service.ListConversations(alice.ID)
	if len(listErrs) > 0 {
		t.Fatalf("list: %v", listErrs)
	}
	if listing.Count != 2 {
		t.Fatalf("conversation count = %d, want 2", listing.Count)
	}

	first, second := listing.Conversations[0], listing.Conversations[1]
	if first.OtherParticipant == nil || first.OtherParticipant.ID != carol.ID {
		t.Errorf("most recent conversation should be with carol, got %+v", first.OtherParticipant)
	}
	if first.LastMessage.Content != "latest from carol" {
		t.Errorf("last message = %q", first.LastMessage.Content)
	}
	if second.OtherParticipant == nil || second.OtherParticipant.ID != bob.ID {
		t.Errorf("second conversation should be with bob")
	}
	if second.LastMessage.Content != "newer from bob" {
		t.Errorf("bob conversation last message = %q", second.LastMessage.Content)
	}
	if first.UnreadCount != 1 || second.UnreadCount != 2 {
		t.Errorf("unread counts = %d/%d, want 1/2", first.UnreadCount, second.UnreadCount)
	}

	// The badge must agree with the per-conversation sum.
	badge, badgeErrs := service.UnreadCount(alice.ID)
	if len(badgeErrs) > 0 {
		t.Fatalf("badge: %v", badgeErrs)
	}
	sum := int64(first.UnreadCount + second.UnreadCount)
	if badge != sum {
		t.Errorf("badge = %d but conversation sum = %d", badge, sum)
	}
}

func TestListConversationsKeepsSummaryOnLookupFailure(t *testing.T) {
	service, repo, db := newTestMessagingService(t)
	bob := createUser(t, db, "Bob", "Reed", "bob@example.com")
	base := time.Now().Add(-time.Minute)

	// A participant with no directory entry, e.g. a deactivated account.
	seedMessageAt(t, repo, 9999, bob.ID, "ghost message", base)

	listing, listErrs := service.ListConversations(bob.ID)
	if len(listErrs) > 0 {
		t.Fatalf("list: %v", listErrs)
	}
	if listing.Count != 1 {
		t.Fatalf("summary dropped on lookup failure, count = %d", listing.Count)
	}
	if listing.Conversations[0].OtherParticipant != nil {
		t.Errorf("expected nil profile, got %+v", listing.Conversations[0].OtherParticipant)
	}
	if listing.Conversations[0].LastMessage.Content != "ghost message" {
		t.Errorf("last message = %q", listing.Conversations[0].LastMessage.Content)
	}
}

func TestMarkMessageReadAuthorization(t *testing.T) {
	service, repo, db := newTestMessagingService(t)
	alice := createUser(t, db, "Alice", "Stone", "alice@example.com")
	bob := createUser(t, db, "Bob", "Reed", "bob@example.com")

	seeded := seedMessageAt(t, repo, alice.ID, bob.ID, "hi", time.Now().Add(-time.Minute))

	if markErrs := service.MarkMessageRead(seeded.ID, alice.ID); !hasError(markErrs, errs.ErrNotRecipient) {
		t.Errorf("sender read-mark errors = %v, want %v", markErrs, errs.ErrNotRecipient)
	}
	if markErrs := service.MarkMessageRead(9999, bob.ID); !hasError(markErrs, errs.ErrMessageNotFound) {
		t.Errorf("unknown id errors = %v, want %v", markErrs, errs.ErrMessageNotFound)
	}
	if markErrs := service.MarkMessageRead(seeded.ID, bob.ID); len(markErrs) > 0 {
		t.Errorf("recipient read-mark failed: %v", markErrs)
	}
}

func TestDeleteMessageAuthorizationAndVisibility(t *testing.T) {
	service, repo, db := newTestMessagingService(t)
	alice := createUser(t, db, "Alice", "Stone", "alice@example.com")
	bob := createUser(t, db, "Bob", "Reed", "bob@example.com")
	mallory := createUser(t, db, "Mallory", "Vane", "mallory@example.com")

	seeded := seedMessageAt(t, repo, alice.ID, bob.ID, "hi", time.Now().Add(-time.Minute))

	if deleteErrs := service.DeleteMessage(seeded.ID, mallory.ID); !hasError(deleteErrs, errs.ErrNotParticipant) {
		t.Errorf("outsider delete errors = %v, want %v", deleteErrs, errs.ErrNotParticipant)
	}

	if deleteErrs := service.DeleteMessage(seeded.ID, alice.ID); len(deleteErrs) > 0 {
		t.Fatalf("sender delete: %v", deleteErrs)
	}

	aliceView, _ := service.GetConversationWithUser(alice.ID, bob.ID, 1, 50)
	if aliceView.Count != 0 {
		t.Error("deleter still sees the message")
	}
	bobView, _ := service.GetConversationWithUser(bob.ID, alice.ID, 1, 50)
	if bobView.Count != 1 {
		t.Error("other party lost the message after a one-sided delete")
	}

	if deleteErrs := service.DeleteMessage(seeded.ID, bob.ID); len(deleteErrs) > 0 {
		t.Fatalf("recipient delete: %v", deleteErrs)
	}
	bobView, _ = service.GetConversationWithUser(bob.ID, alice.ID, 1, 50)
	if bobView.Count != 0 {
		t.Error("message visible after both parties deleted it")
	}
}

func TestUnreadCountDecreasesByOneAfterRead(t *testing.T) {
	service, repo, db := newTestMessagingService(t)
	alice := createUser(t, db, "Alice", "Stone", "alice@example.com")
	bob := createUser(t, db, "Bob", "Reed", "bob@example.com")
	base := time.Now().Add(-time.Hour)

	first := seedMessageAt(t, repo, alice.ID, bob.ID, "one", base)
	seedMessageAt(t, repo, alice.ID, bob.ID, "two", base.Add(time.Minute))

	before, _ := service.UnreadCount(bob.ID)
	if before != 2 {
		t.Fatalf("initial badge = %d, want 2", before)
	}

	if markErrs := service.MarkMessageRead(first.ID, bob.ID); len(markErrs) > 0 {
		t.Fatalf("read-mark: %v", markErrs)
	}
	after, _ := service.UnreadCount(bob.ID)
	if after != before-1 {
		t.Errorf("badge after read = %d, want %d", after, before-1)
	}

	// Actions by the sender must not move the recipient's badge.
	if deleteErrs := service.DeleteMessage(first.ID, alice.ID); len(deleteErrs) > 0 {
		t.Fatalf("sender delete: %v", deleteErrs)
	}
	unchanged, _ := service.UnreadCount(bob.ID)
	if unchanged != after {
		t.Errorf("sender action moved recipient badge from %d to %d", after, unchanged)
	}
}
