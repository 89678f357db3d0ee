package models

import (
	"testing"

	"github.com/zeroonedevs/SheRisesv1/internal/errs"
)

func TestConversationIDFor(t *testing.T) {
	cases := []struct {
		name string
		a, b uint
		want string
	}{
		{"ordered pair", 1, 2, "1_2"},
		{"reversed pair", 2, 1, "1_2"},
		{"large ids", 1042, 7, "7_1042"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ConversationIDFor(tc.a, tc.b)
			if err != nil {
				t.Fatalf("ConversationIDFor(%d, %d) returned error: %v", tc.a, tc.b, err)
			}
			if got != tc.want {
				t.Errorf("ConversationIDFor(%d, %d) = %q, want %q", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestConversationIDForIsOrderIndependent(t *testing.T) {
	pairs := [][2]uint{{1, 2}, {3, 99}, {500, 501}, {12, 7000}}
	for _, pair := range pairs {
		forward, err := ConversationIDFor(pair[0], pair[1])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		backward, err := ConversationIDFor(pair[1], pair[0])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if forward != backward {
			t.Errorf("identity not symmetric for %v: %q vs %q", pair, forward, backward)
		}
	}
}

func TestConversationIDForRejectsSelf(t *testing.T) {
	if _, err := ConversationIDFor(5, 5); err != errs.ErrSelfMessage {
		t.Errorf("ConversationIDFor(5, 5) error = %v, want %v", err, errs.ErrSelfMessage)
	}
}

func TestMessageVisibility(t *testing.T) {
	message := Message{SenderID: 1, RecipientID: 2}

	if !message.IsVisibleTo(1) || !message.IsVisibleTo(2) {
		t.Fatal("fresh message should be visible to both parties")
	}
	if message.IsVisibleTo(3) {
		t.Error("message visible to a non-participant")
	}

	message.DeletedBySender = true
	if message.IsVisibleTo(1) {
		t.Error("message still visible to the sender after sender deletion")
	}
	if !message.IsVisibleTo(2) {
		t.Error("sender deletion hid the message from the recipient")
	}
	if message.IsDeleted() {
		t.Error("one-sided deletion reported as full deletion")
	}

	message.DeletedByRecipient = true
	if !message.IsDeleted() {
		t.Error("two-sided deletion not reported as full deletion")
	}
}
