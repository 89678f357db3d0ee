package models

import (
	"fmt"

	"github.com/zeroonedevs/SheRisesv1/internal/errs"
)

// ConversationIDFor derives the canonical conversation key for two users.
// The key is order-independent: the lower user id always comes first, joined
// by an underscore, which never appears in a numeric id.
func ConversationIDFor(a, b uint) (string, error) {
	if a == b {
		return "", errs.ErrSelfMessage
	}
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b), nil
}
