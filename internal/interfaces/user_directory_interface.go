package interfaces

import "github.com/zeroonedevs/SheRisesv1/internal/models"

// UserDirectory resolves user ids to public display profiles. The messaging
// layer only ever consumes display data through it, never user rows.
type UserDirectory interface {
	Lookup(userID uint) (*models.UserResponse, error)
	LookupMany(userIDs []uint) (map[uint]*models.UserResponse, error)
}
