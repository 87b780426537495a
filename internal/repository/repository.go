package repository

import (
	"context"

	"github.com/sakif/faculty-appraisal/internal/model"
)

// UserRepository stores registered accounts.
type UserRepository interface {
	// Create inserts a new user, assigning ID and CreatedAt. Returns
	// apperror.ErrDuplicate if the email already has an account.
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// ListByRole returns all users with the given role, oldest first.
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
}

// RecordStore is the persistence contract for activity record lists.
//
// Each list is addressed by its (activityType, ownerID) pair and stored
// whole as one value under the key "<type>_<ownerID>". Load returns nil
// with no error when the key has never been saved; Save overwrites the
// entire list in one statement, so callers never observe a partial write.
type RecordStore interface {
	Load(ctx context.Context, typ model.ActivityType, ownerID string) ([]byte, error)
	Save(ctx context.Context, typ model.ActivityType, ownerID string, data []byte) error
}
