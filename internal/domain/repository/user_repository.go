package repository

import (
	"context"
	"errors"

	"github.com/healthplate/backend/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert would violate email uniqueness.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrImmutableField is returned when UpdateFields is asked to touch a
	// field that has a dedicated mutation path.
	ErrImmutableField = errors.New("field cannot be updated through this path")
)

// UserRepository defines the interface for user persistence. Identifier and
// password hash are excluded from UpdateFields; the password has its own
// operation and the id is never rewritten.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// Insert stores a new user and returns the assigned id. Email uniqueness
	// is enforced by the store (unique index), closing the check-then-insert
	// race at the source.
	Insert(ctx context.Context, u *entity.User) (string, error)
	// UpdateFields merges the given fields into the record and returns the
	// refreshed user. It fails with ErrNotFound when nothing matched and
	// nothing was modified.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*entity.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	// EnsureByEmail returns the id for email, creating a stub record when the
	// email is unknown (used by meal logging).
	EnsureByEmail(ctx context.Context, email string) (string, error)
}
