package editor

import (
	"context"
	"time"
)

// Repository defines the persistent data access contract for editor accounts.
type Repository interface {
	FindByID(context context.Context, id string) (*Editor, error)
	FindByUsername(context context.Context, username string) (*Editor, error)
	FindByEmail(context context.Context, email string) (*Editor, error)
	Create(context context.Context, editor *Editor) error
}

// RefreshTokenRepository tracks opaque refresh tokens in volatile storage.
//
// Tokens are stored hashed, keyed to the owning editor ID, and expire via
// the store's TTL mechanism rather than a cleanup job.
type RefreshTokenRepository interface {
	Set(context context.Context, tokenHash, editorID string, ttl time.Duration) error
	Get(context context.Context, tokenHash string) (string, error)
	Delete(context context.Context, tokenHash string) error
}
