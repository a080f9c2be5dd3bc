package editor

import (
	"time"

	"github.com/thuandang/polyglot/internal/platform/sec"
)

// Editor is an authenticated account allowed to mutate content.
//
// Anonymous visitors can read localized content; every write path requires
// an editor identity with a sufficient role.
type Editor struct {
	ID           string         `json:"id"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Role         sec.EditorRole `json:"role"`
	Active       bool           `json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"-"`
}
