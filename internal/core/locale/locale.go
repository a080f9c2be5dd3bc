package locale

import "time"

// Locale represents a locale code that content can be translated into.
//
// Codes are opaque, case-sensitive keys ("en", "da", "pt-BR"); the service
// never normalizes them, it only validates their BCP 47 shape at the API
// boundary.
type Locale struct {
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	NativeName string    `json:"native_name"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
