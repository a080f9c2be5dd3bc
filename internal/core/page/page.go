package page

import (
	"time"

	"github.com/thuandang/polyglot/pkg/translatable"
)

// Publication states for a page.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Statuses lists the valid publication states.
var Statuses = []string{StatusDraft, StatusPublished, StatusArchived}

// Page is a content record whose textual attributes are stored per locale.
//
// Title, Summary, and Body each hold a flat locale→value map persisted as a
// single JSONB column. Non-translated metadata (slug, status, timestamps)
// lives beside them in plain columns.
type Page struct {
	ID        string             `json:"id"`
	Slug      string             `json:"slug"`
	Title     translatable.Field `json:"title"`
	Summary   translatable.Field `json:"summary"`
	Body      translatable.Field `json:"body"`
	Status    string             `json:"status"`
	CreatedBy string             `json:"created_by"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt *time.Time         `json:"-"`
}

// TranslatedFields names the page attributes that carry locale-keyed values.
// This is the single registration point consulted by the service and storage
// layers; adding a translated attribute means adding it here, to the entity,
// and to the schema definition.
var TranslatedFields = []string{"title", "summary", "body"}

// fieldByName returns a pointer to the named translated field of p.
func fieldByName(p *Page, name string) *translatable.Field {
	switch name {
	case "title":
		return &p.Title
	case "summary":
		return &p.Summary
	case "body":
		return &p.Body
	default:
		return nil
	}
}

// LocalizedPage is the read model served to anonymous clients: every
// translated attribute collapsed to a single string in the resolved locale.
type LocalizedPage struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Summary   string          `json:"summary"`
	Body      string          `json:"body"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Locale    LocaleResolution `json:"locale"`
}

// LocaleResolution reports how the translated attributes were resolved.
type LocaleResolution struct {
	Requested        string   `json:"requested"`
	Resolved         string   `json:"resolved"`
	FallbackUsed     bool     `json:"fallback_used"`
	AvailableLocales []string `json:"available_locales"`
}
