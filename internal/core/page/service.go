package page

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/thuandang/polyglot/internal/platform/apperr"
	"github.com/thuandang/polyglot/internal/platform/validate"
	"github.com/thuandang/polyglot/pkg/slice"
	"github.com/thuandang/polyglot/pkg/slug"
	"github.com/thuandang/polyglot/pkg/translatable"
	"github.com/thuandang/polyglot/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the business logic for localized content records.
//
// Locales arrive as explicit parameters; the service never inspects request
// state itself. The default locale is fixed at construction and acts as the
// fallback for localized reads.
type Service struct {
	repo          Repository
	defaultLocale string
	logger        *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, defaultLocale string, logger *slog.Logger) *Service {
	return &Service{
		repo:          repo,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// # Lookups

/*
ListPages retrieves a paginated, filtered collection of localized pages.

Description: Translated filtering and sorting happen at the database level
via JSONB extraction on the resolved locale; resolution of the returned
records to single-locale views happens here, so the two stay consistent.

Parameters:
  - context: context.Context
  - filter: Filter (status, translated-title search, sort)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*LocalizedPage: Matching records collapsed to filter.Locale
  - int: Total count matching the filter
  - error: Repository level errors
*/
func (service *Service) ListPages(context context.Context, filter Filter, limit, offset int) ([]*LocalizedPage, int, error) {
	if filter.Locale == "" {
		filter.Locale = service.defaultLocale
	}

	pages, total, err := service.repo.List(context, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	localized := slice.Map(pages, func(p *Page) *LocalizedPage {
		return service.localize(p, filter.Locale)
	})
	return localized, total, nil
}

/*
GetPage fetches a single page by slug, collapsed to the requested locale.

Description: Each translated attribute resolves independently: the requested
locale's value when present, otherwise the default locale's. The returned
view carries resolution metadata (requested/resolved locale, whether any
attribute fell back, and the union of locales with at least one value) so
clients can distinguish a native translation from a fallback rendering.

Parameters:
  - context: context.Context
  - slugOrID: string (URL slug)
  - locale: string (Requested locale code)

Returns:
  - *LocalizedPage: The single-locale view
  - error: ErrNotFound if no page matches
*/
func (service *Service) GetPage(context context.Context, pageSlug string, locale string) (*LocalizedPage, error) {
	if locale == "" {
		locale = service.defaultLocale
	}

	found, err := service.repo.GetBySlug(context, pageSlug)
	if err != nil {
		return nil, err
	}

	return service.localize(found, locale), nil
}

/*
GetTranslations returns the raw all-locale form of a page.

Description: Editor-facing view exposing every stored locale of every
translated attribute, used by translation tooling to show side-by-side
completeness.

Parameters:
  - context: context.Context
  - pageSlug: string

Returns:
  - *Page: The full entity with locale maps intact
  - error: ErrNotFound if no page matches
*/
func (service *Service) GetTranslations(context context.Context, pageSlug string) (*Page, error) {
	return service.repo.GetBySlug(context, pageSlug)
}

// # Management

// CreatePageInput carries the fields for creating a page. Translated
// attributes are flat locale→value maps.
type CreatePageInput struct {
	Slug    string            `json:"slug"`
	Title   map[string]string `json:"title"`
	Summary map[string]string `json:"summary"`
	Body    map[string]string `json:"body"`
	Status  string            `json:"status"`
}

/*
CreatePage initialises a new content record.

Description: Validates metadata and every supplied locale key, generates a
UUID v7 identity, and derives a slug from the default-locale title when none
is provided. A page must carry at least a title in some locale.

Parameters:
  - context: context.Context
  - editorID: string (Creator, from auth claims)
  - input: CreatePageInput

Returns:
  - *Page: The persisted entity
  - error: Validation or persistence errors
*/
func (service *Service) CreatePage(context context.Context, editorID string, input CreatePageInput) (*Page, error) {
	title, err := buildField("title", input.Title)
	if err != nil {
		return nil, err
	}
	summary, err := buildField("summary", input.Summary)
	if err != nil {
		return nil, err
	}
	body, err := buildField("body", input.Body)
	if err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = StatusDraft
	}

	validator := &validate.Validator{}
	validator.Custom("title", title.IsEmpty(), "At least one title translation is required")
	validator.OneOf("status", input.Status, Statuses...)

	// Slug derivation prefers the default locale's title, falling back to
	// whichever locale the title resolves to.
	if input.Slug == "" {
		titleValue, _, resolveErr := title.Resolve(service.defaultLocale, service.defaultLocale)
		if resolveErr == nil {
			input.Slug = slug.From(titleValue)
		}
	}
	validator.Required("slug", input.Slug).Slug("slug", input.Slug)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newPage := &Page{
		ID:        uuidv7.Must(),
		Slug:      input.Slug,
		Title:     title,
		Summary:   summary,
		Body:      body,
		Status:    input.Status,
		CreatedBy: editorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := service.repo.Create(context, newPage); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "page_created",
		slog.String("page_id", newPage.ID),
		slog.String("slug", newPage.Slug),
		slog.String("editor_id", editorID),
	)
	return newPage, nil
}

// UpdatePageInput carries the mutable metadata of a page. Nil pointers leave
// the corresponding field untouched; translated attributes are managed
// through UpsertTranslations / RemoveTranslation instead.
type UpdatePageInput struct {
	Slug   *string `json:"slug"`
	Status *string `json:"status"`
}

/*
UpdatePage applies partial metadata modifications to an existing page.
*/
func (service *Service) UpdatePage(context context.Context, id string, input UpdatePageInput) (*Page, error) {
	existing, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Slug != nil {
		validator.Required("slug", *input.Slug).Slug("slug", *input.Slug)
		existing.Slug = *input.Slug
	}
	if input.Status != nil {
		validator.OneOf("status", *input.Status, Statuses...)
		existing.Status = *input.Status
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	existing.UpdatedAt = time.Now().UTC()
	if err := service.repo.Update(context, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

/*
UpsertTranslations merges locale-keyed values into a page's translated
attributes.

Description: The input maps attribute name → (locale → value). Each
attribute's batch is applied atomically: if any locale key in the request is
invalid, nothing is written. Unknown attribute names are rejected against
the [TranslatedFields] registration list.

Parameters:
  - context: context.Context
  - id: string (Page UUID)
  - translations: map[string]map[string]string

Returns:
  - *Page: The updated entity with full locale maps
  - error: Validation or persistence errors
*/
func (service *Service) UpsertTranslations(context context.Context, id string, translations map[string]map[string]string) (*Page, error) {
	if len(translations) == 0 {
		return nil, apperr.ValidationError("No translations supplied")
	}

	existing, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	// Validate attribute names and locale keys before touching the entity,
	// so a bad request leaves the page unchanged.
	for name, values := range translations {
		if fieldByName(existing, name) == nil {
			return nil, apperr.ValidationError("Unknown translated attribute: " + name)
		}
		for localeKey := range values {
			if localeKey == "" {
				return nil, apperr.ValidationError("Locale code cannot be empty")
			}
		}
	}

	for name, values := range translations {
		field := fieldByName(existing, name)
		if err := field.SetMany(values); err != nil {
			if errors.Is(err, translatable.ErrEmptyLocale) {
				return nil, apperr.ValidationError("Locale code cannot be empty")
			}
			return nil, apperr.Internal(err)
		}
	}

	existing.UpdatedAt = time.Now().UTC()
	if err := service.repo.Update(context, existing); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "page_translations_upserted",
		slog.String("page_id", existing.ID),
		slog.Int("attributes", len(translations)),
	)
	return existing, nil
}

/*
RemoveTranslation forgets one locale's value for one translated attribute.

Description: Removing a locale that is not present is a no-op; the operation
is idempotent. The attribute name is checked against [TranslatedFields].
*/
func (service *Service) RemoveTranslation(context context.Context, id, attribute, locale string) (*Page, error) {
	validator := &validate.Validator{}
	validator.Required("locale", locale).OneOf("attribute", attribute, TranslatedFields...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	existing, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	field := fieldByName(existing, attribute)
	field.Remove(locale)

	existing.UpdatedAt = time.Now().UTC()
	if err := service.repo.Update(context, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

/*
DeletePage removes a page from discovery via soft-delete.
*/
func (service *Service) DeletePage(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}

// # Locale Resolution

// localize collapses every translated attribute of p to a single value in
// the requested locale, falling back per attribute to the default locale.
func (service *Service) localize(p *Page, requested string) *LocalizedPage {
	fallbackUsed := false

	resolveAttr := func(field translatable.Field) string {
		value, resolved, err := field.Resolve(requested, service.defaultLocale)
		if err != nil {
			// Neither requested nor default locale present: render empty
			// rather than failing the whole page.
			return ""
		}
		if resolved != requested {
			fallbackUsed = true
		}
		return value
	}

	title := resolveAttr(p.Title)
	summary := resolveAttr(p.Summary)
	bodyText := resolveAttr(p.Body)

	resolved := requested
	if fallbackUsed {
		resolved = service.defaultLocale
	}

	return &LocalizedPage{
		ID:        p.ID,
		Slug:      p.Slug,
		Title:     title,
		Summary:   summary,
		Body:      bodyText,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Locale: LocaleResolution{
			Requested:        requested,
			Resolved:         resolved,
			FallbackUsed:     fallbackUsed,
			AvailableLocales: availableLocales(p),
		},
	}
}

// availableLocales unions the locale sets of all translated attributes.
func availableLocales(p *Page) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range TranslatedFields {
		for _, code := range fieldByName(p, name).Locales() {
			if _, dup := seen[code]; !dup {
				seen[code] = struct{}{}
				out = append(out, code)
			}
		}
	}
	// Locales() is sorted per attribute but the union may interleave; a page
	// rarely has more than a handful of locales, so insertion sort suffices.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// buildField validates and assembles a translated attribute from raw input.
func buildField(name string, values map[string]string) (translatable.Field, error) {
	field, err := translatable.FromMap(values)
	if err != nil {
		if errors.Is(err, translatable.ErrEmptyLocale) {
			return translatable.New(), apperr.ValidationError("Locale code cannot be empty in " + name)
		}
		return translatable.New(), apperr.Internal(err)
	}
	return field, nil
}
