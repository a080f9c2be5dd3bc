package page_test

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thuandang/polyglot/internal/core/page"
	"github.com/thuandang/polyglot/internal/platform/apperr"
	"github.com/thuandang/polyglot/internal/platform/dberr"
	"github.com/thuandang/polyglot/pkg/pointer"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	pages map[string]*page.Page // keyed by ID
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{pages: make(map[string]*page.Page)}
}

func (f *fakeRepository) List(_ context.Context, filter page.Filter, limit, offset int) ([]*page.Page, int, error) {
	var matched []*page.Page
	for _, p := range f.pages {
		if len(filter.Status) > 0 && !contains(filter.Status, p.Status) {
			continue
		}
		if filter.Query != "" {
			title, err := p.Title.Get(filter.Locale)
			if err != nil || !strings.Contains(strings.ToLower(title), strings.ToLower(filter.Query)) {
				continue
			}
		}
		matched = append(matched, p)
	}

	total := len(matched)
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeRepository) GetBySlug(_ context.Context, slug string) (*page.Page, error) {
	for _, p := range f.pages {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*page.Page, error) {
	p, ok := f.pages[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeRepository) Create(_ context.Context, p *page.Page) error {
	for _, existing := range f.pages {
		if existing.Slug == p.Slug {
			return apperr.Conflict("Resource already exists")
		}
	}
	copied := *p
	f.pages[p.ID] = &copied
	return nil
}

func (f *fakeRepository) Update(_ context.Context, p *page.Page) error {
	if _, ok := f.pages[p.ID]; !ok {
		return dberr.ErrNotFound
	}
	copied := *p
	f.pages[p.ID] = &copied
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.pages[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.pages, id)
	return nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func newTestService(repo page.Repository) *page.Service {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return page.NewService(repo, "en", logger)
}

// seedPage creates a page with English and Danish titles and an
// English-only body.
func seedPage(t *testing.T, service *page.Service) *page.Page {
	t.Helper()

	created, err := service.CreatePage(context.Background(), "editor-1", page.CreatePageInput{
		Title:   map[string]string{"en": "About Us", "da": "Om os"},
		Summary: map[string]string{"en": "Who we are", "da": "Hvem vi er"},
		Body:    map[string]string{"en": "Long form text"},
		Status:  page.StatusPublished,
	})
	require.NoError(t, err)
	return created
}

/*
TestCreatePage verifies identity, slug derivation, and locale-key validation.
*/
func TestCreatePage(t *testing.T) {
	t.Run("derives_slug_from_default_locale_title", func(t *testing.T) {
		service := newTestService(newFakeRepository())

		created := seedPage(t, service)
		assert.Equal(t, "about-us", created.Slug)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "editor-1", created.CreatedBy)
	})

	t.Run("requires_some_title", func(t *testing.T) {
		service := newTestService(newFakeRepository())

		_, err := service.CreatePage(context.Background(), "editor-1", page.CreatePageInput{
			Body: map[string]string{"en": "text without title"},
		})
		require.Error(t, err)
		assert.True(t, apperr.IsAppError(err))
	})

	t.Run("rejects_empty_locale_key", func(t *testing.T) {
		service := newTestService(newFakeRepository())

		_, err := service.CreatePage(context.Background(), "editor-1", page.CreatePageInput{
			Title: map[string]string{"": "Anonymous locale"},
		})
		require.Error(t, err)
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		service := newTestService(newFakeRepository())

		_, err := service.CreatePage(context.Background(), "editor-1", page.CreatePageInput{
			Title:  map[string]string{"en": "Hello"},
			Status: "launched",
		})
		require.Error(t, err)
	})
}

/*
TestGetPage_LocaleResolution verifies per-attribute fallback and the
resolution metadata on localized reads.
*/
func TestGetPage_LocaleResolution(t *testing.T) {
	service := newTestService(newFakeRepository())
	seedPage(t, service)

	t.Run("native_translation", func(t *testing.T) {
		got, err := service.GetPage(context.Background(), "about-us", "en")
		require.NoError(t, err)

		assert.Equal(t, "About Us", got.Title)
		assert.Equal(t, "en", got.Locale.Resolved)
		assert.False(t, got.Locale.FallbackUsed)
		assert.Equal(t, []string{"da", "en"}, got.Locale.AvailableLocales)
	})

	t.Run("partial_translation_falls_back_per_attribute", func(t *testing.T) {
		// Danish has title and summary but no body.
		got, err := service.GetPage(context.Background(), "about-us", "da")
		require.NoError(t, err)

		assert.Equal(t, "Om os", got.Title)
		assert.Equal(t, "Hvem vi er", got.Summary)
		assert.Equal(t, "Long form text", got.Body, "missing body falls back to default locale")
		assert.True(t, got.Locale.FallbackUsed)
		assert.Equal(t, "da", got.Locale.Requested)
	})

	t.Run("unknown_locale_serves_default", func(t *testing.T) {
		got, err := service.GetPage(context.Background(), "about-us", "ja")
		require.NoError(t, err)

		assert.Equal(t, "About Us", got.Title)
		assert.True(t, got.Locale.FallbackUsed)
		assert.Equal(t, "en", got.Locale.Resolved)
	})

	t.Run("missing_slug", func(t *testing.T) {
		_, err := service.GetPage(context.Background(), "no-such-page", "en")
		require.Error(t, err)

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 404, appErr.HTTPStatus)
	})
}

/*
TestUpsertTranslations verifies atomic merge semantics for translated
attributes.
*/
func TestUpsertTranslations(t *testing.T) {
	t.Run("merges_new_locale", func(t *testing.T) {
		service := newTestService(newFakeRepository())
		created := seedPage(t, service)

		updated, err := service.UpsertTranslations(context.Background(), created.ID, map[string]map[string]string{
			"title": {"de": "Über uns"},
			"body":  {"de": "Langer Text"},
		})
		require.NoError(t, err)

		germanTitle, err := updated.Title.Get("de")
		require.NoError(t, err)
		assert.Equal(t, "Über uns", germanTitle)

		// Existing locales survive the merge.
		englishTitle, err := updated.Title.Get("en")
		require.NoError(t, err)
		assert.Equal(t, "About Us", englishTitle)
	})

	t.Run("rejects_unknown_attribute", func(t *testing.T) {
		service := newTestService(newFakeRepository())
		created := seedPage(t, service)

		_, err := service.UpsertTranslations(context.Background(), created.ID, map[string]map[string]string{
			"subtitle": {"en": "nope"},
		})
		require.Error(t, err)
	})

	t.Run("empty_locale_leaves_page_unchanged", func(t *testing.T) {
		service := newTestService(newFakeRepository())
		created := seedPage(t, service)

		_, err := service.UpsertTranslations(context.Background(), created.ID, map[string]map[string]string{
			"title": {"": "anonymous"},
		})
		require.Error(t, err)

		unchanged, err := service.GetTranslations(context.Background(), created.Slug)
		require.NoError(t, err)
		assert.Equal(t, 2, unchanged.Title.Len())
	})
}

/*
TestUpdatePage verifies partial metadata updates.
*/
func TestUpdatePage(t *testing.T) {
	service := newTestService(newFakeRepository())
	created := seedPage(t, service)

	t.Run("archive_without_touching_slug", func(t *testing.T) {
		updated, err := service.UpdatePage(context.Background(), created.ID, page.UpdatePageInput{
			Status: pointer.To(page.StatusArchived),
		})
		require.NoError(t, err)
		assert.Equal(t, page.StatusArchived, updated.Status)
		assert.Equal(t, "about-us", updated.Slug)
	})

	t.Run("invalid_slug_rejected", func(t *testing.T) {
		_, err := service.UpdatePage(context.Background(), created.ID, page.UpdatePageInput{
			Slug: pointer.To("Not A Slug"),
		})
		require.Error(t, err)
	})
}

/*
TestRemoveTranslation verifies single-locale removal is scoped and idempotent.
*/
func TestRemoveTranslation(t *testing.T) {
	service := newTestService(newFakeRepository())
	created := seedPage(t, service)

	updated, err := service.RemoveTranslation(context.Background(), created.ID, "title", "da")
	require.NoError(t, err)

	assert.False(t, updated.Title.Has("da"))
	assert.True(t, updated.Title.Has("en"))
	assert.True(t, updated.Summary.Has("da"), "other attributes keep the locale")

	// Removing again is a no-op, not an error.
	again, err := service.RemoveTranslation(context.Background(), created.ID, "title", "da")
	require.NoError(t, err)
	assert.False(t, again.Title.Has("da"))
}

/*
TestListPages verifies localized listing with status filtering.
*/
func TestListPages(t *testing.T) {
	service := newTestService(newFakeRepository())
	seedPage(t, service)

	_, err := service.CreatePage(context.Background(), "editor-1", page.CreatePageInput{
		Title:  map[string]string{"en": "Drafted"},
		Status: page.StatusDraft,
	})
	require.NoError(t, err)

	published, total, err := service.ListPages(context.Background(), page.Filter{
		Status: []string{page.StatusPublished},
		Locale: "da",
	}, 20, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "Om os", published[0].Title)

	everything, total, err := service.ListPages(context.Background(), page.Filter{Locale: "en"}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, everything, 2)
}
