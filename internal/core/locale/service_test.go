package locale_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thuandang/polyglot/internal/core/locale"
	"github.com/thuandang/polyglot/internal/platform/apperr"
	"github.com/thuandang/polyglot/internal/platform/dberr"
	"github.com/thuandang/polyglot/pkg/pointer"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	locales map[string]*locale.Locale
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{locales: make(map[string]*locale.Locale)}
}

func (f *fakeRepository) ListLocales(_ context.Context, enabledOnly bool) ([]*locale.Locale, error) {
	var out []*locale.Locale
	for _, l := range f.locales {
		if enabledOnly && !l.Enabled {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeRepository) GetLocaleByCode(_ context.Context, code string) (*locale.Locale, error) {
	l, ok := f.locales[code]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *l
	return &copied, nil
}

func (f *fakeRepository) CreateLocale(_ context.Context, l *locale.Locale) error {
	if _, exists := f.locales[l.Code]; exists {
		return apperr.Conflict("Resource already exists")
	}
	copied := *l
	f.locales[l.Code] = &copied
	return nil
}

func (f *fakeRepository) UpdateLocale(_ context.Context, l *locale.Locale) error {
	if _, exists := f.locales[l.Code]; !exists {
		return dberr.ErrNotFound
	}
	copied := *l
	f.locales[l.Code] = &copied
	return nil
}

func newTestService(repo locale.Repository) *locale.Service {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return locale.NewService(repo, logger)
}

/*
TestCreateLocale verifies registration of new locales including BCP 47
validation of the code field.
*/
func TestCreateLocale(t *testing.T) {
	t.Run("valid_locale", func(t *testing.T) {
		service := newTestService(newFakeRepository())

		created, err := service.CreateLocale(context.Background(), locale.CreateLocaleInput{
			Code:       "pt-BR",
			Name:       "Portuguese (Brazil)",
			NativeName: "Português",
		})
		require.NoError(t, err)
		assert.Equal(t, "pt-BR", created.Code)
		assert.True(t, created.Enabled)
	})

	t.Run("invalid_code_rejected", func(t *testing.T) {
		service := newTestService(newFakeRepository())

		_, err := service.CreateLocale(context.Background(), locale.CreateLocaleInput{
			Code: "not a locale",
			Name: "Broken",
		})
		require.Error(t, err)

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.HTTPStatus)
	})

	t.Run("duplicate_conflicts", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo)

		_, err := service.CreateLocale(context.Background(), locale.CreateLocaleInput{Code: "da", Name: "Danish"})
		require.NoError(t, err)

		_, err = service.CreateLocale(context.Background(), locale.CreateLocaleInput{Code: "da", Name: "Danish"})
		require.Error(t, err)

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 409, appErr.HTTPStatus)
	})
}

/*
TestUpdateLocale verifies partial updates and the disable toggle.
*/
func TestUpdateLocale(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	_, err := service.CreateLocale(context.Background(), locale.CreateLocaleInput{
		Code: "da", Name: "Danish", NativeName: "Dansk",
	})
	require.NoError(t, err)

	t.Run("disable_only", func(t *testing.T) {
		updated, err := service.UpdateLocale(context.Background(), "da", locale.UpdateLocaleInput{
			Enabled: pointer.To(false),
		})
		require.NoError(t, err)
		assert.False(t, updated.Enabled)
		assert.Equal(t, "Danish", updated.Name, "untouched fields keep their values")
	})

	t.Run("missing_locale", func(t *testing.T) {
		_, err := service.UpdateLocale(context.Background(), "zz", locale.UpdateLocaleInput{})
		require.Error(t, err)

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 404, appErr.HTTPStatus)
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		_, err := service.UpdateLocale(context.Background(), "da", locale.UpdateLocaleInput{
			Name: pointer.To(""),
		})
		require.Error(t, err)
	})
}

/*
TestListLocales verifies the enabled-only filter.
*/
func TestListLocales(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	_, err := service.CreateLocale(context.Background(), locale.CreateLocaleInput{Code: "en", Name: "English"})
	require.NoError(t, err)
	_, err = service.CreateLocale(context.Background(), locale.CreateLocaleInput{Code: "ja", Name: "Japanese"})
	require.NoError(t, err)

	_, err = service.UpdateLocale(context.Background(), "ja", locale.UpdateLocaleInput{Enabled: pointer.To(false)})
	require.NoError(t, err)

	enabledOnly, err := service.ListLocales(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, enabledOnly, 1)

	all, err := service.ListLocales(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
