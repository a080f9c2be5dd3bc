package locale

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/thuandang/polyglot/internal/platform/apperr"
	"github.com/thuandang/polyglot/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListLocales(context context.Context, enabledOnly bool) ([]*Locale, error) {
	return service.repo.ListLocales(context, enabledOnly)
}

func (service *Service) GetLocale(context context.Context, code string) (*Locale, error) {
	return service.repo.GetLocaleByCode(context, code)
}

// CreateLocaleInput carries the fields needed to register a new locale.
type CreateLocaleInput struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

func (service *Service) CreateLocale(context context.Context, input CreateLocaleInput) (*Locale, error) {
	input.Code = strings.TrimSpace(input.Code)

	validator := &validate.Validator{}
	validator.Required("code", input.Code).
		LocaleCode("code", input.Code).
		Required("name", input.Name).
		MaxLen("name", input.Name, 100).
		MaxLen("native_name", input.NativeName, 100)
	if validator.HasErrors() {
		return nil, validator.Err()
	}

	now := time.Now().UTC()
	newLocale := &Locale{
		Code:       input.Code,
		Name:       input.Name,
		NativeName: input.NativeName,
		Enabled:    true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := service.repo.CreateLocale(context, newLocale); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "locale_created", slog.String("code", newLocale.Code))
	return newLocale, nil
}

// UpdateLocaleInput carries the mutable fields of a locale. Nil pointers
// leave the corresponding field untouched.
type UpdateLocaleInput struct {
	Name       *string `json:"name"`
	NativeName *string `json:"native_name"`
	Enabled    *bool   `json:"enabled"`
}

func (service *Service) UpdateLocale(context context.Context, code string, input UpdateLocaleInput) (*Locale, error) {
	existing, err := service.repo.GetLocaleByCode(context, code)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperr.ValidationError("Locale name cannot be empty")
		}
		existing.Name = *input.Name
	}
	if input.NativeName != nil {
		existing.NativeName = *input.NativeName
	}
	if input.Enabled != nil {
		existing.Enabled = *input.Enabled
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := service.repo.UpdateLocale(context, existing); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "locale_updated",
		slog.String("code", existing.Code),
		slog.Bool("enabled", existing.Enabled),
	)
	return existing, nil
}
