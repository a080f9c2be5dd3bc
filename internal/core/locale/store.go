package locale

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListLocales(context context.Context, enabledOnly bool) ([]*Locale, error)
	GetLocaleByCode(context context.Context, code string) (*Locale, error)
	CreateLocale(context context.Context, locale *Locale) error
	UpdateLocale(context context.Context, locale *Locale) error
}
