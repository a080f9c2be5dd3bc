package page

import "context"

// Filter narrows and orders page listings.
//
// Query and the title sort operate on the JSONB title column extracted at
// Locale via `->>`. The extraction participates in WHERE/ORDER BY only; the
// selected column set is fixed and never narrowed by filtering.
type Filter struct {
	// Query matches against the title translated into Locale.
	Query string
	// Status restricts to the given publication states.
	Status []string
	// Locale is the resolved locale used for translated filtering/sorting.
	Locale string
	// Sort is one of "latest", "oldest", "title".
	Sort string
}

// Repository defines the data access contract for pages.
type Repository interface {
	List(context context.Context, filter Filter, limit, offset int) ([]*Page, int, error)
	GetBySlug(context context.Context, slug string) (*Page, error)
	GetByID(context context.Context, id string) (*Page, error)
	Create(context context.Context, page *Page) error
	Update(context context.Context, page *Page) error
	Delete(context context.Context, id string) error
}
