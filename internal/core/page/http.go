/*
Package page exposes the HTTP interface for localized content records.

# Routing Strategy

  - Public (v1): Localized reads accessible to all visitors (GET /pages).
    The locale middleware resolves the request locale; handlers pass it to
    the service explicitly.
  - Restricted (v1): Mutative endpoints and the raw all-locale view require
    the editor role; locale administration within pages requires nothing
    beyond that.
*/
package page

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thuandang/polyglot/internal/platform/middleware"
	requestutil "github.com/thuandang/polyglot/internal/platform/request"
	"github.com/thuandang/polyglot/internal/platform/respond"
	"github.com/thuandang/polyglot/internal/platform/sec"
	"github.com/thuandang/polyglot/pkg/pagination"
	"github.com/thuandang/polyglot/pkg/query"
)

// # Handler Implementation

// Handler translates web requests into page domain service calls.
type Handler struct {
	service       *Service
	defaultLocale string
}

// NewHandler constructs a new page [Handler].
func NewHandler(service *Service, defaultLocale string) *Handler {
	return &Handler{service: service, defaultLocale: defaultLocale}
}

// Routes returns a [chi.Router] configured with the page domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Localized Reads
	router.Get("/", handler.listPages)
	router.Get("/{slug}", handler.getPage)

	// ## Content Management (Editor Protected)
	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))

		editor.Get("/{slug}/translations", handler.getTranslations)
		editor.Post("/", handler.createPage)
		editor.Patch("/{id}", handler.updatePage)
		editor.Put("/{id}/translations", handler.upsertTranslations)
		editor.Delete("/{id}/translations/{attribute}/{locale}", handler.removeTranslation)
		editor.Delete("/{id}", handler.deletePage)
	})

	return router
}

// # Read Endpoints

func (handler *Handler) listPages(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := Filter{
		Query:  request.URL.Query().Get("q"),
		Status: query.StringSlice(request.URL.Query().Get("status")),
		Locale: requestutil.Locale(request, handler.defaultLocale),
		Sort:   request.URL.Query().Get("sort"),
	}

	// Anonymous listings only surface published content.
	if requestutil.Claims(request) == nil {
		filter.Status = []string{StatusPublished}
	}

	pages, total, err := handler.service.ListPages(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, pages, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getPage(writer http.ResponseWriter, request *http.Request) {
	pageSlug := requestutil.Param(request, "slug")
	locale := requestutil.Locale(request, handler.defaultLocale)

	localized, err := handler.service.GetPage(request.Context(), pageSlug, locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, localized)
}

func (handler *Handler) getTranslations(writer http.ResponseWriter, request *http.Request) {
	pageSlug := requestutil.Param(request, "slug")

	full, err := handler.service.GetTranslations(request.Context(), pageSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, full)
}

// # Management Endpoints

func (handler *Handler) createPage(writer http.ResponseWriter, request *http.Request) {
	editorID, err := requestutil.RequiredEditorID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreatePageInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreatePage(request.Context(), editorID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updatePage(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input UpdatePageInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdatePage(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) upsertTranslations(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input map[string]map[string]string
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpsertTranslations(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) removeTranslation(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")
	attribute := requestutil.Param(request, "attribute")
	locale := requestutil.Param(request, "locale")

	updated, err := handler.service.RemoveTranslation(request.Context(), id, attribute, locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deletePage(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeletePage(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
