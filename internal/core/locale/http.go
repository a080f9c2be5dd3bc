package locale

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thuandang/polyglot/internal/platform/middleware"
	requestutil "github.com/thuandang/polyglot/internal/platform/request"
	"github.com/thuandang/polyglot/internal/platform/respond"
	"github.com/thuandang/polyglot/internal/platform/sec"
	"github.com/thuandang/polyglot/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a chi.Router with the locale reference endpoints.
// Reads are public; registration and edits require the admin role.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listLocales)
	router.Get("/{code}", handler.getLocale)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createLocale)
		admin.Patch("/{code}", handler.updateLocale)
	})

	return router
}

func (handler *Handler) listLocales(writer http.ResponseWriter, request *http.Request) {
	// ?all=true includes disabled locales, which editors need when staging
	// translations for an upcoming launch.
	enabledOnly := !convert.ToBool(request.URL.Query().Get("all"))

	locales, err := handler.service.ListLocales(request.Context(), enabledOnly)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, locales)
}

func (handler *Handler) getLocale(writer http.ResponseWriter, request *http.Request) {
	code := requestutil.Param(request, "code")

	found, err := handler.service.GetLocale(request.Context(), code)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createLocale(writer http.ResponseWriter, request *http.Request) {
	var input CreateLocaleInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateLocale(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateLocale(writer http.ResponseWriter, request *http.Request) {
	code := requestutil.Param(request, "code")

	var input UpdateLocaleInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateLocale(request.Context(), code, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}
