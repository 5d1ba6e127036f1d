package formapi

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/requestid"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

const defaultMaxBodySize = 1 << 20

// API serves a fixed set of named forms.
type API struct {
	forms       map[string]*validator.Validator
	logger      *slog.Logger
	maxBodySize int64
}

// New returns an API for forms, keyed by form name. The map is copied.
func New(forms map[string]*validator.Validator, opts ...Option) *API {
	a := &API{
		forms:       maps.Clone(forms),
		logger:      slog.New(slog.DiscardHandler),
		maxBodySize: defaultMaxBodySize,
	}
	if a.forms == nil {
		a.forms = make(map[string]*validator.Validator)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handler returns the router.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", a.health)
	r.Get("/forms", a.listForms)
	r.Post("/forms/{form}/validate", a.validate)
	return r
}

func (a *API) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func (a *API) listForms(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, http.StatusOK, Response{Data: slices.Sorted(maps.Keys(a.forms))})
}

func (a *API) validate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "form")
	v, ok := a.forms[name]
	if !ok {
		a.fail(w, r, http.StatusNotFound, "form_not_found", ErrFormNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.maxBodySize)
	attrs, err := decodeAttrs(r, a.maxBodySize)
	if err != nil {
		if errors.Is(err, ErrUnsupportedMediaType) {
			a.fail(w, r, http.StatusUnsupportedMediaType, "unsupported_media_type", err)
			return
		}
		a.fail(w, r, http.StatusBadRequest, "invalid_body", err)
		return
	}

	errs, err := v.Validate(attrs)
	if err != nil {
		a.logger.ErrorContext(r.Context(), "form validation failed",
			logger.Form(name),
			logger.Error(err),
		)
		a.fail(w, r, http.StatusInternalServerError, "misconfigured_form", ErrMisconfiguredForm)
		return
	}

	status := http.StatusOK
	if !errs.Valid() {
		status = http.StatusUnprocessableEntity
	}
	a.logger.DebugContext(r.Context(), "form validated",
		logger.Form(name),
		slog.Bool("valid", errs.Valid()),
	)
	a.respond(w, r, status, Response{Data: Result{Valid: errs.Valid(), Errors: errs}})
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, body Response) {
	if err := writeJSON(w, status, body); err != nil {
		a.logger.WarnContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

func (a *API) fail(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	if err := writeError(w, status, code, err.Error()); err != nil {
		a.logger.WarnContext(r.Context(), "failed to write response", logger.Error(err))
	}
}
