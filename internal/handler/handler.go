package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
	"github.com/BuzzLyutic/todo-api/internal/service"
	"github.com/BuzzLyutic/todo-api/pkg/respond"
)

const (
	msgInternal   = "An unexpected error occurred."
	maxBodyBytes  = 1 << 20
	msgValidation = "validation error"
)

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, &service.ValidationError{Fields: map[string]string{"id": "must be a valid integer"}}
	}
	return id, nil
}

// decodeJSON reads the request body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// queryParams parses the typed list parameters shared by both resources.
// Malformed values are collected into a single validation error.
type queryParams struct {
	values url.Values
	fields map[string]string
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query(), fields: map[string]string{}}
}

func (p *queryParams) text(key string) string {
	return p.values.Get(key)
}

func (p *queryParams) number(key string) int {
	raw := p.values.Get(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.fields[key] = "must be a valid integer"
		return 0
	}
	return n
}

func (p *queryParams) optBool(key string) *bool {
	raw := p.values.Get(key)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.fields[key] = "must be true or false"
		return nil
	}
	return &b
}

func (p *queryParams) flag(key string) bool {
	b := p.optBool(key)
	return b != nil && *b
}

func (p *queryParams) page(maxSize int) model.Page {
	return model.NewPage(p.number("pageNumber"), p.number("pageSize"), maxSize)
}

func (p *queryParams) err() error {
	if len(p.fields) == 0 {
		return nil
	}
	return &service.ValidationError{Fields: p.fields}
}

func handleErrors(w http.ResponseWriter, r *http.Request, logger *zap.Logger, notFound string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, notFound)
	case errors.As(err, &verr):
		respond.Fail(w, r, http.StatusBadRequest, msgValidation, verr.Fields)
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, msgValidation)
	case errors.Is(err, repo.ErrorConflict):
		respond.Error(w, r, http.StatusConflict, "conflict")
	default:
		logger.Error("internal error",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		respond.Error(w, r, http.StatusInternalServerError, msgInternal)
	}
}
