// Package chi implements the HTTP transport over the go-chi router.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/stringdex/internal/domain"
	"github.com/kailas-cloud/stringdex/internal/domain/predicate"
	healthuc "github.com/kailas-cloud/stringdex/internal/usecase/health"
	queryuc "github.com/kailas-cloud/stringdex/internal/usecase/query"
	stringsuc "github.com/kailas-cloud/stringdex/internal/usecase/strings"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the string analysis API over HTTP.
type Server struct {
	strings       *stringsuc.Service
	translator    *queryuc.Translator
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	strings *stringsuc.Service,
	translator *queryuc.Translator,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		strings:    strings,
		translator: translator,
		health:     health,
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, CodeAlreadyExists),
		sentinelHandler(domain.ErrInvalidInput, http.StatusUnprocessableEntity, CodeValidationFailed),
	}
	return s
}

// Routes registers all API routes on the router.
// The static filter-by-natural-language segment takes precedence over the
// {value} parameter in chi's routing.
func (s *Server) Routes(r chi.Router) {
	r.Post("/strings", s.CreateString)
	r.Get("/strings", s.ListStrings)
	r.Get("/strings/filter-by-natural-language", s.FilterByNaturalLanguage)
	r.Get("/strings/{value}", s.GetString)
	r.Delete("/strings/{value}", s.DeleteString)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreateString handles POST /strings.
func (s *Server) CreateString(w http.ResponseWriter, r *http.Request) {
	var req CreateStringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Value == nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Missing \"value\" field")
		return
	}

	rec, err := s.strings.Create(r.Context(), *req.Value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/strings/"+url.PathEscape(rec.Value()))
	writeJSON(w, http.StatusCreated, recordToResponse(&rec))
}

// GetString handles GET /strings/{value}.
func (s *Server) GetString(w http.ResponseWriter, r *http.Request) {
	rec, err := s.strings.GetByValue(r.Context(), pathValue(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recordToResponse(&rec))
}

// DeleteString handles DELETE /strings/{value}.
func (s *Server) DeleteString(w http.ResponseWriter, r *http.Request) {
	if err := s.strings.DeleteByValue(r.Context(), pathValue(r)); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListStrings handles GET /strings with query-parameter filters.
func (s *Server) ListStrings(w http.ResponseWriter, r *http.Request) {
	p, err := predicateFromParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	recs, err := s.strings.List(r.Context(), p)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{
		Data:           recordsToResponse(recs),
		Count:          len(recs),
		FiltersApplied: p.Fields(),
	})
}

// FilterByNaturalLanguage handles GET /strings/filter-by-natural-language.
func (s *Server) FilterByNaturalLanguage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	p, err := s.translator.Translate(query)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, CodeBadRequest, safeDomainMessage(err))
		case errors.Is(err, domain.ErrUnrecognizedQuery):
			writeError(w, http.StatusUnprocessableEntity, CodeUnrecognizedQuery, safeDomainMessage(err))
		default:
			s.handleDomainError(w, err)
		}
		return
	}

	recs, err := s.strings.List(r.Context(), p)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NaturalLanguageResponse{
		Data:  recordsToResponse(recs),
		Count: len(recs),
		InterpretedQuery: InterpretedQuery{
			Original:      query,
			ParsedFilters: p.Fields(),
		},
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Records: report.Records,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// predicateFromParams builds a predicate from explicit query parameters.
func predicateFromParams(params url.Values) (predicate.Predicate, error) {
	var p predicate.Predicate

	if v := params.Get("is_palindrome"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return predicate.Predicate{}, fmt.Errorf("is_palindrome must be a boolean, got %q", v)
		}
		p.SetIsPalindrome(b)
	}
	if v := params.Get("min_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return predicate.Predicate{}, fmt.Errorf("min_length must be an integer, got %q", v)
		}
		p.SetMinLength(n)
	}
	if v := params.Get("max_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return predicate.Predicate{}, fmt.Errorf("max_length must be an integer, got %q", v)
		}
		p.SetMaxLength(n)
	}
	if v := params.Get("word_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return predicate.Predicate{}, fmt.Errorf("word_count must be an integer, got %q", v)
		}
		p.SetWordCount(n)
	}
	if v := params.Get("contains_character"); v != "" {
		if utf8.RuneCountInString(v) != 1 {
			return predicate.Predicate{}, fmt.Errorf("contains_character must be a single character, got %q", v)
		}
		c, _ := utf8.DecodeRuneInString(v)
		p.SetContainsCharacter(c)
	}

	return p, nil
}

// pathValue extracts and decodes the {value} URL parameter.
// chi routes on RawPath only when the request path carries escapes; with an
// empty RawPath the param is already decoded and must not be unescaped again.
func pathValue(r *http.Request) string {
	raw := chi.URLParam(r, "value")
	if r.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-facing message without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidInput,
		domain.ErrUnrecognizedQuery,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
