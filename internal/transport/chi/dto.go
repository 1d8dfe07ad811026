package chi

import (
	"time"

	"github.com/kailas-cloud/stringdex/internal/domain/record"
)

// ErrorCode classifies API errors in response bodies.
type ErrorCode string

const (
	// CodeBadRequest signals a malformed request shape or parameter.
	CodeBadRequest ErrorCode = "bad_request"
	// CodeValidationFailed signals a well-formed request with an unusable value.
	CodeValidationFailed ErrorCode = "validation_failed"
	// CodeUnrecognizedQuery signals natural-language text with no interpretable clause.
	CodeUnrecognizedQuery ErrorCode = "unrecognized_query"
	// CodeAlreadyExists signals a duplicate content hash on create.
	CodeAlreadyExists ErrorCode = "already_exists"
	// CodeNotFound signals a lookup or delete miss.
	CodeNotFound ErrorCode = "not_found"
	// CodeUnauthorized signals a missing or invalid API key.
	CodeUnauthorized ErrorCode = "unauthorized"
	// CodeInternalError signals an unexpected server failure.
	CodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// CreateStringRequest is the POST /strings body.
// Value is a pointer to distinguish a missing field from an empty one.
type CreateStringRequest struct {
	Value *string `json:"value"`
}

// RecordResponse is the flattened analyzed-string JSON representation.
type RecordResponse struct {
	ID                 string         `json:"id"`
	Value              string         `json:"value"`
	CreatedAt          time.Time      `json:"created_at"`
	Length             int            `json:"length"`
	WordCount          int            `json:"word_count"`
	IsPalindrome       bool           `json:"is_palindrome"`
	UniqueCharacters   int            `json:"unique_characters"`
	CharacterSet       []string       `json:"character_set"`
	CharacterFrequency map[string]int `json:"character_frequency"`
}

// ListResponse is the filtered-list envelope.
type ListResponse struct {
	Data           []RecordResponse `json:"data"`
	Count          int              `json:"count"`
	FiltersApplied map[string]any   `json:"filters_applied"`
}

// InterpretedQuery echoes how a natural-language query was understood.
type InterpretedQuery struct {
	Original      string         `json:"original"`
	ParsedFilters map[string]any `json:"parsed_filters"`
}

// NaturalLanguageResponse is the natural-language filter envelope.
type NaturalLanguageResponse struct {
	Data             []RecordResponse `json:"data"`
	Count            int              `json:"count"`
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Records int               `json:"records"`
}

func recordToResponse(rec *record.Record) RecordResponse {
	set := make([]string, len(rec.CharacterSet()))
	for i, r := range rec.CharacterSet() {
		set[i] = string(r)
	}

	freq := make(map[string]int, len(rec.CharacterFrequency()))
	for r, n := range rec.CharacterFrequency() {
		freq[string(r)] = n
	}

	return RecordResponse{
		ID:                 rec.Hash(),
		Value:              rec.Value(),
		CreatedAt:          time.UnixMilli(rec.CreatedAt()).UTC(),
		Length:             rec.Length(),
		WordCount:          rec.WordCount(),
		IsPalindrome:       rec.IsPalindrome(),
		UniqueCharacters:   rec.UniqueCharacters(),
		CharacterSet:       set,
		CharacterFrequency: freq,
	}
}

func recordsToResponse(recs []record.Record) []RecordResponse {
	items := make([]RecordResponse, len(recs))
	for i := range recs {
		items[i] = recordToResponse(&recs[i])
	}
	return items
}
