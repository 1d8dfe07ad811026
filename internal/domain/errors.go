package domain

import "errors"

var (
	// ErrNotFound signals a missing string record.
	ErrNotFound = errors.New("string not found")
	// ErrAlreadyExists signals a duplicate string (same content hash).
	ErrAlreadyExists = errors.New("string already exists")
	// ErrInvalidInput signals a malformed or empty request value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnrecognizedQuery signals natural-language text with no interpretable clause.
	ErrUnrecognizedQuery = errors.New("unrecognized query")
)
