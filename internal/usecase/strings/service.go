// Package strings implements analyzed-string CRUD and filtered listing.
package strings

import (
	"context"
	"fmt"
	stdstrings "strings"

	"github.com/kailas-cloud/stringdex/internal/domain"
	"github.com/kailas-cloud/stringdex/internal/domain/predicate"
	"github.com/kailas-cloud/stringdex/internal/domain/record"
)

// Service handles string analysis, storage and retrieval.
type Service struct {
	repo         Repository
	maxValueSize int
}

// New creates a strings service.
func New(repo Repository) *Service {
	return &Service{repo: repo, maxValueSize: record.MaxValueSize}
}

// WithMaxValueSize configures the maximum accepted value size in bytes.
func (s *Service) WithMaxValueSize(n int) *Service {
	if n > 0 {
		s.maxValueSize = n
	}
	return s
}

// Create analyzes a raw string and stores the resulting record.
// Returns domain.ErrInvalidInput for empty or oversized values and
// domain.ErrAlreadyExists when the content hash is already stored.
func (s *Service) Create(ctx context.Context, value string) (record.Record, error) {
	if stdstrings.TrimSpace(value) == "" {
		return record.Record{}, fmt.Errorf("value must not be empty or whitespace-only: %w", domain.ErrInvalidInput)
	}
	if len(value) > s.maxValueSize {
		return record.Record{}, fmt.Errorf("value exceeds %d bytes: %w", s.maxValueSize, domain.ErrInvalidInput)
	}

	rec, err := record.Analyze(value)
	if err != nil {
		return record.Record{}, fmt.Errorf("%s: %w", err.Error(), domain.ErrInvalidInput)
	}

	if err := s.repo.Put(ctx, rec); err != nil {
		return record.Record{}, fmt.Errorf("store record: %w", err)
	}
	return rec, nil
}

// GetByValue retrieves the record for a raw string value.
func (s *Service) GetByValue(ctx context.Context, value string) (record.Record, error) {
	rec, err := s.repo.GetByHash(ctx, record.Hash(value))
	if err != nil {
		return record.Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// DeleteByValue removes the record for a raw string value.
func (s *Service) DeleteByValue(ctx context.Context, value string) error {
	if err := s.repo.Delete(ctx, record.Hash(value)); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// List returns records matching the predicate, in insertion order.
func (s *Service) List(ctx context.Context, p predicate.Predicate) ([]record.Record, error) {
	recs, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

// Count returns the number of stored records.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}
