package stringdex

import (
	"context"
	"fmt"
	"time"
)

// StringService exposes analyzed-string operations.
type StringService struct {
	svc        stringsUseCase
	translator queryTranslator
	obs        *observer
}

// Analyze computes derived properties of a string and stores the record.
// Returns ErrAlreadyExists if the same content is already indexed.
func (s *StringService) Analyze(ctx context.Context, value string) (rec Record, err error) {
	start := time.Now()
	defer func() { s.obs.observe("analyze", start, err) }()

	domRec, err := s.svc.Create(ctx, value)
	if err != nil {
		return Record{}, fmt.Errorf("analyze: %w", err)
	}
	return recordFromDomain(&domRec), nil
}

// Get retrieves the record for a previously analyzed string.
func (s *StringService) Get(ctx context.Context, value string) (rec Record, err error) {
	start := time.Now()
	defer func() { s.obs.observe("get", start, err) }()

	domRec, err := s.svc.GetByValue(ctx, value)
	if err != nil {
		return Record{}, fmt.Errorf("get: %w", err)
	}
	return recordFromDomain(&domRec), nil
}

// Delete removes the record for a string.
func (s *StringService) Delete(ctx context.Context, value string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("delete", start, err) }()

	if err = s.svc.DeleteByValue(ctx, value); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// List returns records matching the filter, in insertion order.
// A zero Filter returns everything.
func (s *StringService) List(ctx context.Context, f Filter) (recs []Record, err error) {
	start := time.Now()
	defer func() { s.obs.observe("list", start, err) }()

	domRecs, err := s.svc.List(ctx, f.toPredicate())
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return recordsFromDomain(domRecs), nil
}

// Query translates a natural-language filter and returns matching records
// plus the parsed field-to-value view of the query.
func (s *StringService) Query(ctx context.Context, text string) (recs []Record, parsed ParsedFilters, err error) {
	start := time.Now()
	defer func() { s.obs.observe("query", start, err) }()

	p, err := s.translator.Translate(text)
	if err != nil {
		return nil, nil, fmt.Errorf("translate query: %w", err)
	}

	domRecs, err := s.svc.List(ctx, p)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	return recordsFromDomain(domRecs), ParsedFilters(p.Fields()), nil
}

// Count returns the number of indexed strings.
func (s *StringService) Count(ctx context.Context) (n int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("count", start, err) }()

	n, err = s.svc.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
