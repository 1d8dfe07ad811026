// Package strings implements the in-memory string record repository.
package strings

import (
	"context"
	"fmt"
	"sync"

	"github.com/kailas-cloud/stringdex/internal/domain"
	"github.com/kailas-cloud/stringdex/internal/domain/predicate"
	"github.com/kailas-cloud/stringdex/internal/domain/record"
)

// Repo stores analyzed string records keyed by content hash.
//
// A single exclusive mutex serializes writes against reads: the working set
// is tiny and listing walks the whole map anyway, so finer-grained locking
// buys nothing. Listing order is insertion order.
type Repo struct {
	mu      sync.Mutex
	records map[string]record.Record
	order   []string // hashes in insertion order
}

// New creates an empty repository.
func New() *Repo {
	return &Repo{records: make(map[string]record.Record)}
}

// Put stores a record. Returns domain.ErrAlreadyExists if a record with the
// same content hash is already stored.
func (r *Repo) Put(_ context.Context, rec record.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[rec.Hash()]; ok {
		return fmt.Errorf("hash %s: %w", rec.Hash(), domain.ErrAlreadyExists)
	}
	r.records[rec.Hash()] = rec
	r.order = append(r.order, rec.Hash())
	return nil
}

// GetByHash retrieves a record by content hash.
func (r *Repo) GetByHash(_ context.Context, hash string) (record.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[hash]
	if !ok {
		return record.Record{}, fmt.Errorf("hash %s: %w", hash, domain.ErrNotFound)
	}
	return rec, nil
}

// Delete removes a record by content hash.
func (r *Repo) Delete(_ context.Context, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[hash]; !ok {
		return fmt.Errorf("hash %s: %w", hash, domain.ErrNotFound)
	}
	delete(r.records, hash)
	for i, h := range r.order {
		if h == hash {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns records matching every present predicate field, in insertion
// order. An empty predicate matches everything.
func (r *Repo) List(_ context.Context, p predicate.Predicate) ([]record.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]record.Record, 0, len(r.order))
	for _, h := range r.order {
		rec := r.records[h]
		if p.Matches(&rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Count returns the number of stored records.
func (r *Repo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records), nil
}

// Ping reports repository availability. The in-memory backend is always
// reachable once constructed.
func (r *Repo) Ping(_ context.Context) error {
	if r.records == nil {
		return fmt.Errorf("repository not initialized")
	}
	return nil
}
