package strings

import (
	"context"

	"github.com/kailas-cloud/stringdex/internal/domain/predicate"
	"github.com/kailas-cloud/stringdex/internal/domain/record"
)

// Repository defines the storage contract for analyzed string records.
type Repository interface {
	Put(ctx context.Context, rec record.Record) error
	GetByHash(ctx context.Context, hash string) (record.Record, error)
	Delete(ctx context.Context, hash string) error
	List(ctx context.Context, p predicate.Predicate) ([]record.Record, error)
	Count(ctx context.Context) (int, error)
}
