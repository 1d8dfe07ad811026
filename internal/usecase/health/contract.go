package health

import "context"

// StorePinger checks string repository availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// StoreCounter reports the number of stored records.
type StoreCounter interface {
	Count(ctx context.Context) (int, error)
}
