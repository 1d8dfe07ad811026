package stringdex

import (
	"context"

	"github.com/kailas-cloud/stringdex/internal/domain/predicate"
	"github.com/kailas-cloud/stringdex/internal/domain/record"
	stringsrepo "github.com/kailas-cloud/stringdex/internal/repository/strings"
	queryuc "github.com/kailas-cloud/stringdex/internal/usecase/query"
	stringsuc "github.com/kailas-cloud/stringdex/internal/usecase/strings"
)

// Internal interfaces for test substitution.
type stringsUseCase interface {
	Create(ctx context.Context, value string) (record.Record, error)
	GetByValue(ctx context.Context, value string) (record.Record, error)
	DeleteByValue(ctx context.Context, value string) error
	List(ctx context.Context, p predicate.Predicate) ([]record.Record, error)
	Count(ctx context.Context) (int, error)
}

type queryTranslator interface {
	Translate(text string) (predicate.Predicate, error)
}

// Client is the stringdex SDK entry point. It owns an isolated in-memory index.
type Client struct {
	stringsSvc stringsUseCase
	translator queryTranslator
	obs        *observer
}

// New creates a stringdex Client with its own empty index.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	repo := stringsrepo.New()

	stringsSvc := stringsuc.New(repo)
	if cfg.maxValueSize > 0 {
		stringsSvc = stringsSvc.WithMaxValueSize(cfg.maxValueSize)
	}

	translator := queryuc.New()
	if cfg.maxQuerySize > 0 {
		translator = translator.WithMaxQuerySize(cfg.maxQuerySize)
	}

	return &Client{
		stringsSvc: stringsSvc,
		translator: translator,
		obs:        obs,
	}, nil
}

// Strings returns the string analysis service.
func (c *Client) Strings() *StringService {
	return &StringService{
		svc:        c.stringsSvc,
		translator: c.translator,
		obs:        c.obs,
	}
}
