package stringdex

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	maxValueSize int
	maxQuerySize int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithMaxValueSize sets the maximum accepted string size in bytes.
// Default: 64KB.
func WithMaxValueSize(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxValueSize = n
	})
}

// WithMaxQuerySize sets the maximum accepted natural-language query size in bytes.
// Default: 1KB.
func WithMaxQuerySize(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxQuerySize = n
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
