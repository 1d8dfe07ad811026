package stringdex

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}
	opts := []Option{
		WithMaxValueSize(128),
		WithMaxQuerySize(64),
		WithLogger(slog.Default()),
		WithPrometheus(prometheus.NewRegistry()),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.maxValueSize != 128 {
		t.Errorf("maxValueSize = %d, want 128", cfg.maxValueSize)
	}
	if cfg.maxQuerySize != 64 {
		t.Errorf("maxQuerySize = %d, want 64", cfg.maxQuerySize)
	}
	if cfg.logger == nil {
		t.Error("logger not set")
	}
	if cfg.metricsReg == nil {
		t.Error("metrics registerer not set")
	}
}

func TestWithPrometheus_RecordsOperations(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(WithPrometheus(reg))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()
	if _, err := c.Strings().Analyze(ctx, "observed"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if _, err := c.Strings().Get(ctx, "missing"); err == nil {
		t.Fatal("expected not-found error")
	}

	okVal := testutil.ToFloat64(c.obs.metrics.operations.WithLabelValues("analyze", "ok"))
	if okVal != 1 {
		t.Errorf("analyze ok counter = %f, want 1", okVal)
	}
	errVal := testutil.ToFloat64(c.obs.metrics.operations.WithLabelValues("get", "error"))
	if errVal != 1 {
		t.Errorf("get error counter = %f, want 1", errVal)
	}

	if n := testutil.CollectAndCount(c.obs.metrics.duration); n == 0 {
		t.Error("expected duration observations")
	}
}

func TestWithPrometheus_SharedRegistryReused(t *testing.T) {
	reg := prometheus.NewRegistry()

	if _, err := New(WithPrometheus(reg)); err != nil {
		t.Fatalf("first client: %v", err)
	}
	// Second client on the same registry must reuse the collectors.
	if _, err := New(WithPrometheus(reg)); err != nil {
		t.Fatalf("second client: %v", err)
	}
}

func TestRegisterOrReuse_ConflictingDescriptor(t *testing.T) {
	reg := prometheus.NewRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "stringdex",
		Subsystem: "sdk",
		Name:      "operations_total",
		Help:      "Total client operations by type and status.",
	})
	if err := reg.Register(gauge); err != nil {
		t.Fatalf("register gauge: %v", err)
	}

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stringdex",
		Subsystem: "sdk",
		Name:      "operations_total",
		Help:      "Total client operations by type and status.",
	}, []string{"operation", "status"})
	if err := registerOrReuse(reg, &counter); err == nil {
		t.Error("expected error for conflicting collector")
	}
}

func TestWithLogger_LogsOperations(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := New(WithLogger(logger))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.Strings().Analyze(context.Background(), "logged"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !strings.Contains(buf.String(), "operation completed") {
		t.Errorf("expected success log, got %q", buf.String())
	}

	buf.Reset()
	if _, err := c.Strings().Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if !strings.Contains(buf.String(), "operation failed") {
		t.Errorf("expected failure log, got %q", buf.String())
	}
}

func TestObserver_NilObserverIsSafe(t *testing.T) {
	var o *observer
	o.observe("noop", time.Now(), nil)
}
