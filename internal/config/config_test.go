package config

import "testing"

func validConfig() Config {
	return Config{HTTP: HTTPConfig{Port: 8080}}
}

func TestValidate_InvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d: expected error", port)
		}
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}

	expected := `logging.level must be debug, info, warn or error, got "verbose"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_ValidLogLevels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		t.Run("level="+level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logging.Level = level
			if err := cfg.Validate(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_OversizedValueLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Analyzer.MaxValueBytes = 2 << 20
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for max_value_bytes above 1MB")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("read timeout = %d, want 10", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("write timeout = %d, want 10", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("shutdown timeout = %d, want 10", cfg.HTTP.ShutdownSec)
	}
	if cfg.Analyzer.MaxValueBytes != 65536 {
		t.Errorf("max value bytes = %d, want 65536", cfg.Analyzer.MaxValueBytes)
	}
	if cfg.Analyzer.MaxQueryBytes != 1024 {
		t.Errorf("max query bytes = %d, want 1024", cfg.Analyzer.MaxQueryBytes)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("STRINGDEX_TEST_PORT", "9090")

	in := []byte("port: ${STRINGDEX_TEST_PORT}\nlevel: ${STRINGDEX_TEST_MISSING:-info}\n")
	got := string(expandEnvVars(in))

	want := "port: 9090\nlevel: info\n"
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}
