package pibench

import (
	"strings"
	"testing"
)

// TestConfig_Validate rejects every zero or negative parameter before any
// parallel work could start.
func TestConfig_Validate(t *testing.T) {
	valid := Config{Steps: 1000, Workers: 4, Repetitions: 1, Threshold: 100}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero steps", func(c *Config) { c.Steps = 0 }, "steps"},
		{"negative steps", func(c *Config) { c.Steps = -5 }, "steps"},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "workers"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "workers"},
		{"zero repetitions", func(c *Config) { c.Repetitions = 0 }, "repetitions"},
		{"zero threshold", func(c *Config) { c.Threshold = 0 }, "threshold"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not name the invalid field %q", err, tc.want)
			}
		})
	}
}

// TestConfig_StepSize checks the derived rectangle width.
func TestConfig_StepSize(t *testing.T) {
	cfg := Config{Steps: 4}
	if got := cfg.StepSize(); got != 0.25 {
		t.Errorf("StepSize() = %v, want 0.25", got)
	}
}

// TestDefaultConfig sanity-checks the defaults a bare CLI run would use.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Steps != DefaultSteps {
		t.Errorf("Steps = %d, want %d", cfg.Steps, DefaultSteps)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
}
