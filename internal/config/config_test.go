package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"OPSCUT_HTTP_ADDR", "OPSCUT_SESSION_KEY", "OPSCUT_CSRF_KEY", "OPSCUT_SECURE_COOKIES",
		"OPSCUT_SCAN_CONCURRENCY", "OPSCUT_VISITOR_TTL", "OPSCUT_SWEEP_INTERVAL", "OPSCUT_CONTENT_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.ScanConcurrency != 64 {
		t.Errorf("ScanConcurrency = %d", cfg.ScanConcurrency)
	}
	if cfg.VisitorTTL != 30*time.Minute || cfg.SweepInterval != time.Minute {
		t.Errorf("TTL/sweep = %v/%v", cfg.VisitorTTL, cfg.SweepInterval)
	}
	if cfg.SecureCookies || cfg.ContentFile != "" {
		t.Errorf("unexpected cookie/content defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPSCUT_HTTP_ADDR", "127.0.0.1:9999")
	t.Setenv("OPSCUT_SECURE_COOKIES", "true")
	t.Setenv("OPSCUT_SCAN_CONCURRENCY", "3")
	t.Setenv("OPSCUT_VISITOR_TTL", "5m")
	t.Setenv("OPSCUT_SWEEP_INTERVAL", "not-a-duration")
	t.Setenv("OPSCUT_CONTENT_FILE", "/etc/opscut/content.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9999" || !cfg.SecureCookies || cfg.ScanConcurrency != 3 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.VisitorTTL != 5*time.Minute {
		t.Fatalf("VisitorTTL = %v", cfg.VisitorTTL)
	}
	if cfg.SweepInterval != time.Minute {
		t.Fatalf("invalid duration must fall back, got %v", cfg.SweepInterval)
	}
	if cfg.ContentFile != "/etc/opscut/content.yaml" {
		t.Fatalf("ContentFile = %q", cfg.ContentFile)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{
			Addr:            ":8080",
			SessionKey:      []byte(strings.Repeat("s", 32)),
			CSRFKey:         []byte(strings.Repeat("c", 32)),
			ScanConcurrency: 1,
			VisitorTTL:      time.Minute,
			SweepInterval:   time.Second,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"valid", func(*Config) {}, nil},
		{"empty addr", func(c *Config) { c.Addr = " " }, ErrEmptyAddr},
		{"short session key", func(c *Config) { c.SessionKey = []byte("short") }, ErrShortSessionKey},
		{"short csrf key", func(c *Config) { c.CSRFKey = []byte("short") }, ErrShortCSRFKey},
		{"zero concurrency", func(c *Config) { c.ScanConcurrency = 0 }, ErrInvalidConcurrency},
		{"zero ttl", func(c *Config) { c.VisitorTTL = 0 }, ErrInvalidVisitorTTL},
		{"negative sweep", func(c *Config) { c.SweepInterval = -time.Second }, ErrInvalidSweepInterval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}
