package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 汇总服务运行时所需的全部配置。
type Config struct {
	Addr            string
	SessionKey      []byte
	CSRFKey         []byte
	SecureCookies   bool
	ScanConcurrency int
	VisitorTTL      time.Duration
	SweepInterval   time.Duration
	ContentFile     string
}

// Load 从环境变量构建配置，并提供合理的默认值。
func Load() (*Config, error) {
	cfg := &Config{
		Addr:            getenv("OPSCUT_HTTP_ADDR", ":8080"),
		SessionKey:      []byte(getenv("OPSCUT_SESSION_KEY", "0123456789abcdef0123456789abcdef")),
		CSRFKey:         []byte(getenv("OPSCUT_CSRF_KEY", "abcdef0123456789abcdef0123456789")),
		SecureCookies:   boolEnv("OPSCUT_SECURE_COOKIES", false),
		ScanConcurrency: intEnv("OPSCUT_SCAN_CONCURRENCY", 64),
		VisitorTTL:      durationEnv("OPSCUT_VISITOR_TTL", 30*time.Minute),
		SweepInterval:   durationEnv("OPSCUT_SWEEP_INTERVAL", time.Minute),
		ContentFile:     getenv("OPSCUT_CONTENT_FILE", ""),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查配置是否可用，返回首个发现的问题。
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return ErrEmptyAddr
	}
	if len(c.SessionKey) < 32 {
		return fmt.Errorf("%w: got %d bytes", ErrShortSessionKey, len(c.SessionKey))
	}
	if len(c.CSRFKey) < 32 {
		return fmt.Errorf("%w: got %d bytes", ErrShortCSRFKey, len(c.CSRFKey))
	}
	if c.ScanConcurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.VisitorTTL <= 0 {
		return ErrInvalidVisitorTTL
	}
	if c.SweepInterval <= 0 {
		return ErrInvalidSweepInterval
	}
	return nil
}

func getenv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func intEnv(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func boolEnv(key string, fallback bool) bool {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}
