package config

import "errors"

var (
	ErrEmptyAddr            = errors.New("http address must not be empty")
	ErrShortSessionKey      = errors.New("session key must be at least 32 bytes")
	ErrShortCSRFKey         = errors.New("csrf key must be at least 32 bytes")
	ErrInvalidConcurrency   = errors.New("scan concurrency must be positive")
	ErrInvalidVisitorTTL    = errors.New("visitor ttl must be positive")
	ErrInvalidSweepInterval = errors.New("sweep interval must be positive")
)
