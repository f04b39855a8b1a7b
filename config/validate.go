package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/terracoremate/hivekit/tx"
)

// validLogLevels lists the accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

const (
	maxRetryAttempts = 100
	maxRetryDelay    = 5 * time.Minute

	// maxExpiration is the furthest ahead the chain accepts an expiration.
	maxExpiration = time.Hour
)

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.Network != "mainnet" && cfg.Network != "testnet" {
		return ErrInvalidNetwork
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	if cfg.RPCURL != "" {
		if err := validateURL(cfg.RPCURL); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRPCURL, err)
		}
	}

	if cfg.ChainID != "" {
		if _, err := tx.ParseChainID(cfg.ChainID); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidChainID, err)
		}
	}

	if cfg.RetryAttempts < 1 || cfg.RetryAttempts > maxRetryAttempts {
		return fmt.Errorf("%w: attempts %d not in 1..%d", ErrInvalidRetry, cfg.RetryAttempts, maxRetryAttempts)
	}
	// The builder treats a zero delay as unset.
	if cfg.RetryDelay <= 0 || cfg.RetryDelay > maxRetryDelay {
		return fmt.Errorf("%w: delay %s not in (0, %s]", ErrInvalidRetry, cfg.RetryDelay, maxRetryDelay)
	}

	if cfg.Expiration <= 0 || cfg.Expiration > maxExpiration {
		return fmt.Errorf("%w: %s not in (0, %s]", ErrInvalidExpiration, cfg.Expiration, maxExpiration)
	}

	return nil
}

// validateURL accepts absolute http and https URLs.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
