// Package config loads and saves the hivekit configuration file.
//
// The file is line-oriented "key = value" text; '#' starts a comment line
// and unknown keys are ignored so older binaries can read newer files.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/terracoremate/hivekit/tx"
)

// Config holds the user-tunable settings.
type Config struct {
	DataDir       string
	RPCURL        string
	RPCDomain     string
	Network       string
	ChainID       string
	LogLevel      string
	LogFile       string
	RetryAttempts int
	RetryDelay    time.Duration
	Expiration    time.Duration
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DataDir:       DefaultDataDir(),
		Network:       "mainnet",
		LogLevel:      "info",
		RetryAttempts: tx.DefaultMaxAttempts,
		RetryDelay:    tx.DefaultRetryDelay,
		Expiration:    tx.DefaultExpiration,
	}
}

// DefaultDataDir returns ~/.hivekit, or .hivekit in the working directory
// when the home directory is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hivekit"
	}
	return filepath.Join(home, ".hivekit")
}

// ConfigPath returns the config file location inside dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config")
}

// JournalPath returns the transaction journal database path.
func (c Config) JournalPath() string {
	return filepath.Join(c.DataDir, "journal.db")
}

// KeystoreDir returns the sealed account directory.
func (c Config) KeystoreDir() string {
	return filepath.Join(c.DataDir, "keystore")
}

// ResolveChainID returns the ChainID override if set, else the network's id.
func (c Config) ResolveChainID() (tx.ChainID, error) {
	if c.ChainID != "" {
		id, err := tx.ParseChainID(c.ChainID)
		if err != nil {
			return tx.ChainID{}, fmt.Errorf("%w: %w", ErrInvalidChainID, err)
		}
		return id, nil
	}
	id, err := tx.ChainIDForNetwork(c.Network)
	if err != nil {
		return tx.ChainID{}, fmt.Errorf("%w: %w", ErrInvalidNetwork, err)
	}
	return id, nil
}

// TxOptions maps the config onto transaction builder options.
func (c Config) TxOptions() (tx.Options, error) {
	id, err := c.ResolveChainID()
	if err != nil {
		return tx.Options{}, err
	}
	return tx.Options{
		ChainID:     id,
		MaxAttempts: c.RetryAttempts,
		RetryDelay:  c.RetryDelay,
		Expiration:  c.Expiration,
	}, nil
}

// LoadConfig reads path over DefaultConfig. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := parseKeyValue(line)
		if !ok {
			return cfg, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, lineNum, line)
		}
		if err := cfg.set(key, value); err != nil {
			return cfg, fmt.Errorf("%w: line %d: %w", ErrInvalidConfigLine, lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	return cfg, nil
}

// parseKeyValue splits on the first '='.
func parseKeyValue(line string) (string, string, bool) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}

func (c *Config) set(key, value string) error {
	switch key {
	case "datadir":
		c.DataDir = value
	case "rpcurl":
		c.RPCURL = value
	case "rpcdomain":
		c.RPCDomain = value
	case "network":
		c.Network = value
	case "chainid":
		c.ChainID = value
	case "loglevel":
		c.LogLevel = value
	case "logfile":
		c.LogFile = value
	case "retryattempts":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("retryattempts: %w", err)
		}
		c.RetryAttempts = n
	case "retrydelay":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("retrydelay: %w", err)
		}
		c.RetryDelay = d
	case "expiration":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("expiration: %w", err)
		}
		c.Expiration = d
	}
	return nil
}

// SaveConfig writes cfg to path, creating parent directories.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# hivekit configuration\n\n")
	fmt.Fprintf(&b, "datadir = %s\n", cfg.DataDir)
	fmt.Fprintf(&b, "network = %s\n", cfg.Network)
	fmt.Fprintf(&b, "rpcurl = %s\n", cfg.RPCURL)
	fmt.Fprintf(&b, "rpcdomain = %s\n", cfg.RPCDomain)
	fmt.Fprintf(&b, "chainid = %s\n", cfg.ChainID)
	fmt.Fprintf(&b, "loglevel = %s\n", cfg.LogLevel)
	fmt.Fprintf(&b, "logfile = %s\n", cfg.LogFile)
	fmt.Fprintf(&b, "retryattempts = %d\n", cfg.RetryAttempts)
	fmt.Fprintf(&b, "retrydelay = %s\n", cfg.RetryDelay)
	fmt.Fprintf(&b, "expiration = %s\n", cfg.Expiration)

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
