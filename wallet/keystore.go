package wallet

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// keyFileExt is the suffix of sealed account files.
const keyFileExt = ".key"

// Keystore keeps sealed accounts on the local filesystem.
// Files are stored at: {baseDir}/{username}.key as base64 of the sealed blob.
type Keystore struct {
	baseDir string
	mu      sync.RWMutex
}

// NewKeystore opens a keystore rooted at baseDir, creating it if needed.
// baseDir is typically "~/.hivekit/keystore".
func NewKeystore(baseDir string) (*Keystore, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty keystore directory", ErrIOFailure)
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return &Keystore{baseDir: baseDir}, nil
}

// Dir returns the keystore directory.
func (ks *Keystore) Dir() string { return ks.baseDir }

func (ks *Keystore) path(username string) string {
	return filepath.Join(ks.baseDir, username+keyFileExt)
}

// Save seals account under password and writes it, replacing any previous entry.
func (ks *Keystore) Save(account *Account, password string) error {
	if account == nil {
		return ErrNilParam
	}
	if err := ValidateUsername(account.Username); err != nil {
		return err
	}
	sealed, err := SealKeys(account, password)
	if err != nil {
		return err
	}
	encoded := base64.StdEncoding.EncodeToString(sealed)

	ks.mu.Lock()
	defer ks.mu.Unlock()

	// Replace atomically via a temp file.
	tmp := ks.path(account.Username) + ".tmp"
	if err := os.WriteFile(tmp, []byte(encoded), 0600); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	if err := os.Rename(tmp, ks.path(account.Username)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}

// Load reads and opens the sealed account for username.
func (ks *Keystore) Load(username, password string) (*Account, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	ks.mu.RLock()
	data, err := os.ReadFile(ks.path(username))
	ks.mu.RUnlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, username)
		}
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	sealed, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return OpenKeys(sealed, password)
}

// Delete removes the sealed account for username.
func (ks *Keystore) Delete(username string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}

	ks.mu.Lock()
	defer ks.mu.Unlock()

	if err := os.Remove(ks.path(username)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, username)
		}
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}

// List returns the stored account names in sorted order.
func (ks *Keystore) List() ([]string, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()

	entries, err := os.ReadDir(ks.baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	var names []string
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), keyFileExt)
		if !ok || entry.IsDir() || ValidateUsername(name) != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
