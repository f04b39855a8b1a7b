package wallet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/terracoremate/hivekit/keys"
)

// Account holds the private keys of one chain account, by role.
type Account struct {
	Username string
	keys     map[KeyRole]string
}

// NewAccount returns an empty account for username.
func NewAccount(username string) (*Account, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	return &Account{Username: username, keys: make(map[KeyRole]string)}, nil
}

// ValidateUsername checks the chain's account naming rules: 3 to 16
// characters of dot-separated segments, each at least 3 long, starting with
// a letter, ending with a letter or digit, and otherwise using a-z, 0-9 or '-'.
func ValidateUsername(name string) error {
	if len(name) < 3 || len(name) > 16 {
		return fmt.Errorf("%w: %q: length must be 3 to 16", ErrInvalidUsername, name)
	}
	for _, seg := range strings.Split(name, ".") {
		if len(seg) < 3 {
			return fmt.Errorf("%w: %q: segment %q too short", ErrInvalidUsername, name, seg)
		}
		if seg[0] < 'a' || seg[0] > 'z' {
			return fmt.Errorf("%w: %q: segment must start with a letter", ErrInvalidUsername, name)
		}
		last := seg[len(seg)-1]
		if !isLower(last) && !isDigit(last) {
			return fmt.Errorf("%w: %q: segment must end with a letter or digit", ErrInvalidUsername, name)
		}
		for i := 0; i < len(seg); i++ {
			c := seg[i]
			if !isLower(c) && !isDigit(c) && c != '-' {
				return fmt.Errorf("%w: %q: invalid character %q", ErrInvalidUsername, name, c)
			}
		}
	}
	return nil
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// AccountFromPassword derives all four role keys from a master password.
func AccountFromPassword(username, password string) (*Account, error) {
	a, err := NewAccount(username)
	if err != nil {
		return nil, err
	}
	for _, r := range Roles {
		a.keys[r] = keys.DeriveSubKey(username, password, r.String())
	}
	return a, nil
}

// SetKey stores the key for role. The key may be WIF or 64 hex characters;
// it is normalized to WIF.
func (a *Account) SetKey(role KeyRole, key string) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRole, uint8(role))
	}
	raw, err := keys.DecodePrivateKey(key)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidKey, role, err)
	}
	if len(raw) != keys.PrivateKeyLen {
		return fmt.Errorf("%w: %s: %d-byte key", ErrInvalidKey, role, len(raw))
	}
	a.keys[role] = keys.EncodePrivateKey(raw)
	return nil
}

// HasKey reports whether a key is stored for role.
func (a *Account) HasKey(role KeyRole) bool {
	_, ok := a.keys[role]
	return ok
}

// Roles returns the roles that have keys, in derivation order.
func (a *Account) Roles() []KeyRole {
	var out []KeyRole
	for _, r := range Roles {
		if a.HasKey(r) {
			out = append(out, r)
		}
	}
	return out
}

// WIF returns the stored key for role in WIF.
func (a *Account) WIF(role KeyRole) (string, error) {
	wif, ok := a.keys[role]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrKeyNotFound, a.Username, role)
	}
	return wif, nil
}

// PrivateKey returns the raw 32-byte key for role.
func (a *Account) PrivateKey(role KeyRole) ([]byte, error) {
	wif, err := a.WIF(role)
	if err != nil {
		return nil, err
	}
	return keys.DecodePrivateKey(wif)
}

// PublicKey returns the encoded public key for role.
func (a *Account) PublicKey(role KeyRole) (string, error) {
	raw, err := a.PrivateKey(role)
	if err != nil {
		return "", err
	}
	return keys.PublicKeyFromPrivate(raw, keys.AddressPrefix)
}

// sealedAccount is the plaintext form of a sealed account.
type sealedAccount struct {
	Username string             `json:"username"`
	Keys     map[KeyRole]string `json:"keys"`
}

func (a *Account) sealed() sealedAccount {
	return sealedAccount{Username: a.Username, Keys: a.keys}
}

func (s sealedAccount) account() (*Account, error) {
	a, err := NewAccount(s.Username)
	if err != nil {
		return nil, err
	}
	roles := make([]KeyRole, 0, len(s.Keys))
	for r := range s.Keys {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	for _, r := range roles {
		if err := a.SetKey(r, s.Keys[r]); err != nil {
			return nil, err
		}
	}
	return a, nil
}
