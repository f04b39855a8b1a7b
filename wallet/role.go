package wallet

import (
	"fmt"
	"strings"
)

// KeyRole names one of the four authorities an account holds.
type KeyRole uint8

const (
	Owner KeyRole = iota
	Active
	Posting
	Memo
)

// Roles lists every role in derivation order.
var Roles = []KeyRole{Owner, Active, Posting, Memo}

func (r KeyRole) String() string {
	switch r {
	case Owner:
		return "owner"
	case Active:
		return "active"
	case Posting:
		return "posting"
	case Memo:
		return "memo"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// Valid reports whether r is one of the four known roles.
func (r KeyRole) Valid() bool { return r <= Memo }

// ParseKeyRole maps a role name to its KeyRole, case-insensitively.
func ParseKeyRole(s string) (KeyRole, error) {
	for _, r := range Roles {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

func (r KeyRole) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRole, uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *KeyRole) UnmarshalText(text []byte) error {
	parsed, err := ParseKeyRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
