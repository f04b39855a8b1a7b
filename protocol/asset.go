// Package protocol defines Hive value types and the operation catalog,
// with both their canonical binary encoding and their JSON wire form.
package protocol

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/terracoremate/hivekit/codec"
)

// Symbol is an asset symbol from the fixed allow-list.
type Symbol string

const (
	HIVE  Symbol = "HIVE"
	HBD   Symbol = "HBD"
	TESTS Symbol = "TESTS"
	TBD   Symbol = "TBD"
	VESTS Symbol = "VESTS"
)

const symbolWireLen = 7

// Valid reports whether s is in the allow-list.
func (s Symbol) Valid() bool {
	switch s {
	case HIVE, HBD, TESTS, TBD, VESTS:
		return true
	}
	return false
}

// Precision returns the number of fractional digits of s.
func (s Symbol) Precision() int32 {
	if s == VESTS {
		return 6
	}
	return 3
}

// WireName returns the symbol as written in binary form. The chain still
// serializes HIVE and HBD under their legacy names.
func (s Symbol) WireName() string {
	switch s {
	case HIVE:
		return "STEEM"
	case HBD:
		return "SBD"
	}
	return string(s)
}

// Asset is an immutable fixed-point amount of one symbol.
type Asset struct {
	amount decimal.Decimal
	symbol Symbol
}

// NewAsset returns an Asset, rejecting symbols outside the allow-list.
func NewAsset(amount decimal.Decimal, symbol Symbol) (Asset, error) {
	if !symbol.Valid() {
		return Asset{}, fmt.Errorf("%w: unknown symbol %q", ErrInvalidAsset, symbol)
	}
	return Asset{amount: amount, symbol: symbol}, nil
}

// MustAsset is like ParseAsset but panics on error. For constants and tests.
func MustAsset(text string) Asset {
	a, err := ParseAsset(text)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseAsset parses "<amount> <SYMBOL>" text, e.g. "1.000 HIVE".
func ParseAsset(text string) (Asset, error) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return Asset{}, fmt.Errorf("%w: want \"<amount> <symbol>\", got %q", ErrInvalidAsset, text)
	}
	amount, err := decimal.NewFromString(parts[0])
	if err != nil {
		return Asset{}, fmt.Errorf("%w: amount %q: %w", ErrInvalidAsset, parts[0], err)
	}
	return NewAsset(amount, Symbol(parts[1]))
}

func (a Asset) Amount() decimal.Decimal { return a.amount }
func (a Asset) Symbol() Symbol          { return a.symbol }
func (a Asset) Precision() int32        { return a.symbol.Precision() }

// String formats the amount with exactly Precision fractional digits,
// rounded half to even like Units so the text and wire forms agree.
func (a Asset) String() string {
	p := a.Precision()
	return a.amount.RoundBank(p).StringFixed(p) + " " + string(a.symbol)
}

// Equal reports whether a and b have the same symbol and numeric amount.
func (a Asset) Equal(b Asset) bool {
	return a.symbol == b.symbol && a.amount.Equal(b.amount)
}

// Units returns round(amount * 10^precision), rounding half to even.
func (a Asset) Units() (uint64, error) {
	if !a.symbol.Valid() {
		return 0, fmt.Errorf("%w: unknown symbol %q", ErrInvalidAsset, a.symbol)
	}
	units := a.amount.Shift(a.Precision()).RoundBank(0)
	if units.IsNegative() {
		return 0, fmt.Errorf("%w: negative amount %s", ErrInvalidAsset, a.amount)
	}
	n := units.BigInt()
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: amount %s overflows", ErrInvalidAsset, a.amount)
	}
	return n.Uint64(), nil
}

// MarshalHive writes the amount in base units (uint64), the precision
// byte and the 7-byte zero-padded wire symbol.
func (a Asset) MarshalHive(e *codec.Encoder) error {
	units, err := a.Units()
	if err != nil {
		return err
	}
	var sym [symbolWireLen]byte
	copy(sym[:], a.symbol.WireName())

	e.WriteUint64(units)
	e.WriteUint8(uint8(a.Precision()))
	e.WriteRaw(sym[:])
	return nil
}

func (a Asset) MarshalJSON() ([]byte, error) {
	if !a.symbol.Valid() {
		return nil, fmt.Errorf("%w: unknown symbol %q", ErrInvalidAsset, a.symbol)
	}
	return json.Marshal(a.String())
}

func (a *Asset) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAsset, err)
	}
	parsed, err := ParseAsset(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
