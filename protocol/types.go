package protocol

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/terracoremate/hivekit/codec"
)

// TimeLayout is the chain's JSON timestamp format (UTC, no zone suffix).
const TimeLayout = "2006-01-02T15:04:05"

// Time is a chain timestamp with second precision.
type Time struct {
	time.Time
}

// NewTime truncates t to whole seconds in UTC.
func NewTime(t time.Time) Time {
	return Time{t.UTC().Truncate(time.Second)}
}

// ParseTime parses a chain timestamp. A trailing zone designator is accepted.
func ParseTime(s string) (Time, error) {
	t, err := time.ParseInLocation(TimeLayout, s, time.UTC)
	if err != nil {
		var err2 error
		if t, err2 = time.Parse(time.RFC3339, s); err2 != nil {
			return Time{}, fmt.Errorf("protocol: parse time %q: %w", s, err)
		}
	}
	return NewTime(t), nil
}

func (t Time) String() string { return t.UTC().Format(TimeLayout) }

func (t Time) MarshalHive(e *codec.Encoder) error { return e.WriteTime(t.Time) }

func (t Time) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Extensions is the empty future-extensions list carried by many operations.
type Extensions struct{}

func (Extensions) MarshalHive(e *codec.Encoder) error { return codec.Extensions{}.MarshalHive(e) }
func (Extensions) MarshalJSON() ([]byte, error)       { return []byte("[]"), nil }
func (*Extensions) UnmarshalJSON([]byte) error        { return nil }

// orEmpty returns s, or an empty list when s is nil, so JSON shows [].
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// HexBytes is raw data shown as hex in JSON and length-prefixed on the wire.
type HexBytes []byte

func (b HexBytes) MarshalHive(e *codec.Encoder) error { e.WriteBlob(b); return nil }
func (b HexBytes) MarshalJSON() ([]byte, error)       { return json.Marshal(hex.EncodeToString(b)) }

func (b *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// Price is an exchange rate between two assets.
type Price struct {
	Base  Asset `json:"base"`
	Quote Asset `json:"quote"`
}

func (p Price) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("base", p.Base),
		codec.Req("quote", p.Quote),
	}
}

func (p Price) MarshalHive(e *codec.Encoder) error { return e.WriteRecord(p) }

// ChainProperties are the witness-voted chain parameters of witness_update.
type ChainProperties struct {
	AccountCreationFee Asset  `json:"account_creation_fee"`
	MaximumBlockSize   uint32 `json:"maximum_block_size"`
	HBDInterestRate    uint16 `json:"hbd_interest_rate"`
}

func (c ChainProperties) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("account_creation_fee", c.AccountCreationFee),
		codec.Req("maximum_block_size", codec.Uint32(c.MaximumBlockSize)),
		codec.Req("hbd_interest_rate", codec.Uint16(c.HBDInterestRate)),
	}
}

func (c ChainProperties) MarshalHive(e *codec.Encoder) error { return e.WriteRecord(c) }

// WitnessProp is one entry of witness_set_properties. Value holds the
// property already serialized, e.g. with codec.Marshal.
type WitnessProp struct {
	Key   string
	Value []byte
}

// WitnessProps is written as a key-sorted map of string to bytes, the way
// the chain stores it.
type WitnessProps []WitnessProp

func (p WitnessProps) sorted() WitnessProps {
	out := make(WitnessProps, len(p))
	copy(out, p)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (p WitnessProps) MarshalHive(e *codec.Encoder) error {
	s := p.sorted()
	e.WriteVarint(uint64(len(s)))
	for _, wp := range s {
		e.WriteString(wp.Key)
		e.WriteBlob(wp.Value)
	}
	return nil
}

func (p WitnessProps) MarshalJSON() ([]byte, error) {
	s := p.sorted()
	pairs := make([][2]string, 0, len(s))
	for _, wp := range s {
		pairs = append(pairs, [2]string{wp.Key, hex.EncodeToString(wp.Value)})
	}
	return json.Marshal(pairs)
}

func (p *WitnessProps) UnmarshalJSON(data []byte) error {
	var pairs [][2]string
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	out := make(WitnessProps, 0, len(pairs))
	for _, kv := range pairs {
		v, err := hex.DecodeString(kv[1])
		if err != nil {
			return fmt.Errorf("witness prop %s: %w", kv[0], err)
		}
		out = append(out, WitnessProp{Key: kv[0], Value: v})
	}
	*p = out
	return nil
}
