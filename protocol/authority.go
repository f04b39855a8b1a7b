package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/terracoremate/hivekit/codec"
)

// AccountAuth is one weighted account entry of an Authority.
type AccountAuth struct {
	Account string
	Weight  uint16
}

// KeyAuth is one weighted key entry of an Authority.
type KeyAuth struct {
	Key    PublicKey
	Weight uint16
}

// AccountAuths keeps entries in insertion order; that order is the wire order.
type AccountAuths []AccountAuth

// KeyAuths keeps entries in insertion order; that order is the wire order.
type KeyAuths []KeyAuth

// Authority is a weighted threshold over accounts and keys.
type Authority struct {
	WeightThreshold uint32       `json:"weight_threshold"`
	AccountAuths    AccountAuths `json:"account_auths"`
	KeyAuths        KeyAuths     `json:"key_auths"`
}

// NewKeyAuthority returns a threshold-1 authority over a single key.
func NewKeyAuthority(key PublicKey) *Authority {
	return (&Authority{WeightThreshold: 1}).AddKey(key, 1)
}

// AddAccount appends an account entry, or updates the weight in place if
// the account is already present.
func (a *Authority) AddAccount(name string, weight uint16) *Authority {
	for i := range a.AccountAuths {
		if a.AccountAuths[i].Account == name {
			a.AccountAuths[i].Weight = weight
			return a
		}
	}
	a.AccountAuths = append(a.AccountAuths, AccountAuth{Account: name, Weight: weight})
	return a
}

// AddKey appends a key entry, or updates the weight in place if the key is
// already present.
func (a *Authority) AddKey(key PublicKey, weight uint16) *Authority {
	for i := range a.KeyAuths {
		if a.KeyAuths[i].Key == key {
			a.KeyAuths[i].Weight = weight
			return a
		}
	}
	a.KeyAuths = append(a.KeyAuths, KeyAuth{Key: key, Weight: weight})
	return a
}

func (a Authority) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("weight_threshold", codec.Uint32(a.WeightThreshold)),
		codec.Req("account_auths", a.AccountAuths),
		codec.Req("key_auths", a.KeyAuths),
	}
}

func (a Authority) MarshalHive(e *codec.Encoder) error { return e.WriteRecord(a) }

func (m AccountAuths) MarshalHive(e *codec.Encoder) error {
	e.WriteVarint(uint64(len(m)))
	for _, aa := range m {
		e.WriteString(aa.Account)
		e.WriteUint16(aa.Weight)
	}
	return nil
}

func (m KeyAuths) MarshalHive(e *codec.Encoder) error {
	e.WriteVarint(uint64(len(m)))
	for _, ka := range m {
		if err := ka.Key.MarshalHive(e); err != nil {
			return err
		}
		e.WriteUint16(ka.Weight)
	}
	return nil
}

// JSON form is a list of [name, weight] pairs.

func (m AccountAuths) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, 0, len(m))
	for _, aa := range m {
		pairs = append(pairs, [2]any{aa.Account, aa.Weight})
	}
	return json.Marshal(pairs)
}

func (m *AccountAuths) UnmarshalJSON(data []byte) error {
	var pairs []pair[string]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("account_auths: %w", err)
	}
	out := make(AccountAuths, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, AccountAuth{Account: p.key, Weight: p.weight})
	}
	*m = out
	return nil
}

func (m KeyAuths) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, 0, len(m))
	for _, ka := range m {
		pairs = append(pairs, [2]any{ka.Key, ka.Weight})
	}
	return json.Marshal(pairs)
}

func (m *KeyAuths) UnmarshalJSON(data []byte) error {
	var pairs []pair[PublicKey]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("key_auths: %w", err)
	}
	out := make(KeyAuths, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, KeyAuth{Key: p.key, Weight: p.weight})
	}
	*m = out
	return nil
}

type pair[K ~string] struct {
	key    K
	weight uint16
}

func (p *pair[K]) UnmarshalJSON(data []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[0], &p.key); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &p.weight)
}
