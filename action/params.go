package action

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Params is a JSON object that keeps keys in insertion order.
type Params struct {
	keys   []string
	values map[string]interface{}
}

// NewParams returns an empty Params.
func NewParams() *Params {
	return &Params{values: make(map[string]interface{})}
}

// Add sets key to value unless key is already present.
// It reports whether the value was stored.
func (p *Params) Add(key string, value interface{}) bool {
	if _, ok := p.values[key]; ok {
		return false
	}
	p.keys = append(p.keys, key)
	p.values[key] = value
	return true
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (interface{}, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string { return append([]string(nil), p.keys...) }

// Len returns the number of keys.
func (p *Params) Len() int { return len(p.keys) }

// Clone returns a shallow copy.
func (p *Params) Clone() *Params {
	out := NewParams()
	for _, k := range p.keys {
		out.Add(k, p.values[k])
	}
	return out
}

// MarshalJSON writes the object with keys in insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalRaw(k)
		if err != nil {
			return nil, err
		}
		val, err := marshalRaw(p.values[k])
		if err != nil {
			return nil, fmt.Errorf("action: encode param %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalRaw encodes v without escaping HTML characters.
func marshalRaw(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
