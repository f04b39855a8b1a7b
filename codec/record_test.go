package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memo struct {
	to   string
	note *String
}

func (m memo) Fields() []Field {
	return []Field{
		Req("to", String(m.to)),
		Opt("note", Ptr(m.note)),
	}
}

func (m memo) MarshalHive(e *Encoder) error { return e.WriteRecord(m) }

type broken struct{}

func (broken) Fields() []Field {
	return []Field{
		Req("id", Uint16(7)),
		Req("owner", nil),
	}
}

func (b broken) MarshalHive(e *Encoder) error { return e.WriteRecord(b) }

type failing struct{}

func (failing) MarshalHive(*Encoder) error { return errors.New("boom") }

func TestWriteRecord_OptionalAbsent(t *testing.T) {
	b, err := Marshal(memo{to: "bob"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 'b', 'o', 'b', 0x00}, b)
}

func TestWriteRecord_OptionalPresent(t *testing.T) {
	note := String("hi")
	b, err := Marshal(memo{to: "bob", note: &note})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 'b', 'o', 'b', 0x01, 0x02, 'h', 'i'}, b)
}

func TestWriteRecord_MissingRequired(t *testing.T) {
	b, err := Marshal(broken{})
	require.ErrorIs(t, err, ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "owner")
	assert.Nil(t, b)
}

func TestWriteRecord_FieldErrorIsWrapped(t *testing.T) {
	r := recordFunc(func() []Field { return []Field{Req("bad", failing{})} })
	e := NewEncoder()
	err := e.WriteRecord(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field bad")
}

func TestWriteOperation_TagFirst(t *testing.T) {
	e := NewEncoder()
	require.NoError(t, e.WriteOperation(18, memo{to: "a"}))
	assert.Equal(t, []byte{0x12, 0x01, 'a', 0x00}, e.Bytes())
}

func TestWriteRecord_Nil(t *testing.T) {
	e := NewEncoder()
	assert.ErrorIs(t, e.WriteRecord(nil), ErrNilRecord)
}

func TestPtr(t *testing.T) {
	var s *String
	assert.Nil(t, Ptr(s))

	v := String("x")
	assert.NotNil(t, Ptr(&v))
}

func TestCollections(t *testing.T) {
	tests := []struct {
		name string
		in   Marshaler
		want []byte
	}{
		{"nil strings", Strings(nil), []byte{0x00}},
		{"strings", Strings{"a", "bc"}, []byte{0x02, 0x01, 'a', 0x02, 'b', 'c'}},
		{"int64s", Int64s{1}, []byte{0x01, 1, 0, 0, 0, 0, 0, 0, 0}},
		{"blob", Blob{0xde, 0xad}, []byte{0x02, 0xde, 0xad}},
		{"raw", Raw{0xde, 0xad}, []byte{0xde, 0xad}},
		{"extensions", Extensions{}, []byte{0x00}},
		{"nil list", List[String](nil), []byte{0x00}},
		{"list", List[Uint16]{1, 2}, []byte{0x02, 0x01, 0x00, 0x02, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestList_NilElement(t *testing.T) {
	_, err := Marshal(List[Marshaler]{String("a"), nil})
	assert.ErrorIs(t, err, ErrNilRecord)
}

type recordFunc func() []Field

func (f recordFunc) Fields() []Field { return f() }
