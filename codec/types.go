package codec

import (
	"fmt"
	"time"
)

// Primitive adapters. Each wraps a Go value so it can sit in a Field.

type (
	Bool    bool
	Uint8   uint8
	Int16   int16
	Uint16  uint16
	Int32   int32
	Uint32  uint32
	Int64   int64
	Uint64  uint64
	Float32 float32
	Float64 float64
	String  string
	// Raw is written as-is, without a length prefix.
	Raw []byte
	// Blob is written with a varint length prefix.
	Blob []byte
	// Strings is a varint count followed by each string.
	Strings []string
	// Int64s is a varint count followed by each int64.
	Int64s []int64
	// Extensions is the always-empty future extensions list.
	Extensions struct{}
)

func (v Bool) MarshalHive(e *Encoder) error    { e.WriteBool(bool(v)); return nil }
func (v Uint8) MarshalHive(e *Encoder) error   { e.WriteUint8(uint8(v)); return nil }
func (v Int16) MarshalHive(e *Encoder) error   { e.WriteInt16(int16(v)); return nil }
func (v Uint16) MarshalHive(e *Encoder) error  { e.WriteUint16(uint16(v)); return nil }
func (v Int32) MarshalHive(e *Encoder) error   { e.WriteInt32(int32(v)); return nil }
func (v Uint32) MarshalHive(e *Encoder) error  { e.WriteUint32(uint32(v)); return nil }
func (v Int64) MarshalHive(e *Encoder) error   { e.WriteInt64(int64(v)); return nil }
func (v Uint64) MarshalHive(e *Encoder) error  { e.WriteUint64(uint64(v)); return nil }
func (v Float32) MarshalHive(e *Encoder) error { e.WriteFloat32(float32(v)); return nil }
func (v Float64) MarshalHive(e *Encoder) error { e.WriteFloat64(float64(v)); return nil }
func (v String) MarshalHive(e *Encoder) error  { e.WriteString(string(v)); return nil }
func (v Raw) MarshalHive(e *Encoder) error     { e.WriteRaw(v); return nil }
func (v Blob) MarshalHive(e *Encoder) error    { e.WriteBlob(v); return nil }

func (v Strings) MarshalHive(e *Encoder) error {
	e.WriteVarint(uint64(len(v)))
	for _, s := range v {
		e.WriteString(s)
	}
	return nil
}

func (v Int64s) MarshalHive(e *Encoder) error {
	e.WriteVarint(uint64(len(v)))
	for _, n := range v {
		e.WriteInt64(n)
	}
	return nil
}

func (Extensions) MarshalHive(e *Encoder) error {
	e.WriteVarint(0)
	return nil
}

// Time is written as uint32 seconds since the Unix epoch.
type Time time.Time

func (v Time) MarshalHive(e *Encoder) error { return e.WriteTime(time.Time(v)) }

// List is a varint count followed by each element. A nil List encodes as
// an empty one.
type List[T Marshaler] []T

func (l List[T]) MarshalHive(e *Encoder) error {
	e.WriteVarint(uint64(len(l)))
	for i, v := range l {
		if any(v) == nil {
			return fmt.Errorf("%w: element %d", ErrNilRecord, i)
		}
		if err := v.MarshalHive(e); err != nil {
			return err
		}
	}
	return nil
}
