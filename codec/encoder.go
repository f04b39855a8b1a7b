// Package codec implements the canonical binary encoding used for hashing
// and signing Hive transactions.
//
// All fixed-width numbers are little-endian. Lengths and counts are written
// as LEB128 varints. Records describe their own fields in declared order
// through the Record interface; nothing is discovered by reflection.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Encoder is an append-only sink for canonical bytes.
// The zero value is ready to use.
type Encoder struct {
	buf     bytes.Buffer
	scratch [binary.MaxVarintLen64]byte
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the bytes written so far. The slice aliases the encoder's
// buffer and is only valid until the next write.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// WriteVarint writes v as an unsigned LEB128 varint:
// seven bits per byte, low groups first, high bit set while more follow.
func (e *Encoder) WriteVarint(v uint64) {
	n := binary.PutUvarint(e.scratch[:], v)
	e.buf.Write(e.scratch[:n])
}

// WriteBool writes a single 0x00 or 0x01 byte.
func (e *Encoder) WriteBool(v bool) {
	if v {
		e.buf.WriteByte(1)
		return
	}
	e.buf.WriteByte(0)
}

func (e *Encoder) WriteUint8(v uint8) { e.buf.WriteByte(v) }
func (e *Encoder) WriteInt8(v int8)   { e.buf.WriteByte(byte(v)) }

func (e *Encoder) WriteUint16(v uint16) {
	e.buf.Write(binary.LittleEndian.AppendUint16(e.scratch[:0], v))
}

func (e *Encoder) WriteInt16(v int16) { e.WriteUint16(uint16(v)) }

func (e *Encoder) WriteUint32(v uint32) {
	e.buf.Write(binary.LittleEndian.AppendUint32(e.scratch[:0], v))
}

func (e *Encoder) WriteInt32(v int32) { e.WriteUint32(uint32(v)) }

func (e *Encoder) WriteUint64(v uint64) {
	e.buf.Write(binary.LittleEndian.AppendUint64(e.scratch[:0], v))
}

func (e *Encoder) WriteInt64(v int64) { e.WriteUint64(uint64(v)) }

func (e *Encoder) WriteFloat32(v float32) { e.WriteUint32(math.Float32bits(v)) }
func (e *Encoder) WriteFloat64(v float64) { e.WriteUint64(math.Float64bits(v)) }

// WriteRaw appends b without a length prefix.
func (e *Encoder) WriteRaw(b []byte) {
	e.buf.Write(b)
}

// WriteBlob writes a varint length followed by b.
func (e *Encoder) WriteBlob(b []byte) {
	e.WriteVarint(uint64(len(b)))
	e.buf.Write(b)
}

// WriteString writes a varint byte length followed by the UTF-8 bytes.
// The empty string encodes as a single zero byte.
func (e *Encoder) WriteString(s string) {
	e.WriteVarint(uint64(len(s)))
	e.buf.WriteString(s)
}

// WriteTime writes t as uint32 seconds since the Unix epoch.
// Sub-second precision is dropped.
func (e *Encoder) WriteTime(t time.Time) error {
	sec := t.Unix()
	if sec < 0 || sec > math.MaxUint32 {
		return fmt.Errorf("%w: %s", ErrTimeOutOfRange, t.UTC().Format(time.RFC3339))
	}
	e.WriteUint32(uint32(sec))
	return nil
}

// Encode writes m using its canonical encoding.
func (e *Encoder) Encode(m Marshaler) error {
	if m == nil {
		return ErrNilRecord
	}
	return m.MarshalHive(e)
}

// Marshal returns the canonical encoding of m. On error no bytes are returned.
func Marshal(m Marshaler) ([]byte, error) {
	e := NewEncoder()
	if err := e.Encode(m); err != nil {
		return nil, err
	}
	out := make([]byte, e.Len())
	copy(out, e.Bytes())
	return out, nil
}
