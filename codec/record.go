package codec

import "fmt"

// Marshaler is implemented by every value that has a canonical encoding.
type Marshaler interface {
	MarshalHive(e *Encoder) error
}

// Field is one declared field of a Record.
// A nil Value means the field is absent.
type Field struct {
	Name     string
	Optional bool
	Value    Marshaler
}

// Record is implemented by aggregate types. Fields returns the declared
// fields in wire order.
type Record interface {
	Fields() []Field
}

// Req declares a required field.
func Req(name string, v Marshaler) Field {
	return Field{Name: name, Value: v}
}

// Opt declares an optional field, written behind a one-byte presence flag.
func Opt(name string, v Marshaler) Field {
	return Field{Name: name, Optional: true, Value: v}
}

// Ptr returns p as a Marshaler, or an untyped nil when p is a nil pointer,
// so that absent pointer fields are seen as absent.
func Ptr[T any, P interface {
	*T
	Marshaler
}](p P) Marshaler {
	if p == nil {
		return nil
	}
	return p
}

// WriteRecord writes each field of r in declared order. Optional fields get
// a 0x00 (absent) or 0x01 (present) flag byte; an absent required field
// fails with ErrMissingRequiredField.
func (e *Encoder) WriteRecord(r Record) error {
	if r == nil {
		return ErrNilRecord
	}
	for _, f := range r.Fields() {
		if f.Optional {
			if f.Value == nil {
				e.WriteUint8(0)
				continue
			}
			e.WriteUint8(1)
		} else if f.Value == nil {
			return fmt.Errorf("%w: %s", ErrMissingRequiredField, f.Name)
		}
		if err := f.Value.MarshalHive(e); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	return nil
}

// WriteOperation writes tag as a varint followed by the fields of r.
func (e *Encoder) WriteOperation(tag uint64, r Record) error {
	e.WriteVarint(tag)
	return e.WriteRecord(r)
}
