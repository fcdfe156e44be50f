package wire

import "unicode/utf8"

// Field is one decoded field: a positive field number, a wire type, and the
// value representation that wire type dictates. Fields are constructed
// through the New* functions so that a value can never disagree with its
// wire type (a varint field cannot hold a nested tree, and so on).
type Field struct {
	num uint32
	typ WireType

	// Exactly one of the following carries the value, selected by typ:
	// uval for TypeVarint (unsigned integer) and TypeFixed64/TypeFixed32
	// (raw bit patterns), raw for TypeBytes, group for TypeStartGroup.
	uval  uint64
	raw   []byte
	group *Message
}

// NewVarint returns a varint field holding the unsigned value v.
func NewVarint(num uint32, v uint64) Field {
	return Field{num: num, typ: TypeVarint, uval: v}
}

// NewFixed64 returns a fixed64 field holding the raw 64-bit pattern bits.
func NewFixed64(num uint32, bits uint64) Field {
	return Field{num: num, typ: TypeFixed64, uval: bits}
}

// NewFixed32 returns a fixed32 field holding the raw 32-bit pattern bits.
func NewFixed32(num uint32, bits uint32) Field {
	return Field{num: num, typ: TypeFixed32, uval: uint64(bits)}
}

// NewBytes returns a length-delimited field holding a copy of data.
func NewBytes(num uint32, data []byte) Field {
	raw := make([]byte, len(data))
	copy(raw, data)
	return Field{num: num, typ: TypeBytes, raw: raw}
}

// NewText returns a length-delimited field holding the UTF-8 bytes of s.
func NewText(num uint32, s string) Field {
	return Field{num: num, typ: TypeBytes, raw: []byte(s)}
}

// NewGroup returns a group field owning body. A nil body is replaced with an
// empty Message. Groups are only ever produced by parsing legacy wire-type-3
// input or by explicit construction here; map import never synthesizes them.
func NewGroup(num uint32, body *Message) Field {
	if body == nil {
		body = New()
	}
	return Field{num: num, typ: TypeStartGroup, group: body}
}

// Num returns the field number.
func (f Field) Num() uint32 {
	return f.num
}

// Type returns the wire type.
func (f Field) Type() WireType {
	return f.typ
}

// Uint returns the unsigned integer value of a varint field or the raw bit
// pattern of a fixed64/fixed32 field. It is zero for other wire types.
func (f Field) Uint() uint64 {
	return f.uval
}

// Uint32 returns the raw 32-bit pattern of a fixed32 field.
func (f Field) Uint32() uint32 {
	return uint32(f.uval)
}

// Bytes returns the payload of a length-delimited field, or nil for other
// wire types. The slice is owned by the field; callers must not modify it.
func (f Field) Bytes() []byte {
	return f.raw
}

// Group returns the nested Message of a group field, or nil for other wire
// types. The Message is exclusively owned by the field.
func (f Field) Group() *Message {
	return f.group
}

// Text decodes the payload of a length-delimited field as UTF-8 text.
// It fails with ErrInvalidUTF8 when the payload is not valid UTF-8 and with
// ErrUnsupportedValue when the field is not length-delimited.
func (f Field) Text() (string, error) {
	if f.typ != TypeBytes {
		return "", ErrUnsupportedValue
	}
	if !utf8.Valid(f.raw) {
		return "", ErrInvalidUTF8
	}
	return string(f.raw), nil
}
