package wire

import "unicode/utf8"

// Message is an ordered collection of decoded fields representing one
// protobuf message, top-level or nested. Field order is preserved for
// faithful re-serialization, and repeated fields appear as repeated entries
// rather than being collapsed into arrays.
type Message struct {
	fields []Field
}

// New returns an empty Message.
func New() *Message {
	return &Message{}
}

// Len returns the number of fields.
func (m *Message) Len() int {
	return len(m.fields)
}

// Fields returns the fields in insertion order. The slice is owned by the
// Message; callers must not modify it.
func (m *Message) Fields() []Field {
	return m.fields
}

// Get returns the first field with the given number.
func (m *Message) Get(num uint32) (Field, bool) {
	for _, f := range m.fields {
		if f.num == num {
			return f, true
		}
	}
	return Field{}, false
}

// GetAll returns every field with the given number, in insertion order.
func (m *Message) GetAll(num uint32) []Field {
	var out []Field
	for _, f := range m.fields {
		if f.num == num {
			out = append(out, f)
		}
	}
	return out
}

// Append adds a field to the end of the message.
func (m *Message) Append(f Field) {
	m.fields = append(m.fields, f)
}

// PutVarint appends a varint field.
func (m *Message) PutVarint(num uint32, v uint64) {
	m.Append(NewVarint(num, v))
}

// PutFixed32 appends a fixed32 field holding the raw bit pattern bits.
func (m *Message) PutFixed32(num uint32, bits uint32) {
	m.Append(NewFixed32(num, bits))
}

// PutFixed64 appends a fixed64 field holding the raw bit pattern bits.
func (m *Message) PutFixed64(num uint32, bits uint64) {
	m.Append(NewFixed64(num, bits))
}

// PutBytes appends a length-delimited field holding a copy of data.
func (m *Message) PutBytes(num uint32, data []byte) {
	m.Append(NewBytes(num, data))
}

// PutText appends a length-delimited field holding the UTF-8 bytes of s.
func (m *Message) PutText(num uint32, s string) {
	m.Append(NewText(num, s))
}

// PutGroup appends a group field owning body.
func (m *Message) PutGroup(num uint32, body *Message) {
	m.Append(NewGroup(num, body))
}

// GetUint returns the value of the first integer-typed field (varint,
// fixed32 or fixed64) with the given number.
func (m *Message) GetUint(num uint32) (uint64, bool) {
	f, ok := m.Get(num)
	if !ok {
		return 0, false
	}
	switch f.typ {
	case TypeVarint, TypeFixed32, TypeFixed64:
		return f.uval, true
	default:
		return 0, false
	}
}

// GetBytes returns the payload of the first length-delimited field with the
// given number. For a group field it returns the group's serialized body
// (without the enclosing start/end tags).
func (m *Message) GetBytes(num uint32) ([]byte, bool) {
	f, ok := m.Get(num)
	if !ok {
		return nil, false
	}
	switch f.typ {
	case TypeBytes:
		return f.raw, true
	case TypeStartGroup:
		b, err := f.group.Marshal()
		if err != nil {
			return nil, false
		}
		return b, true
	default:
		return nil, false
	}
}

// GetText decodes the first length-delimited or group field with the given
// number as UTF-8 text; a group field decodes its serialized body, matching
// GetBytes. It fails with ErrFieldNotFound when no such field exists and
// ErrInvalidUTF8 when the payload is not valid UTF-8.
func (m *Message) GetText(num uint32) (string, error) {
	f, ok := m.Get(num)
	if !ok {
		return "", ErrFieldNotFound
	}
	if f.typ == TypeStartGroup {
		b, err := f.group.Marshal()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", ErrInvalidUTF8
		}
		return string(b), nil
	}
	return f.Text()
}

// GetMessage returns the first field with the given number interpreted as a
// nested message: a length-delimited payload is reparsed, a group field
// yields its body directly. It fails with ErrFieldNotFound when no such
// field exists.
func (m *Message) GetMessage(num uint32) (*Message, error) {
	f, ok := m.Get(num)
	if !ok {
		return nil, ErrFieldNotFound
	}
	switch f.typ {
	case TypeBytes:
		return Parse(f.raw)
	case TypeStartGroup:
		return f.group, nil
	default:
		return nil, ErrUnsupportedValue
	}
}
