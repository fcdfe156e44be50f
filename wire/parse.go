package wire

import (
	"math"

	"github.com/joshuapare/wirekit/internal/buf"
)

// Parse decodes a protobuf-encoded byte stream into a Message using
// DefaultLimits. No .proto definition is consulted; fields are decoded
// purely from their tag/wire-type bytes. Errors carry the byte offset of
// the offending field and never yield a partial tree.
func Parse(data []byte) (*Message, error) {
	return ParseWithLimits(data, DefaultLimits())
}

// ParseWithLimits decodes data with explicit resource bounds.
func ParseWithLimits(data []byte, lim Limits) (*Message, error) {
	p := &parser{cur: buf.NewCursor(data), limits: lim.normalized()}
	m, _, err := p.parseFields(0, 0)
	if err != nil {
		return nil, err
	}
	return m, nil
}

type parser struct {
	cur    *buf.Cursor
	limits Limits
}

// parseFields decodes fields until the buffer is exhausted or, when term is
// non-zero, until the GROUP_END tag with field number term is consumed.
// Field numbers are always positive, so term 0 safely means "top level".
// The bool result reports whether the terminator was seen; the caller that
// opened the group turns a missing terminator into ErrUnterminatedGroup.
func (p *parser) parseFields(term uint32, depth int) (*Message, bool, error) {
	if depth > p.limits.MaxDepth {
		return nil, false, errAt(p.cur.Pos(), ErrDepthExceeded)
	}

	m := New()
	for p.cur.Remaining() > 0 {
		start := p.cur.Pos()
		tag, err := p.cur.ReadVarint()
		if err != nil {
			return nil, false, errAt(start, err)
		}
		typ := WireType(tag & 0x7)
		if tag>>3 > math.MaxUint32 {
			return nil, false, errAt(start, ErrInvalidFieldNumber)
		}
		num := uint32(tag >> 3)
		if num == 0 {
			return nil, false, errAt(start, ErrInvalidFieldNumber)
		}

		switch {
		case !typ.Valid():
			// Wire types 6 and 7 are undefined. Attempt a best-effort skip;
			// there is no defined way to measure them, so this fails.
			if err := p.skipField(typ); err != nil {
				return nil, false, errAt(start, ErrUnknownWireType)
			}

		case typ == TypeEndGroup && term != 0 && num == term:
			// Terminator of the group being parsed. Consumed, never stored.
			return m, true, nil

		case typ == TypeEndGroup:
			return nil, false, errAt(start, ErrUnexpectedGroupEnd)

		case typ == TypeStartGroup:
			body, found, err := p.parseFields(num, depth+1)
			if err != nil {
				return nil, false, err
			}
			if !found {
				return nil, false, errAt(start, ErrUnterminatedGroup)
			}
			m.Append(NewGroup(num, body))

		default:
			f, err := p.readScalar(num, typ)
			if err != nil {
				return nil, false, errAt(start, err)
			}
			m.Append(f)
		}
	}
	return m, false, nil
}

// readScalar decodes the value of a non-group field.
func (p *parser) readScalar(num uint32, typ WireType) (Field, error) {
	switch typ {
	case TypeVarint:
		v, err := p.cur.ReadVarint()
		if err != nil {
			return Field{}, err
		}
		return NewVarint(num, v), nil

	case TypeFixed64:
		bits, err := p.cur.ReadU64()
		if err != nil {
			return Field{}, err
		}
		return NewFixed64(num, bits), nil

	case TypeFixed32:
		bits, err := p.cur.ReadU32()
		if err != nil {
			return Field{}, err
		}
		return NewFixed32(num, bits), nil

	case TypeBytes:
		n, err := p.cur.ReadVarint()
		if err != nil {
			return Field{}, err
		}
		if n > uint64(p.cur.Remaining()) {
			return Field{}, buf.ErrTruncated
		}
		payload, err := p.cur.ReadBytes(int(n))
		if err != nil {
			return Field{}, err
		}
		// NewBytes copies, so the tree owns its payloads independently of
		// the input buffer.
		return NewBytes(num, payload), nil

	default:
		return Field{}, ErrUnknownWireType
	}
}

// skipField consumes a field's value without storing it. Groups carry no
// length prefix, so group skips track nesting with an explicit counter
// until the matching end tag is seen. A standalone GROUP_END cannot be
// skipped.
func (p *parser) skipField(typ WireType) error {
	switch typ {
	case TypeVarint:
		_, err := p.cur.ReadVarint()
		return err

	case TypeFixed64:
		return p.cur.Skip(8)

	case TypeFixed32:
		return p.cur.Skip(4)

	case TypeBytes:
		n, err := p.cur.ReadVarint()
		if err != nil {
			return err
		}
		if n > uint64(p.cur.Remaining()) {
			return buf.ErrTruncated
		}
		return p.cur.Skip(int(n))

	case TypeStartGroup:
		for nesting := 1; nesting > 0; {
			tag, err := p.cur.ReadVarint()
			if err != nil {
				return err
			}
			switch wt := WireType(tag & 0x7); wt {
			case TypeStartGroup:
				nesting++
			case TypeEndGroup:
				nesting--
			default:
				if err := p.skipField(wt); err != nil {
					return err
				}
			}
		}
		return nil

	case TypeEndGroup:
		return ErrUnexpectedGroupEnd

	default:
		return ErrUnknownWireType
	}
}
