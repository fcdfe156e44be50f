package wire

import "github.com/joshuapare/wirekit/internal/buf"

// Marshal encodes the message back to wire-format bytes. Fields are written
// in insertion order; a tree produced purely by parsing re-serializes to the
// original input byte-for-byte. Every group field emits its start tag, its
// body, and a synthesized end tag — end markers are never stored state.
func (m *Message) Marshal() ([]byte, error) {
	s := buf.NewSink()
	if err := m.encode(s); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

func (m *Message) encode(s *buf.Sink) error {
	for _, f := range m.fields {
		if f.num == 0 {
			return ErrInvalidFieldNumber
		}
		tag := uint64(f.num)<<3 | uint64(f.typ)

		switch f.typ {
		case TypeVarint:
			s.WriteVarint(tag)
			s.WriteVarint(f.uval)

		case TypeFixed64:
			s.WriteVarint(tag)
			s.WriteU64(f.uval)

		case TypeFixed32:
			s.WriteVarint(tag)
			s.WriteU32(uint32(f.uval))

		case TypeBytes:
			s.WriteVarint(tag)
			s.WriteVarint(uint64(len(f.raw)))
			s.Write(f.raw)

		case TypeStartGroup:
			s.WriteVarint(tag)
			if f.group != nil {
				if err := f.group.encode(s); err != nil {
					return err
				}
			}
			s.WriteVarint(uint64(f.num)<<3 | uint64(TypeEndGroup))

		default:
			// Field constructors cannot produce end-group or undefined wire
			// types; this guards hand-built zero values.
			return ErrUnknownWireType
		}
	}
	return nil
}
