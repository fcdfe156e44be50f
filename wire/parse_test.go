package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/wirekit/internal/buf"
)

// tag builds the varint-encodable tag value for small field numbers.
func tag(num uint32, typ WireType) byte {
	return byte(num<<3 | uint32(typ))
}

func TestParse_Empty(t *testing.T) {
	m, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())

	m, err = Parse([]byte{})
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())
}

func TestParse_Scalars(t *testing.T) {
	data := []byte{
		tag(1, TypeVarint), 0xAC, 0x02, // 1: varint 300
		tag(2, TypeFixed32), 0x78, 0x56, 0x34, 0x12, // 2: fixed32
		tag(3, TypeFixed64), 0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01, // 3: fixed64
		tag(4, TypeBytes), 0x05, 'h', 'e', 'l', 'l', 'o', // 4: "hello"
	}

	m, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 4, m.Len())

	f, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, TypeVarint, f.Type())
	require.Equal(t, uint64(300), f.Uint())

	f, ok = m.Get(2)
	require.True(t, ok)
	require.Equal(t, TypeFixed32, f.Type())
	require.Equal(t, uint32(0x12345678), f.Uint32())

	f, ok = m.Get(3)
	require.True(t, ok)
	require.Equal(t, TypeFixed64, f.Type())
	require.Equal(t, uint64(0x0123456789ABCDEF), f.Uint())

	f, ok = m.Get(4)
	require.True(t, ok)
	require.Equal(t, TypeBytes, f.Type())
	require.Equal(t, []byte("hello"), f.Bytes())
}

func TestParse_GroupFidelity(t *testing.T) {
	// [tag(5,GROUP_START)] [tag(9,VARINT) 3] [tag(5,GROUP_END)]
	data := []byte{0x2B, 0x48, 0x03, 0x2C}

	m, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())

	f, ok := m.Get(5)
	require.True(t, ok)
	require.Equal(t, TypeStartGroup, f.Type())

	body := f.Group()
	require.NotNil(t, body)
	require.Equal(t, 1, body.Len())
	inner, ok := body.Get(9)
	require.True(t, ok)
	require.Equal(t, TypeVarint, inner.Type())
	require.Equal(t, uint64(3), inner.Uint())

	// Serializing reproduces the original 3-tag byte sequence exactly,
	// with the end marker synthesized rather than stored.
	out, err := m.Marshal()
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestParse_NestedGroups(t *testing.T) {
	data := []byte{
		tag(1, TypeStartGroup),
		tag(2, TypeStartGroup),
		tag(3, TypeVarint), 0x07,
		tag(2, TypeEndGroup),
		tag(1, TypeEndGroup),
	}

	m, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())

	outer, _ := m.Get(1)
	innerField, ok := outer.Group().Get(2)
	require.True(t, ok)
	v, ok := innerField.Group().GetUint(3)
	require.True(t, ok)
	require.Equal(t, uint64(7), v)

	out, err := m.Marshal()
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestParse_RepeatedFieldsPreserveOrder(t *testing.T) {
	data := []byte{
		tag(7, TypeBytes), 0x01, 'a',
		tag(2, TypeVarint), 0x01,
		tag(7, TypeBytes), 0x01, 'b',
	}

	m, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())

	all := m.GetAll(7)
	require.Len(t, all, 2)
	require.Equal(t, []byte("a"), all[0].Bytes())
	require.Equal(t, []byte("b"), all[1].Bytes())

	// First match wins for Get.
	f, ok := m.Get(7)
	require.True(t, ok)
	require.Equal(t, []byte("a"), f.Bytes())
}

func TestParse_InvalidFieldNumber(t *testing.T) {
	_, err := Parse([]byte{0x00})
	require.ErrorIs(t, err, ErrInvalidFieldNumber)

	// Field number 0 with a non-varint wire type is just as invalid.
	_, err = Parse([]byte{0x05})
	require.ErrorIs(t, err, ErrInvalidFieldNumber)
}

func TestParse_UnknownWireType(t *testing.T) {
	_, err := Parse([]byte{tag(1, WireType(6))})
	require.ErrorIs(t, err, ErrUnknownWireType)

	_, err = Parse([]byte{tag(1, WireType(7))})
	require.ErrorIs(t, err, ErrUnknownWireType)
}

func TestParse_UnexpectedGroupEnd(t *testing.T) {
	// Stray end marker at top level.
	_, err := Parse([]byte{tag(5, TypeEndGroup)})
	require.ErrorIs(t, err, ErrUnexpectedGroupEnd)

	// End marker inside a group with a mismatched field number.
	_, err = Parse([]byte{tag(5, TypeStartGroup), tag(6, TypeEndGroup)})
	require.ErrorIs(t, err, ErrUnexpectedGroupEnd)
}

func TestParse_UnterminatedGroup(t *testing.T) {
	_, err := Parse([]byte{0x2B, 0x48, 0x03})
	require.ErrorIs(t, err, ErrUnterminatedGroup)
}

func TestParse_Truncation(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"mid varint tag", []byte{0x80}},
		{"mid varint value", []byte{tag(1, TypeVarint), 0x80}},
		{"missing fixed32 bytes", []byte{tag(1, TypeFixed32), 0x01, 0x02}},
		{"missing fixed64 bytes", []byte{tag(1, TypeFixed64), 0x01}},
		{"missing length-delim payload", []byte{tag(2, TypeBytes), 0x05, 'a', 'b'}},
		{"missing length-delim length", []byte{tag(2, TypeBytes)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.data)
			require.ErrorIs(t, err, ErrTruncated)
		})
	}
}

func TestParse_HugeLengthPrefix(t *testing.T) {
	// Length prefix far beyond the buffer must not allocate or wrap.
	data := []byte{tag(2, TypeBytes), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}
	_, err := Parse(data)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestParse_VarintOverflow(t *testing.T) {
	data := append([]byte{tag(1, TypeVarint)}, bytes.Repeat([]byte{0x80}, 11)...)
	_, err := Parse(data)
	require.ErrorIs(t, err, ErrVarintOverflow)
}

func TestParse_DepthExceeded(t *testing.T) {
	const depth = 5
	var data []byte
	for i := 0; i < depth; i++ {
		data = append(data, tag(1, TypeStartGroup))
	}
	data = append(data, tag(2, TypeVarint), 0x01)
	for i := 0; i < depth; i++ {
		data = append(data, tag(1, TypeEndGroup))
	}

	// Deep enough bound parses fine.
	m, err := ParseWithLimits(data, Limits{MaxDepth: depth})
	require.NoError(t, err)
	out, err := m.Marshal()
	require.NoError(t, err)
	require.Equal(t, data, out)

	// One level short fails.
	_, err = ParseWithLimits(data, Limits{MaxDepth: depth - 1})
	require.ErrorIs(t, err, ErrDepthExceeded)
}

func TestParse_ErrorCarriesOffset(t *testing.T) {
	data := []byte{
		tag(1, TypeVarint), 0x01,
		tag(1, WireType(6)),
	}
	_, err := Parse(data)
	require.ErrorIs(t, err, ErrUnknownWireType)

	var oe *OffsetError
	require.True(t, errors.As(err, &oe))
	require.Equal(t, 2, oe.Offset)
}

func TestSkipField_GroupNesting(t *testing.T) {
	// Cursor positioned just after an already-consumed group start tag: the
	// skip must consume scalars and nested groups by tracking nesting until
	// the matching end tag, leaving the cursor on the next field.
	data := []byte{
		tag(3, TypeVarint), 0x01,
		tag(2, TypeStartGroup), tag(9, TypeBytes), 0x01, 'x', tag(2, TypeEndGroup),
		tag(2, TypeFixed32), 0xAA, 0xBB, 0xCC, 0xDD,
		tag(1, TypeEndGroup),
		tag(4, TypeVarint), 0x09,
	}
	p := &parser{cur: buf.NewCursor(data), limits: DefaultLimits()}
	require.NoError(t, p.skipField(TypeStartGroup))

	tagv, err := p.cur.ReadVarint()
	require.NoError(t, err)
	require.Equal(t, uint64(tag(4, TypeVarint)), tagv)
	v, err := p.cur.ReadVarint()
	require.NoError(t, err)
	require.Equal(t, uint64(9), v)
	require.Equal(t, 0, p.cur.Remaining())
}

func TestSkipField_GroupTruncated(t *testing.T) {
	// Buffer ends while the skipped group is still open.
	data := []byte{tag(3, TypeVarint), 0x01}
	p := &parser{cur: buf.NewCursor(data), limits: DefaultLimits()}
	require.ErrorIs(t, p.skipField(TypeStartGroup), ErrTruncated)
}

func TestSkipField_BareGroupEnd(t *testing.T) {
	p := &parser{cur: buf.NewCursor(nil), limits: DefaultLimits()}
	require.ErrorIs(t, p.skipField(TypeEndGroup), ErrUnexpectedGroupEnd)
}

func TestParse_NeverReturnsPartialTree(t *testing.T) {
	// Two good fields followed by garbage: the whole parse fails.
	data := []byte{
		tag(1, TypeVarint), 0x01,
		tag(2, TypeVarint), 0x02,
		tag(3, TypeBytes), 0x10,
	}
	m, err := Parse(data)
	require.ErrorIs(t, err, ErrTruncated)
	require.Nil(t, m)
}
