package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/wirekit/wire"
)

func TestPrint_Text(t *testing.T) {
	m := wire.New()
	m.PutVarint(1, 300)
	m.PutText(2, "hello")
	m.PutBytes(3, []byte{0x0A, 0x1B})

	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())
	require.NoError(t, p.Print(m))

	require.Equal(t,
		"1(VARINT): 300\n"+
			"2(BYTES): \"hello\"\n"+
			"3(BYTES): h\"0a1b\"\n",
		buf.String())
}

func TestPrint_TextGroupIndent(t *testing.T) {
	body := wire.New()
	body.PutVarint(9, 3)

	m := wire.New()
	m.PutGroup(5, body)

	var buf bytes.Buffer
	p := New(&buf, Options{Format: FormatText, IndentSize: 4})
	require.NoError(t, p.Print(m))

	require.Equal(t,
		"5(GROUP_START): {\n"+
			"    9(VARINT): 3\n"+
			"}\n",
		buf.String())
}

func TestPrint_TextTruncatesLongPayloads(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 40)

	m := wire.New()
	m.PutBytes(1, payload)

	var buf bytes.Buffer
	p := New(&buf, Options{MaxValueBytes: 4})
	require.NoError(t, p.Print(m))

	require.Equal(t, "1(BYTES): h\"abababab\"... (40 total bytes)\n", buf.String())

	// MaxValueBytes 0 disables truncation.
	buf.Reset()
	p = New(&buf, Options{MaxValueBytes: 0})
	require.NoError(t, p.Print(m))
	require.Equal(t, "1(BYTES): h\""+strings.Repeat("ab", 40)+"\"\n", buf.String())
}

func TestPrint_TextShowOffsets(t *testing.T) {
	m := wire.New()
	m.PutVarint(1, 5)
	m.PutVarint(2, 6)

	var buf bytes.Buffer
	p := New(&buf, Options{ShowOffsets: true})
	require.NoError(t, p.Print(m))

	require.Equal(t, "#0 1(VARINT): 5\n#1 2(VARINT): 6\n", buf.String())
}

func TestPrint_JSON(t *testing.T) {
	m := wire.New()
	m.PutVarint(1, 300)
	m.PutText(2, "hi")

	var buf bytes.Buffer
	p := New(&buf, Options{Format: FormatJSON})
	require.NoError(t, p.Print(m))

	require.JSONEq(t, `{"1": 300, "2": "hi"}`, buf.String())
}

func TestPrint_JSONHexEncodesBytes(t *testing.T) {
	m := wire.New()
	m.PutBytes(1, []byte{0xFF, 0xFE})

	var buf bytes.Buffer
	p := New(&buf, Options{Format: FormatJSON})
	require.NoError(t, p.Print(m))

	require.JSONEq(t, `{"1": "fffe"}`, buf.String())
}
