// Package buf contains the bounds-checked byte cursor and sink used by the
// wire codec. All reads are validated against the remaining buffer length;
// malformed input produces errors, never panics.
package buf

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// MaxVarintLen is the maximum number of encoded bytes accepted for a single
// varint. Ten 7-bit groups cover a full 64-bit value; anything longer is
// malformed.
const MaxVarintLen = 10

var (
	// ErrTruncated indicates a read past the end of the buffer.
	ErrTruncated = errors.New("buf: truncated buffer")

	// ErrVarintOverflow indicates a varint longer than 10 encoded bytes.
	ErrVarintOverflow = errors.New("buf: varint exceeds 64 bits")
)

// Cursor is a sequential reader over an immutable byte buffer.
// It tracks a read position and refuses any read that would cross the end
// of the buffer.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a Cursor positioned at the start of data.
// The Cursor does not copy data; callers must not mutate it while reading.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// SeekTo repositions the cursor to the absolute offset pos.
func (c *Cursor) SeekTo(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return fmt.Errorf("buf: seek to %d outside buffer of %d bytes", pos, len(c.data))
	}
	c.pos = pos
	return nil
}

// ReadByte reads and returns a single byte.
func (c *Cursor) ReadByte() (byte, error) {
	if c.Remaining() < 1 {
		return 0, ErrTruncated
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// ReadBytes reads n bytes and returns them as a sub-slice of the underlying
// buffer. Callers that retain the result past the buffer's lifetime must
// copy it.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, ErrTruncated
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip advances the cursor past n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	if n < 0 || c.Remaining() < n {
		return ErrTruncated
	}
	c.pos += n
	return nil
}

// ReadVarint reads a little-endian base-128 varint. The continuation bit
// (0x80) is set on every byte except the last. Encodings longer than
// MaxVarintLen bytes are rejected with ErrVarintOverflow.
func (c *Cursor) ReadVarint() (uint64, error) {
	var v uint64
	for n := 0; n < MaxVarintLen; n++ {
		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}
		v |= uint64(b&0x7F) << (7 * n)
		if b < 0x80 {
			return v, nil
		}
	}
	return 0, ErrVarintOverflow
}

// ReadU32 reads 4 raw little-endian bytes as a uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads 8 raw little-endian bytes as a uint64.
func (c *Cursor) ReadU64() (uint64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
