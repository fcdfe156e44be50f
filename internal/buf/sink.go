package buf

import "encoding/binary"

// Sink is an append-only byte buffer builder.
// The zero value is ready to use.
type Sink struct {
	data []byte
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// WriteByte appends a single byte. The returned error is always nil; the
// signature matches io.ByteWriter, as bytes.Buffer does.
func (s *Sink) WriteByte(b byte) error {
	s.data = append(s.data, b)
	return nil
}

// Write appends p verbatim. It never fails; the signature matches io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	s.data = append(s.data, p...)
	return len(p), nil
}

// WriteVarint appends v as a little-endian base-128 varint, setting the
// continuation bit on all but the final 7-bit group. Zero encodes as a
// single 0x00 byte.
func (s *Sink) WriteVarint(v uint64) {
	if v == 0 {
		s.data = append(s.data, 0)
		return
	}
	for v > 0 {
		b := byte(v & 0x7F)
		v >>= 7
		if v > 0 {
			b |= 0x80
		}
		s.data = append(s.data, b)
	}
}

// WriteU32 appends v as 4 raw little-endian bytes.
func (s *Sink) WriteU32(v uint32) {
	s.data = binary.LittleEndian.AppendUint32(s.data, v)
}

// WriteU64 appends v as 8 raw little-endian bytes.
func (s *Sink) WriteU64(v uint64) {
	s.data = binary.LittleEndian.AppendUint64(s.data, v)
}

// Len returns the number of bytes written so far.
func (s *Sink) Len() int {
	return len(s.data)
}

// Bytes returns the accumulated buffer. The Sink retains ownership; callers
// must not write to the Sink after using the returned slice.
func (s *Sink) Bytes() []byte {
	return s.data
}
