package wire

import "fmt"

// WireType is the 3-bit tag suffix that selects a field's physical encoding.
type WireType uint8

const (
	// TypeVarint is a base-128 variable-length integer.
	TypeVarint WireType = 0

	// TypeFixed64 is 8 raw little-endian bytes, uninterpreted by the codec.
	TypeFixed64 WireType = 1

	// TypeBytes is a varint length prefix followed by that many raw bytes
	// (strings, byte blobs, embedded messages, packed repeated fields).
	TypeBytes WireType = 2

	// TypeStartGroup opens a nested scope with no length prefix. Deprecated
	// in the protobuf language, still present in legacy payloads.
	TypeStartGroup WireType = 3

	// TypeEndGroup closes the scope opened by the matching TypeStartGroup
	// tag. It is consumed during parsing and never stored as a field.
	TypeEndGroup WireType = 4

	// TypeFixed32 is 4 raw little-endian bytes, uninterpreted by the codec.
	TypeFixed32 WireType = 5
)

// Valid reports whether t is one of the six defined wire types.
func (t WireType) Valid() bool {
	return t <= TypeFixed32
}

// String returns the conventional wire-type name.
func (t WireType) String() string {
	switch t {
	case TypeVarint:
		return "VARINT"
	case TypeFixed64:
		return "FIXED64"
	case TypeBytes:
		return "BYTES"
	case TypeStartGroup:
		return "GROUP_START"
	case TypeEndGroup:
		return "GROUP_END"
	case TypeFixed32:
		return "FIXED32"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
	}
}
