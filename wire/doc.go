// Package wire implements a schema-less codec for the protocol-buffer wire
// format. It decodes arbitrary protobuf-encoded byte streams into an
// inspectable, mutable field tree using only the tag/wire-type bytes — no
// .proto definition required — and re-encodes the tree back to bytes,
// including the deprecated group (start/end) wire types.
//
// # Key Types
//
//   - Message: an ordered collection of decoded fields, top-level or nested
//   - Field: one decoded field (number, wire type, value)
//   - WireType: the 3-bit physical encoding tag (varint, fixed64, bytes,
//     group start/end, fixed32)
//   - Limits: parse-time resource bounds (group/message nesting depth)
//
// # Parsing and Serializing
//
//	m, err := wire.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := m.Marshal()
//
// Serialization is byte-exact for trees produced purely by parsing: field
// order, wire types and values are preserved, and every group's end tag is
// synthesized from its start field.
//
// # Map Conversion
//
// FromMap builds a Message from a generic integer-keyed map, and
// Message.ToMap heuristically exports one. The export classifier is
// deterministic but inherently lossy: byte payloads that happen to be
// printable UTF-8 are exposed as strings, payloads that reparse as valid
// submessages are exposed as nested maps, and a repeated field with exactly
// one occurrence is indistinguishable from a scalar on re-import. Callers
// needing a fixed shape should use Message.ToMapTemplate instead.
//
// The codec performs no I/O, keeps no global state, and is safe for
// concurrent use across independent Message values.
package wire
