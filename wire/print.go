package wire

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Dump renders the message as human-readable text for debugging: one field
// per line as "<number>(<WIRETYPE>): <value>", with printable
// length-delimited payloads quoted, binary payloads hex-encoded as
// h"<hex>", and groups as indented blocks. The output is not a stable
// machine format and is not covered by round-trip guarantees. Dump never
// fails; unrenderable fields fall back to a placeholder.
func (m *Message) Dump() string {
	var sb strings.Builder
	m.dump(&sb, 0)
	return sb.String()
}

func (m *Message) dump(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, f := range m.fields {
		switch f.typ {
		case TypeVarint, TypeFixed64, TypeFixed32:
			fmt.Fprintf(sb, "%s%d(%s): %d\n", indent, f.num, f.typ, f.uval)

		case TypeBytes:
			if s, ok := printableText(f.raw); ok {
				fmt.Fprintf(sb, "%s%d(%s): %q\n", indent, f.num, f.typ, s)
			} else {
				fmt.Fprintf(sb, "%s%d(%s): h\"%s\"\n", indent, f.num, f.typ, hex.EncodeToString(f.raw))
			}

		case TypeStartGroup:
			fmt.Fprintf(sb, "%s%d(%s): {\n", indent, f.num, f.typ)
			if f.group != nil {
				f.group.dump(sb, depth+1)
			}
			fmt.Fprintf(sb, "%s}\n", indent)

		default:
			fmt.Fprintf(sb, "%s%d(%s): <unrenderable>\n", indent, f.num, f.typ)
		}
	}
}
