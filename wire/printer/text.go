package printer

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/joshuapare/wirekit/wire"
)

// printText renders one field per line as "<number>(<WIRETYPE>): <value>",
// indenting group bodies by one level.
func (p *Printer) printText(m *wire.Message, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	for i, f := range m.Fields() {
		if p.opts.ShowOffsets && depth == 0 {
			if _, err := fmt.Fprintf(p.writer, "%s#%d ", indent, i); err != nil {
				return err
			}
		} else if _, err := fmt.Fprint(p.writer, indent); err != nil {
			return err
		}

		switch f.Type() {
		case wire.TypeVarint, wire.TypeFixed64, wire.TypeFixed32:
			if _, err := fmt.Fprintf(p.writer, "%d(%s): %d\n", f.Num(), f.Type(), f.Uint()); err != nil {
				return err
			}

		case wire.TypeBytes:
			if _, err := fmt.Fprintf(p.writer, "%d(%s): %s\n", f.Num(), f.Type(), p.formatPayload(f.Bytes())); err != nil {
				return err
			}

		case wire.TypeStartGroup:
			if _, err := fmt.Fprintf(p.writer, "%d(%s): {\n", f.Num(), f.Type()); err != nil {
				return err
			}
			if err := p.printText(f.Group(), depth+1); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(p.writer, "%s}\n", indent); err != nil {
				return err
			}

		default:
			// Defensive: parsed trees never hold other wire types.
			if _, err := fmt.Fprintf(p.writer, "%d(%s): <unrenderable>\n", f.Num(), f.Type()); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatPayload renders a length-delimited payload as quoted text when it
// is printable UTF-8 and as (possibly truncated) hex otherwise.
func (p *Printer) formatPayload(data []byte) string {
	if s, ok := printableText(data); ok {
		return fmt.Sprintf("%q", s)
	}

	maxBytes := p.opts.MaxValueBytes
	if maxBytes == 0 || maxBytes > len(data) {
		maxBytes = len(data)
	}
	out := fmt.Sprintf("h\"%s\"", hex.EncodeToString(data[:maxBytes]))
	if maxBytes < len(data) {
		out += fmt.Sprintf("... (%d total bytes)", len(data))
	}
	return out
}

// printableText reports whether data is valid UTF-8 consisting entirely of
// printable or whitespace runes.
func printableText(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	s := string(data)
	for _, r := range s {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return "", false
		}
	}
	return s, true
}
