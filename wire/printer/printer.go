// Package printer renders decoded wire messages for inspection. It supports
// human-readable text and JSON output with configurable indentation and
// binary-payload truncation. Rendering is diagnostic output only — it is not
// a stable machine format and is not covered by round-trip guarantees.
package printer

import (
	"io"

	"github.com/joshuapare/wirekit/wire"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxValueBytes = 32
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per group nesting level (text
	// format only).
	// Default: 2
	IndentSize int

	// MaxValueBytes limits how many bytes of binary payloads to display.
	// Longer payloads are truncated with a total-size note. Set to 0 for
	// no limit.
	// Default: 32
	MaxValueBytes int

	// ShowOffsets prefixes each top-level field with its index in the
	// message.
	// Default: false
	ShowOffsets bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		MaxValueBytes: DefaultMaxValueBytes,
	}
}

// Printer handles formatted output of decoded messages.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	m, _ := wire.Parse(data)
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(m)
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{writer: w, opts: opts}
}

// Print renders the message in the configured format.
func (p *Printer) Print(m *wire.Message) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(m)
	default:
		return p.printText(m, 0)
	}
}
