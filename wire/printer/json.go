package printer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/joshuapare/wirekit/wire"
)

// printJSON renders the message's auto-exported map as indented JSON.
// Byte payloads are hex-encoded since raw bytes have no JSON representation
// worth reading.
func (p *Printer) printJSON(m *wire.Message) error {
	data, err := json.MarshalIndent(p.jsonValue(m.ToMap()), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// jsonValue recursively rewrites exported values into JSON-friendly form.
func (p *Printer) jsonValue(v any) any {
	switch t := v.(type) {
	case map[uint32]any:
		out := make(map[uint32]any, len(t))
		for k, item := range t {
			out[k] = p.jsonValue(item)
		}
		return out

	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = p.jsonValue(item)
		}
		return out

	case []byte:
		maxBytes := p.opts.MaxValueBytes
		if maxBytes == 0 || maxBytes > len(t) {
			maxBytes = len(t)
		}
		hexStr := hex.EncodeToString(t[:maxBytes])
		if maxBytes < len(t) {
			hexStr += fmt.Sprintf(" (truncated, %d total bytes)", len(t))
		}
		return hexStr

	default:
		return v
	}
}
