package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/wirekit/wire"
)

var encodeOut string

func init() {
	cmd := newEncodeCmd()
	cmd.Flags().StringVarP(&encodeOut, "out", "o", "", "Write wire bytes to this file instead of printing hex")
	rootCmd.AddCommand(cmd)
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <mapping.json>",
		Short: "Encode a JSON mapping back to wire-format bytes",
		Long: `The encode command reads a JSON object whose keys are field numbers and
builds a wire-format payload from it: integers become varints, strings
become length-delimited UTF-8, nested objects become embedded messages, and
arrays expand into repeated fields.

This is the inverse of "wirectl export" up to the documented lossiness of
the heuristic classifier (single-element repeated fields collapse to
scalars, and byte payloads exported as hex re-encode as text).

Example:
  wirectl encode mapping.json
  wirectl encode mapping.json --out payload.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args)
		},
	}
}

func runEncode(args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse JSON mapping: %w", err)
	}

	mapping, err := mappingFromJSON(raw)
	if err != nil {
		return err
	}

	m, err := wire.FromMap(mapping)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	out, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}
	logger.Debug().Int("fields", m.Len()).Int("bytes", len(out)).Msg("encoded mapping")

	if encodeOut != "" {
		if err := os.WriteFile(encodeOut, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", encodeOut, err)
		}
		return nil
	}
	fmt.Println(hex.EncodeToString(out))
	return nil
}

// mappingFromJSON converts a decoded JSON object into an import mapping:
// keys become field numbers and integral numbers become integers (JSON
// only has float64).
func mappingFromJSON(src map[string]any) (map[uint32]any, error) {
	out := make(map[uint32]any, len(src))
	for key, val := range src {
		num, err := strconv.ParseUint(key, 10, 32)
		if err != nil || num == 0 {
			return nil, fmt.Errorf("mapping key %q: must be a positive field number", key)
		}
		conv, err := valueFromJSON(val)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		out[uint32(num)] = conv
	}
	return out, nil
}

func valueFromJSON(v any) (any, error) {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return nil, fmt.Errorf("non-integer number %v has no wire representation", t)
		}
		if t < 0 {
			return int64(t), nil
		}
		return uint64(t), nil
	case string:
		return t, nil
	case map[string]any:
		return mappingFromJSON(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			conv, err := valueFromJSON(item)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value %T", v)
	}
}
