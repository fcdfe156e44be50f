package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/joshuapare/wirekit/wire"
)

var exportTemplate string

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "TOML template mapping field numbers to typed placeholders")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file-or-hex>",
		Short: "Export a decoded payload as a generic mapping",
		Long: `The export command decodes a payload and prints it as a JSON mapping of
field numbers to values, using the heuristic type classifier.

With --template, values are instead coerced to the shapes named in a TOML
template; fields that are missing or fail to coerce keep the template's
placeholder. Template keys are field numbers; integer, string, and nested
table placeholders select integer, text, and submessage decodes.

Example:
  wirectl export payload.bin
  wirectl export payload.bin --template shape.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
}

func runExport(args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	m, err := wire.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse payload: %w", err)
	}

	var out map[uint32]any
	if exportTemplate != "" {
		var raw map[string]any
		if _, err := toml.DecodeFile(exportTemplate, &raw); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", exportTemplate, err)
		}
		tmpl, err := templateFromTOML(raw)
		if err != nil {
			return err
		}
		logger.Debug().Int("keys", len(tmpl)).Msg("loaded export template")
		out = m.ToMapTemplate(tmpl)
	} else {
		out = m.ToMap()
	}

	return printJSON(jsonSafe(out))
}

// templateFromTOML converts a decoded TOML table into a wire template:
// keys become field numbers, nested tables become nested templates, and
// scalar values pass through as placeholders.
func templateFromTOML(src map[string]any) (map[uint32]any, error) {
	out := make(map[uint32]any, len(src))
	for key, val := range src {
		num, err := strconv.ParseUint(key, 10, 32)
		if err != nil || num == 0 {
			return nil, fmt.Errorf("template key %q: must be a positive field number", key)
		}
		if sub, ok := val.(map[string]any); ok {
			nested, err := templateFromTOML(sub)
			if err != nil {
				return nil, err
			}
			out[uint32(num)] = nested
			continue
		}
		out[uint32(num)] = val
	}
	return out, nil
}

// jsonSafe rewrites exported values so they survive JSON encoding: byte
// payloads become hex strings.
func jsonSafe(v any) any {
	switch t := v.(type) {
	case map[uint32]any:
		out := make(map[uint32]any, len(t))
		for k, item := range t {
			out[k] = jsonSafe(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = jsonSafe(item)
		}
		return out
	case []byte:
		return hex.EncodeToString(t)
	default:
		return v
	}
}
