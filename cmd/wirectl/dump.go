package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/wirekit/wire"
	"github.com/joshuapare/wirekit/wire/printer"
)

var (
	dumpMaxDepth int
	dumpMaxBytes int
	dumpOffsets  bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpMaxDepth, "max-depth", wire.DefaultMaxDepth, "Maximum group/message nesting depth")
	cmd.Flags().IntVar(&dumpMaxBytes, "max-bytes", printer.DefaultMaxValueBytes, "Binary payload bytes to display before truncating (0 = unlimited)")
	cmd.Flags().BoolVar(&dumpOffsets, "offsets", false, "Prefix top-level fields with their index")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file-or-hex>",
		Short: "Human-readable dump of a wire-format payload",
		Long: `The dump command decodes a payload schema-lessly and prints every field
as <number>(<WIRETYPE>): <value>, with group bodies indented.

The argument is a file path, or a hex string when no such file exists.

Example:
  wirectl dump payload.bin
  wirectl dump 2b48032c
  wirectl dump payload.bin --json
  wirectl dump payload.bin --max-depth 16`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	m, err := wire.ParseWithLimits(data, wire.Limits{MaxDepth: dumpMaxDepth})
	if err != nil {
		return fmt.Errorf("failed to parse payload: %w", err)
	}
	logger.Debug().Int("fields", m.Len()).Msg("parsed payload")

	opts := printer.DefaultOptions()
	opts.MaxValueBytes = dumpMaxBytes
	opts.ShowOffsets = dumpOffsets
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(os.Stdout, opts).Print(m)
}
