package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wirectl",
	Short: "Inspect and manipulate protobuf wire-format payloads without a schema",
	Long: `wirectl decodes arbitrary protobuf-encoded payloads using only their
tag/wire-type bytes - no .proto definition required. It can dump the decoded
field tree, export it against a typed template, and re-encode edited
mappings back to wire bytes, including legacy group-encoded messages.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		switch {
		case quiet:
			level = zerolog.ErrorLevel
		case verbose:
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printJSON outputs data as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// readInput resolves a command argument into raw payload bytes: an existing
// file path is read verbatim, anything else must be a hex string.
func readInput(arg string) ([]byte, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", arg, err)
		}
		logger.Debug().Str("file", arg).Int("bytes", len(data)).Msg("read payload from file")
		return data, nil
	}

	data, err := hex.DecodeString(strings.TrimSpace(arg))
	if err != nil {
		return nil, fmt.Errorf("input is neither a readable file nor a hex string: %w", err)
	}
	logger.Debug().Int("bytes", len(data)).Msg("decoded payload from hex string")
	return data, nil
}
