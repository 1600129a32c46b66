// SPDX-License-Identifier: MIT

// Package cli implements the graphd command-line interface.
//
// # Commands
//
//   - serve: run the HTTP service over an in-memory graph registry
//   - generate: write a random graph record
//   - run: execute bfs, dfs or dijkstra on a graph record
//   - version: print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --log-format text|json|logfmt. Loggers are passed through
// context.Context. serve additionally reads log settings from its
// configuration (see internal/config).
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version and the
// version command. It is typically called from main with values injected
// via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the graphd CLI on os.Args with standard streams.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Records go to stdout; logs go to
// stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		verbose   bool
		logFormat string
	)

	root := &cobra.Command{
		Use:           "graphd",
		Short:         "graphd stores graphs and runs traversals and shortest paths on them",
		Long:          `graphd keeps list and matrix graphs in memory behind integer handles and serves breadth-first search, depth-first search and Dijkstra over HTTP or from the command line.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch logFormat {
			case "text", "json", "logfmt":
			default:
				return fmt.Errorf("unknown --log-format %q (want text, json or logfmt)", logFormat)
			}
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level, logFormat)))
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("graphd %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text, json or logfmt")

	root.AddCommand(newServeCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "graphd %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			return err
		},
	}
}
