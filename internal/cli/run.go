// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphd/codec"
	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/engine"
	"github.com/katalvlaran/graphd/registry"
)

type runOpts struct {
	algorithm  string
	start      int
	target     int
	weightType string
	inFormat   string
	format     string
}

// RunOutput is printed by run when --target is given.
type RunOutput struct {
	Result any `json:"result" yaml:"result"`
	Path   any `json:"path" yaml:"path"`
}

func newRunCmd() *cobra.Command {
	opts := runOpts{}
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run an algorithm on a graph record",
		Long: `Run bfs, dfs or dijkstra on a graph record read from file, or from
stdin when the file is "-" or omitted, and print the result record.

With --target the shortest path from --start is printed as well, as
{"result": ..., "path": ...}.`,
		Example: `  graphd generate --seed 1 | graphd run --algorithm dijkstra --start 0 --target 5
  graphd run --algorithm bfs --start 3 --format yaml g.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			var target *int
			if cmd.Flags().Changed("target") {
				target = &opts.target
			}
			return runAlgorithm(cmd, opts, path, target)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.algorithm, "algorithm", "a", "bfs", "bfs, dfs or dijkstra")
	f.IntVarP(&opts.start, "start", "s", 0, "source node")
	f.IntVarP(&opts.target, "target", "t", 0, "also print the shortest path to this node")
	f.StringVar(&opts.weightType, "weight-type", "float64", "weight type of the input: int64 or float64")
	f.StringVar(&opts.inFormat, "in-format", "", "input format json or yaml (default: from file extension, else json)")
	f.StringVar(&opts.format, "format", "json", "output format: json or yaml")
	return cmd
}

func runAlgorithm(cmd *cobra.Command, opts runOpts, path string, target *int) error {
	logger := loggerFromContext(cmd.Context())

	alg, err := engine.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return err
	}
	wt, err := core.ParseWeightType(opts.weightType)
	if err != nil {
		return err
	}
	outFormat, err := codec.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	inFormat, err := outputFormat(opts.inFormat, path)
	if err != nil {
		return err
	}

	in, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer in.Close()

	reg := registry.New()
	var h registry.Handle
	switch wt {
	case core.WeightInt64:
		h, err = readAndRegister[int64](reg, in, inFormat)
	case core.WeightFloat64:
		h, err = readAndRegister[float64](reg, in, inFormat)
	default:
		err = fmt.Errorf("%w: weight type %s", registry.ErrUnsupportedKind, wt)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	e, err := reg.Lookup(h)
	if err != nil {
		return err
	}
	sum := e.Summary()
	logger.Debug("graph loaded", "kind", sum.Kind, "nodes", sum.Nodes, "edges", sum.Edges)

	res, err := e.Run(alg, opts.start)
	if err != nil {
		return err
	}
	var out any = res
	if target != nil {
		out = RunOutput{Result: res, Path: e.Path(opts.start, *target)}
	}
	return codec.Encode(cmd.OutOrStdout(), outFormat, out)
}

func readAndRegister[W core.Weight](reg *registry.Registry, r io.Reader, f codec.Format) (registry.Handle, error) {
	var rec codec.GraphRecord[W]
	if err := codec.Decode(r, f, &rec); err != nil {
		return 0, err
	}
	return registry.RegisterRecord(reg, rec)
}

// openInput opens path, or the command's stdin for "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}
