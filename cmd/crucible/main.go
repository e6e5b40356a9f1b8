// Command crucible reads a digit cost grid and prints the minimum heat loss
// for each configured crucible.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/ctxlog"
	"github.com/katalvlaran/crucible/gridgraph"
)

// main is the entrypoint for the crucible command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command logic for easier testing and error handling.
func run(stdin io.Reader, out, logOut io.Writer, args []string) error {
	appCfg, shouldExit, err := parseArgs(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(logOut, appCfg)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	runFile := config.Default()
	if appCfg.ConfigPath != "" {
		runFile, err = config.Load(appCfg.ConfigPath)
		if err != nil {
			return err
		}
		logger.Debug("Run file loaded.", "path", appCfg.ConfigPath, "runs", len(runFile.Runs))
	}

	inputPath := appCfg.InputPath
	if inputPath == "" {
		inputPath = runFile.Input
	}
	if inputPath == "" {
		return &ExitError{Code: 2, Message: "no grid given: pass GRID_PATH, -input, or set input in the run file"}
	}

	grid, err := readGrid(ctx, stdin, inputPath)
	if err != nil {
		return err
	}

	cfgs, err := runFile.Configs()
	if err != nil {
		return err
	}
	showPath := make(map[string]bool, len(cfgs))
	for i := range cfgs {
		showPath[cfgs[i].Name] = appCfg.ShowPath || cfgs[i].ReturnPath
		if appCfg.Verify || showPath[cfgs[i].Name] {
			cfgs[i].ReturnPath = true
		}
	}

	outcomes, err := crucible.SolveAll(ctx, grid, cfgs)
	if err != nil {
		return err
	}

	return report(ctx, out, grid, outcomes, appCfg.Verify, showPath)
}

// readGrid parses the grid at path, or stdin when path is "-".
func readGrid(ctx context.Context, stdin io.Reader, path string) (*gridgraph.GridGraph, error) {
	logger := ctxlog.FromContext(ctx)

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open grid: %w", err)
		}
		defer f.Close()
		r = f
	}

	grid, err := gridgraph.ParseDigits(r)
	if err != nil {
		return nil, fmt.Errorf("parse grid %s: %w", path, err)
	}
	logger.Info("Grid loaded.", "path", path, "rows", grid.Rows(), "cols", grid.Cols())

	return grid, nil
}

// report prints one line per outcome, in configuration order. showPath is
// keyed by run name.
func report(ctx context.Context, out io.Writer, grid *gridgraph.GridGraph, outcomes []crucible.Outcome, verify bool, showPath map[string]bool) error {
	for _, o := range outcomes {
		runCtx := ctxlog.With(ctx, "run", o.Config.Name)
		logger := ctxlog.FromContext(runCtx)
		logger.Debug("Run finished.",
			"min_run", o.Config.MinRun,
			"max_run", o.Config.MaxRun,
			"heuristic", o.Config.Heuristic.String(),
			"expanded", o.Result.Expanded,
			"pushed", o.Result.Pushed,
			"stale", o.Result.Stale,
		)

		if !o.Reachable() {
			logger.Warn("Goal unreachable.", "error", o.Err)
			fmt.Fprintf(out, "%s = unreachable\n", o.Config.Name)
			continue
		}
		fmt.Fprintf(out, "%s = %d\n", o.Config.Name, o.Result.Cost)

		if verify {
			if err := verifyPath(runCtx, grid, o); err != nil {
				return fmt.Errorf("run %q: %w", o.Config.Name, err)
			}
		}
		if showPath[o.Config.Name] {
			fmt.Fprintf(out, "  path: %v\n", o.Result.Cells())
		}
	}

	return nil
}

// verifyPath re-checks a reachable outcome's path independently of the search.
func verifyPath(ctx context.Context, grid *gridgraph.GridGraph, o crucible.Outcome) error {
	total, err := crucible.Validate(grid, o.Result.Path, o.Config.MinRun, o.Config.MaxRun)
	if err != nil {
		return err
	}
	if total != o.Result.Cost {
		return fmt.Errorf("%w: path sums to %d, search reported %d", crucible.ErrInvalidPath, total, o.Result.Cost)
	}
	ctxlog.FromContext(ctx).Info("Path verified.", "steps", len(o.Result.Path)-1)

	return nil
}
