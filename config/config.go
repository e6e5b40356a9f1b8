package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/crucible/crucible"
)

var (
	// ErrNoRuns indicates a run file without any run block.
	ErrNoRuns = errors.New("config: at least one run block is required")
	// ErrDuplicateRun indicates two run blocks sharing a label.
	ErrDuplicateRun = errors.New("config: duplicate run name")
)

// File is the decoded form of a run file.
type File struct {
	Input string `hcl:"input,optional"`
	Runs  []*Run `hcl:"run,block"`
}

// Run is one `run "<name>" { ... }` block.
type Run struct {
	Name      string `hcl:"name,label"`
	MinRun    int    `hcl:"min_run"`
	MaxRun    int    `hcl:"max_run"`
	Heuristic string `hcl:"heuristic,optional"`
	Path      bool   `hcl:"path,optional"`
}

// Default returns the two standard parts as a File with no input.
func Default() *File {
	parts := crucible.Parts()
	f := &File{Runs: make([]*Run, 0, len(parts))}
	for _, p := range parts {
		f.Runs = append(f.Runs, &Run{Name: p.Name, MinRun: p.MinRun, MaxRun: p.MaxRun})
	}

	return f
}

// Load reads and decodes the run file at path. A relative Input is resolved
// against the directory holding the run file.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(src, path)
	if err != nil {
		return nil, err
	}
	if f.Input != "" && f.Input != "-" && !filepath.IsAbs(f.Input) {
		f.Input = filepath.Join(filepath.Dir(path), f.Input)
	}

	return f, nil
}

// Parse decodes HCL source; filename is used in diagnostics only.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}

	var f File
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}

	return &f, nil
}

// evalContext exposes the standard run bounds to expressions.
func evalContext() *hcl.EvalContext {
	bounds := func(c crucible.Config) cty.Value {
		return cty.ObjectVal(map[string]cty.Value{
			"min_run": cty.NumberIntVal(int64(c.MinRun)),
			"max_run": cty.NumberIntVal(int64(c.MaxRun)),
		})
	}
	parts := crucible.Parts()

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"ordinary": bounds(parts[0]),
			"ultra":    bounds(parts[1]),
		},
	}
}

// Configs validates the run blocks and converts them to search
// configurations in file order.
func (f *File) Configs() ([]crucible.Config, error) {
	if len(f.Runs) == 0 {
		return nil, ErrNoRuns
	}

	seen := make(map[string]struct{}, len(f.Runs))
	out := make([]crucible.Config, 0, len(f.Runs))
	for _, r := range f.Runs {
		if _, dup := seen[r.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRun, r.Name)
		}
		seen[r.Name] = struct{}{}

		if r.MinRun < 0 || r.MaxRun < r.MinRun {
			return nil, fmt.Errorf("config: run %q: %w: min_run=%d max_run=%d",
				r.Name, crucible.ErrBadRunBounds, r.MinRun, r.MaxRun)
		}
		mode, err := crucible.ParseHeuristicMode(r.Heuristic)
		if err != nil {
			return nil, fmt.Errorf("config: run %q: %w", r.Name, err)
		}
		out = append(out, crucible.Config{
			Name:       r.Name,
			MinRun:     r.MinRun,
			MaxRun:     r.MaxRun,
			Heuristic:  mode,
			ReturnPath: r.Path,
		})
	}

	return out, nil
}
