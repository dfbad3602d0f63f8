package runner

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Options is the effective run configuration handed to a Runner after CLI
// flags and file-derived defaults have been resolved.
type Options struct {
	Paths         []string
	Exclude       []string
	HookModules   []string
	Search        string
	Tags          string
	FailLimit     int
	Order         string
	CaptureOutput bool
	ShowSlowest   int
	OutputStyle   string
	ConfigPath    string // "" when no config file contributed values
}

// Runner executes a resolved test run and reports the number of failures.
// Test discovery and execution live entirely behind this interface; the CLI
// layer only resolves configuration.
type Runner interface {
	Run(ctx context.Context, opts Options) (failed int, err error)
}

// Plan prints the resolved run plan without executing anything. It backs
// --dry-run and serves as the default runner until an engine is registered
// via cli.SetRunner.
type Plan struct {
	Out io.Writer
}

func (p Plan) Run(_ context.Context, opts Options) (int, error) {
	fmt.Fprintf(p.Out, "search paths:  %s\n", joinOrNone(opts.Paths))
	fmt.Fprintf(p.Out, "exclude:       %s\n", joinOrNone(opts.Exclude))
	fmt.Fprintf(p.Out, "hook modules:  %s\n", joinOrNone(opts.HookModules))
	if opts.Search != "" {
		fmt.Fprintf(p.Out, "search:        %s\n", opts.Search)
	}
	if opts.Tags != "" {
		fmt.Fprintf(p.Out, "tags:          %s\n", opts.Tags)
	}
	if opts.FailLimit > 0 {
		fmt.Fprintf(p.Out, "fail limit:    %d\n", opts.FailLimit)
	}
	fmt.Fprintf(p.Out, "order:         %s\n", opts.Order)
	fmt.Fprintf(p.Out, "output style:  %s\n", opts.OutputStyle)
	if opts.ConfigPath != "" {
		fmt.Fprintf(p.Out, "config file:   %s\n", opts.ConfigPath)
	}
	return 0, nil
}

func joinOrNone(vals []string) string {
	if len(vals) == 0 {
		return "(none)"
	}
	return strings.Join(vals, ", ")
}
