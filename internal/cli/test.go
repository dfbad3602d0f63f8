package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/ward/internal/config"
	"github.com/dshills/ward/internal/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Test command flags
var (
	flagPaths       []string
	flagExclude     []string
	flagHookModules []string
	flagSearch      string
	flagTags        string
	flagFailLimit   int
	flagOrder       string
	flagCapture     bool
	flagShowSlowest int
	flagOutputStyle string
	flagDryRun      bool
)

func addTestFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringSliceVar(&flagPaths, "path", nil, "Search paths for test discovery (default: discovered project root)")
	fs.StringSliceVar(&flagExclude, "exclude", nil, "Path globs to exclude from discovery")
	fs.StringSliceVar(&flagHookModules, "hook-module", nil, "Modules providing lifecycle hooks")
	fs.StringVar(&flagSearch, "search", "", "Only run tests whose name or body matches this substring")
	fs.StringVar(&flagTags, "tags", "", "Only run tests matching this tag expression")
	fs.IntVar(&flagFailLimit, "fail-limit", 0, "Stop after this many failures (0 = no limit)")
	fs.StringVar(&flagOrder, "order", "standard", "Test execution order (standard, random)")
	fs.BoolVar(&flagCapture, "capture-output", true, "Capture stdout/stderr during test execution")
	fs.IntVar(&flagShowSlowest, "show-slowest", 0, "Show the N slowest tests after the run")
	fs.StringVar(&flagOutputStyle, "test-output-style", "test-per-line", "Result output style")
	fs.BoolVar(&flagDryRun, "dry-run", false, "Print the resolved run plan without executing tests")
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Discover and run tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		res, err := resolveDefaults(cmd.Flags())
		if err != nil {
			exitCode = ExitConfigError
			return err
		}
		if err := installDefaults(cmd.Flags(), res.Defaults); err != nil {
			exitCode = ExitConfigError
			return err
		}

		opts := runner.Options{
			Paths:         flagPaths,
			Exclude:       flagExclude,
			HookModules:   flagHookModules,
			Search:        flagSearch,
			Tags:          flagTags,
			FailLimit:     flagFailLimit,
			Order:         flagOrder,
			CaptureOutput: flagCapture,
			ShowSlowest:   flagShowSlowest,
			OutputStyle:   flagOutputStyle,
			ConfigPath:    res.ConfigPath,
		}
		if len(opts.Paths) == 0 {
			opts.Paths = []string{"."}
		}

		r := activeRunner
		if flagDryRun {
			r = runner.Plan{Out: cmd.OutOrStdout()}
		}
		failed, err := r.Run(cmd.Context(), opts)
		if err != nil {
			exitCode = ExitConfigError
			return err
		}
		if failed > 0 {
			exitCode = ExitTestFailures
			fmt.Fprintf(os.Stderr, "%d test(s) failed\n", failed)
		}
		return nil
	},
}

func init() {
	addTestFlags(testCmd)
}

// activeRunner executes resolved runs. The default prints the run plan;
// embedding programs register a real engine with SetRunner.
var activeRunner runner.Runner = runner.Plan{Out: os.Stdout}

// SetRunner replaces the test execution engine behind the test command.
func SetRunner(r runner.Runner) { activeRunner = r }

// resolveDefaults runs the configuration pipeline for the given flag set,
// using the CLI-supplied search paths (if any) to find the project root.
func resolveDefaults(fs *pflag.FlagSet) (config.Result, error) {
	cliCfg := cliConfig(fs)
	var search []string
	if fs.Changed("path") {
		search = flagPaths
	}
	return config.Apply(config.ApplyOptions{
		CLIConfig:   cliCfg,
		SearchPaths: search,
	})
}

// cliConfig collects the flags the user actually set, keyed by canonical
// option name, for the file-vs-CLI precedence decision.
func cliConfig(fs *pflag.FlagSet) config.Map {
	m := config.Map{}
	fs.Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		switch f.Value.Type() {
		case "stringSlice":
			v, _ := fs.GetStringSlice(f.Name)
			m[key] = v
		case "int":
			v, _ := fs.GetInt(f.Name)
			m[key] = int64(v)
		case "bool":
			v, _ := fs.GetBool(f.Name)
			m[key] = v
		default:
			m[key] = f.Value.String()
		}
	})
	return m
}

// installDefaults writes file-derived defaults onto flags the user left
// unset. Setting the value directly does not mark the flag as changed, so
// CLI precedence is preserved for anything the user did supply.
func installDefaults(fs *pflag.FlagSet, defaults config.Map) error {
	for key, value := range defaults {
		name := strings.ReplaceAll(key, "_", "-")
		f := fs.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if list, ok := value.([]string); ok {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				if err := sv.Replace(list); err != nil {
					return fmt.Errorf("applying config default %s: %w", key, err)
				}
				continue
			}
		}
		if err := f.Value.Set(fmt.Sprint(value)); err != nil {
			return fmt.Errorf("applying config default %s: %w", key, err)
		}
	}
	return nil
}
