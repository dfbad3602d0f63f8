package config

import (
	"os"
	"path/filepath"

	"github.com/dshills/ward/internal/project"
)

// ApplyOptions carries the inputs to one configuration resolution.
type ApplyOptions struct {
	// CLIConfig holds the flag values the user actually supplied, keyed by
	// canonical option name.
	CLIConfig Map

	// SearchPaths are the CLI-supplied search paths used to locate the
	// project root. Empty means "current directory".
	SearchPaths []string

	// Filename overrides the config file name. Empty means ConfigFile.
	Filename string

	// WorkDir overrides the working directory file-sourced paths are
	// rebased onto. Empty means os.Getwd.
	WorkDir string

	// Locate overrides the project root locator. Nil means project.Locate.
	Locate func(paths []string) (string, error)
}

// Result is the outcome of a resolution: a fresh per-invocation default map
// for the flag parser plus diagnostics about where configuration came from.
type Result struct {
	// Defaults maps canonical option names to file-derived values the parser
	// should fall back to when no CLI value was given.
	Defaults Map

	// ConfigPath is the absolute path of the config file that contributed
	// values, or "" when no file was used.
	ConfigPath string

	// ProjectRoot is the directory file-relative paths were interpreted
	// against.
	ProjectRoot string
}

// Apply resolves the effective configuration defaults for one invocation:
// locate the project root, read the config file, decide per multi-valued key
// whether the file value survives CLI precedence, rebase file-declared paths
// onto the working directory, and return the result as a default map.
//
// Errors from reading or relocation propagate unchanged; callers should
// treat any error as "defaults not applied" and abort the invocation.
func Apply(opts ApplyOptions) (Result, error) {
	search := opts.SearchPaths
	if len(search) == 0 {
		search = []string{"."}
	}

	locate := opts.Locate
	if locate == nil {
		locate = project.Locate
	}
	root, err := locate(search)
	if err != nil {
		return Result{}, err
	}

	filename := opts.Filename
	if filename == "" {
		filename = ConfigFile
	}
	fileCfg, err := ReadFile(root, filename)
	if err != nil {
		return Result{}, err
	}

	var configPath string
	if len(fileCfg) > 0 {
		configPath = filepath.Join(root, filename)
	}

	cwd := opts.WorkDir
	if cwd == "" {
		if cwd, err = os.Getwd(); err != nil {
			return Result{}, err
		}
	}

	for k, v := range MultiDefaults(fileCfg, opts.CLIConfig) {
		fileCfg[k] = v
	}
	if err := RelocatePaths(fileCfg, root, cwd); err != nil {
		return Result{}, err
	}

	defaults := make(Map, len(fileCfg))
	for k, v := range fileCfg {
		defaults[k] = v
	}
	return Result{Defaults: defaults, ConfigPath: configPath, ProjectRoot: root}, nil
}
