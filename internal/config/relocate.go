package config

import "path/filepath"

// RelocatePaths rewrites path-valued options in fileCfg so they are relative
// to cwd instead of the config file's own directory, matching the convention
// CLI-supplied paths already use. Element order is preserved and each value
// is stored back as a fresh list; callers must not mutate it further.
//
// Relocation must run exactly once per resolution. Running it a second time
// would rebase the already-rewritten paths again.
func RelocatePaths(fileCfg Map, projectRoot, cwd string) error {
	for _, opt := range Options {
		if !opt.Path {
			continue
		}
		raw, ok := fileCfg[opt.Name]
		if !ok {
			continue
		}
		paths := asList(raw)
		rel := make([]string, 0, len(paths))
		for _, p := range paths {
			r, err := filepath.Rel(cwd, filepath.Join(projectRoot, p))
			if err != nil {
				return &RelocationError{Key: opt.Name, Path: p, Err: err}
			}
			rel = append(rel, r)
		}
		fileCfg[opt.Name] = rel
	}
	return nil
}
