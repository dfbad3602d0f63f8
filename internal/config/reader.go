package config

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the project configuration file ward reads. Only
// the [tool.ward] section is consulted; everything else in the file belongs
// to other tools and is ignored.
const ConfigFile = "pyproject.toml"

// ReadFile loads the [tool.ward] section of filename under projectRoot and
// returns it with keys rewritten to canonical underscore spelling. A missing
// file or missing section yields an empty Map; a file that exists but cannot
// be read or parsed yields a *ParseError.
func ReadFile(projectRoot, filename string) (Map, error) {
	path := filepath.Join(projectRoot, filename)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Map{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{File: filename, Err: err}
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{File: filename, Err: err}
	}

	section := subTable(subTable(doc, "tool"), "ward")
	out := make(Map, len(section))
	for k, v := range section {
		out[normalizeKey(k)] = normalizeValue(v)
	}
	return out, nil
}

// normalizeKey rewrites a CLI-flag-spelled key to canonical internal
// spelling: leading dashes stripped, remaining dashes become underscores.
func normalizeKey(k string) string {
	k = strings.ReplaceAll(k, "--", "")
	return strings.ReplaceAll(k, "-", "_")
}

// normalizeValue rewrites raw TOML arrays to []string so every list-valued
// entry is homogeneous downstream.
func normalizeValue(v any) any {
	if raw, ok := v.([]any); ok {
		return asList(raw)
	}
	return v
}

func subTable(doc map[string]any, key string) map[string]any {
	if doc == nil {
		return nil
	}
	if t, ok := doc[key].(map[string]any); ok {
		return t
	}
	return nil
}
