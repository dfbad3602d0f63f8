package config

import "fmt"

// Map holds one source's configuration, keyed by canonical option name
// (underscore spelling). After normalization a value is an int64, string,
// bool, or []string. Two Maps exist per resolution: one from the CLI
// invocation, one from the config file.
type Map map[string]any

// Option describes the merge behavior of one configuration option. The same
// table backs both the flag definitions in internal/cli and the resolver
// here, so the two cannot drift.
type Option struct {
	Name  string
	Multi bool // value is a list even when the file supplies a scalar
	Path  bool // list elements are filesystem paths relative to the file's directory
}

// Options is the fixed set of options with special merge handling. Any key
// not listed here passes through untouched: no relocation and no multi-value
// coercion beyond what the flag parser itself expects.
var Options = []Option{
	{Name: "path", Multi: true, Path: true},
	{Name: "exclude", Multi: true, Path: true},
	{Name: "hook_module", Multi: true},
}

// asList coerces a value to list form: lists are returned unchanged, scalars
// are wrapped in a one-element list.
func asList(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, fmt.Sprint(e))
		}
		return out
	case string:
		return []string{t}
	default:
		return []string{fmt.Sprint(t)}
	}
}

// truthy reports whether a value counts as "supplied" for precedence
// purposes. Empty strings and empty lists count as absent, so an explicitly
// empty CLI value does not suppress a file-sourced default.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case []string:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}
