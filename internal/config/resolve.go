package config

// MultiDefaults returns the multi-valued options that appeared in the config
// file but were not supplied on the command line. Precedence is all or
// nothing per key: any CLI value suppresses the file value entirely, and the
// two lists are never merged.
//
// Scalar file values are coerced to one-element lists. Defaulting "path" to
// "." when neither source supplies it is the caller's concern, not handled
// here.
func MultiDefaults(fileCfg, cliCfg Map) Map {
	out := Map{}
	for _, opt := range Options {
		if !opt.Multi {
			continue
		}
		fromFile := fileCfg[opt.Name]
		if truthy(fromFile) && !truthy(cliCfg[opt.Name]) {
			out[opt.Name] = asList(fromFile)
		}
	}
	return out
}
