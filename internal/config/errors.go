package config

import "fmt"

// ParseError reports a config file that exists but could not be read or
// parsed. A missing file is not an error; resolution proceeds with an empty
// configuration.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RelocationError reports a file-declared path that cannot be expressed
// relative to the working directory.
type RelocationError struct {
	Key  string
	Path string
	Err  error
}

func (e *RelocationError) Error() string {
	return fmt.Sprintf("relocating %s entry %q: %v", e.Key, e.Path, e.Err)
}

func (e *RelocationError) Unwrap() error { return e.Err }
