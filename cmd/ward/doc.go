// Ward is a test discovery and execution CLI whose runtime configuration is
// resolved by merging command-line flags, the [tool.ward] section of the
// project's pyproject.toml, and built-in defaults.
//
// Precedence is CLI-over-file per option. Paths written in the config file
// are relative to the file's directory and are rebased onto the working
// directory before use.
//
// Usage:
//
//	ward test                         # discover and run tests
//	ward test --path tests --tags ci  # restrict discovery
//	ward test --dry-run               # print the resolved run plan
//	ward config                       # show the resolved configuration
//
// See https://github.com/dshills/ward for full documentation.
package main
