// Package config resolves ward's effective runtime configuration by merging
// CLI flags, the [tool.ward] section of the project's pyproject.toml, and
// built-in defaults.
//
// Precedence is strictly CLI-over-file, per key, with no merging of the two
// sources for a single key. Multi-valued options (path, exclude, hook_module)
// are coerced to lists even when the file supplies a scalar. Path-valued
// options written in the file are relative to the file's directory and are
// rebased onto the invoking shell's working directory so both sources use
// one convention downstream.
//
// [Apply] runs the whole pipeline and returns a fresh default map per
// invocation; nothing is stored globally, so a long-lived host process gets
// clean state each round.
package config
