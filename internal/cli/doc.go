// Package cli wires together the Cobra command tree for the ward binary.
//
// It defines the root command and subcommands (test, config, version), binds
// flags from the shared option table, resolves file-derived defaults onto
// unset flags, and returns deterministic exit codes.
package cli
