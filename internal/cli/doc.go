// Package cli wires together the Cobra command tree for the prelint binary.
//
// It defines the root command and all subcommands (check, hook, config,
// cache, doctor, version), binds flags, reads configuration, invokes the lint
// engine, and returns deterministic exit codes for hook and CI gating.
package cli
