// Package config loads and merges prelint configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (PRELINT_CHECKER, PRELINT_EXTENSION, PRELINT_JOBS, etc.)
//  3. Config file ($XDG_CONFIG_HOME/prelint/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write the config file,
// and [SetField] to update a single key by name.
package config
