// Package config loads and validates the application configuration from
// a YAML file: decoder tuning (placeholder name, extra vendor mode
// mappings) and output formatting for the CLI.
package config
