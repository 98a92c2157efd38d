// Package config loads bracketodds scenario files.
// A scenario names a pool of entrants, the rules of the draw, the events to
// look for and how to compute the odds. It supports TOML and YAML files,
// with BRACKETODDS_* environment variables overriding the scalar settings.
package config
