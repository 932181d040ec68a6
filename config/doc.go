// Package config defines the YAML configuration of the grocery CLI and loads it
// with environment variable overrides.
package config
