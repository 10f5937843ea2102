// Package config loads the configuration of the example bot binaries.
//
// Values are merged from environment variables, command-line flags and an
// optional JSON file, in that priority order, and validated before use.
package config
