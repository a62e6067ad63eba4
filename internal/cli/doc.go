// Package cli defines the Cobra command tree for the layerkit CLI. Each file
// in this package registers one top-level command (base, feature, palette,
// etc.) with the root command. Commands delegate to internal packages for the
// actual work and only handle flag parsing, prompting, and output formatting.
package cli
