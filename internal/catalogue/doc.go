// Package catalogue loads and validates scaffold catalogues: ordered, grouped
// lists of path specs that describe a project skeleton. Two catalogues are
// embedded in the binary (the full base skeleton and the per-feature
// template); external catalogue files use the same YAML layout and are checked
// against the same JSON Schema before use.
package catalogue
