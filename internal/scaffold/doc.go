// Package scaffold creates project skeletons from ordered lists of path specs.
// Each entry becomes a directory or a one-line placeholder file under the
// working directory. Entries that already exist are skipped, and entries whose
// resolved path does not pass through the project root marker (normally "lib")
// are refused, so re-running a catalogue is always safe.
package scaffold
