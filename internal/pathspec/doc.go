// Package pathspec models the relative paths that make up a project skeleton.
// A path is classified as a file or a directory purely from the shape of its
// final segment: "name.ext" with a 2-15 letter lowercase extension is a file,
// anything else is a directory. Templates carry a placeholder token that is
// replaced with a feature name before the path is scaffolded.
package pathspec
