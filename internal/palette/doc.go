// Package palette derives sets of visually similar colors from a seed color by
// rotating its hue in fixed 0.05 steps while holding saturation and value. The
// color-space conversions follow the standard HSV formulas exactly, so the
// same seed and count always yield the same set.
package palette
