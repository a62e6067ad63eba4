package pathspec

import (
	"regexp"
	"strings"
)

// Separator is the canonical separator used inside a Spec. Backslashes are
// accepted on input and rewritten to it.
const Separator = "/"

var fileExt = regexp.MustCompile(`.*\.[a-z]{2,15}$`)

// Kind tells whether a spec denotes a file or a directory.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindFile {
		return "file"
	}
	return "directory"
}

// IsFile reports whether basename looks like a file name. Only the last
// dot-suffix counts, so "light_theme.appbar.dart" is a file.
func IsFile(basename string) bool {
	return fileExt.MatchString(basename)
}

// Classify returns the kind of the final segment of p.
func Classify(p string) Kind {
	if IsFile(base(SplitAll(p))) {
		return KindFile
	}
	return KindDirectory
}

// SplitAll splits p on both forward and back slashes and drops empty segments.
func SplitAll(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}

// Normalize rewrites backslashes to Separator and trims trailing separators.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, Separator)
	if trimmed := strings.TrimRight(p, Separator); trimmed != "" {
		return trimmed
	}
	return p
}

func base(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// Spec is a location relative to the project root, e.g. "lib/common/utils".
type Spec struct {
	path string
}

// New returns the Spec for p after normalizing its separators.
func New(p string) Spec {
	return Spec{path: Normalize(p)}
}

// String returns the normalized path.
func (s Spec) String() string { return s.path }

// Segments returns the path components in order.
func (s Spec) Segments() []string { return SplitAll(s.path) }

// Base returns the final path component.
func (s Spec) Base() string { return base(s.Segments()) }

// Kind classifies the spec from its basename.
func (s Spec) Kind() Kind { return Classify(s.path) }

// HasPlaceholder reports whether token still appears in the spec.
func (s Spec) HasPlaceholder(token string) bool {
	return token != "" && strings.Contains(s.path, token)
}

// Template is a Spec with a placeholder token waiting to be substituted.
type Template struct {
	raw   string
	token string
}

// NewTemplate returns a template whose occurrences of token will be replaced
// on Render.
func NewTemplate(p, token string) Template {
	return Template{raw: Normalize(p), token: token}
}

// String returns the unrendered template text.
func (t Template) String() string { return t.raw }

// Render substitutes every occurrence of the token with name. Callers are
// expected to have validated name already.
func (t Template) Render(name string) Spec {
	if t.token == "" {
		return New(t.raw)
	}
	return New(strings.ReplaceAll(t.raw, t.token, name))
}
