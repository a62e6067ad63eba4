package catalogue

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/layerkit-labs/layerkit/internal/logger"
	"github.com/layerkit-labs/layerkit/internal/pathspec"
)

// Names of the embedded catalogues.
const (
	Base    = "base"
	Feature = "feature"
)

//go:embed catalogues/*.yaml
var builtinFS embed.FS

// Group is a named, ordered slice of entries (common, config, core, ...).
type Group struct {
	Name    string   `yaml:"name"`
	Entries []string `yaml:"entries"`
}

// Catalogue is an ordered list of path specs grouped by logical area.
// A catalogue with a Placeholder is a template and must be rendered with a
// name before it can be scaffolded.
type Catalogue struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Placeholder string  `yaml:"placeholder,omitempty"`
	Groups      []Group `yaml:"groups"`
}

// Len returns the total number of entries across all groups.
func (c *Catalogue) Len() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Entries)
	}
	return n
}

// Entries returns every entry in catalogue order.
func (c *Catalogue) Entries() []string {
	out := make([]string, 0, c.Len())
	for _, g := range c.Groups {
		out = append(out, g.Entries...)
	}
	return out
}

// IsTemplate reports whether the catalogue declares a placeholder token.
func (c *Catalogue) IsTemplate() bool {
	return c.Placeholder != ""
}

// Token returns the catalogue's placeholder, or fallback when it declares none.
func (c *Catalogue) Token(fallback string) string {
	if c.Placeholder != "" {
		return c.Placeholder
	}
	return fallback
}

// Specs returns the entries as path specs, in catalogue order.
func (c *Catalogue) Specs() []pathspec.Spec {
	entries := c.Entries()
	out := make([]pathspec.Spec, len(entries))
	for i, e := range entries {
		out[i] = pathspec.New(e)
	}
	return out
}

// Templates returns the entries as templates keyed on token.
func (c *Catalogue) Templates(token string) []pathspec.Template {
	entries := c.Entries()
	out := make([]pathspec.Template, len(entries))
	for i, e := range entries {
		out[i] = pathspec.NewTemplate(e, token)
	}
	return out
}

// Render substitutes name for token in every entry.
func (c *Catalogue) Render(token, name string) []pathspec.Spec {
	templates := c.Templates(token)
	out := make([]pathspec.Spec, len(templates))
	for i, t := range templates {
		out[i] = t.Render(name)
	}
	return out
}

// Parse validates data against the catalogue schema and decodes it.
// source names the document in error messages.
func Parse(data []byte, source string) (*Catalogue, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating catalogue %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &ValidationError{Source: source, Issues: result.Issues}
	}

	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalogue %s: %w", source, err)
	}
	logger.Debug("catalogue loaded", "source", source, "name", c.Name, "entries", c.Len())
	return &c, nil
}

// LoadFile reads and parses a catalogue file from disk.
func LoadFile(path string) (*Catalogue, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Builtin returns one of the embedded catalogues by name.
func Builtin(name string) (*Catalogue, error) {
	data, err := fs.ReadFile(builtinFS, "catalogues/"+name+".yaml")
	if err != nil {
		return nil, fmt.Errorf("catalogue %q not found (available: %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return Parse(data, name)
}

// BuiltinNames lists the embedded catalogues in sorted order.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(builtinFS, "catalogues")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Resolve returns the catalogue at path when it is set, otherwise the
// embedded catalogue called name.
func Resolve(path, name string) (*Catalogue, error) {
	if path != "" {
		return LoadFile(path)
	}
	return Builtin(name)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
