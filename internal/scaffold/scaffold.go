package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/layerkit-labs/layerkit/internal/config"
	"github.com/layerkit-labs/layerkit/internal/logger"
	"github.com/layerkit-labs/layerkit/internal/pathspec"
)

// Permission constants for created entries.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Status is the outcome of scaffolding a single entry.
type Status int

const (
	StatusCreated Status = iota
	StatusExists
	StatusRootMissing
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusExists:
		return "exists"
	case StatusRootMissing:
		return "root-missing"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result describes what happened to one entry.
type Result struct {
	Spec   pathspec.Spec
	Path   string // absolute, host separators
	Kind   pathspec.Kind
	Status Status
}

// Builder creates entries on Fs relative to WorkDir.
type Builder struct {
	Fs          afero.Fs
	WorkDir     string
	RootMarker  string
	Placeholder string
}

// New returns a Builder rooted at workDir using the marker and placeholder
// from s.
func New(fs afero.Fs, workDir string, s config.Settings) *Builder {
	return &Builder{
		Fs:          fs,
		WorkDir:     workDir,
		RootMarker:  s.RootMarker,
		Placeholder: s.Placeholder,
	}
}

// Resolve returns the absolute path spec points to.
func (b *Builder) Resolve(spec pathspec.Spec) string {
	p := filepath.FromSlash(spec.String())
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(b.WorkDir, p)
}

// underRoot reports whether abs has a segment equal to the root marker.
// Both separator styles are recognized.
func (b *Builder) underRoot(abs string) bool {
	for _, seg := range pathspec.SplitAll(abs) {
		if seg == b.RootMarker {
			return true
		}
	}
	return false
}

// CreateEntry scaffolds a single spec. Existing paths and paths outside the
// root marker are reported through the returned Result and leave the
// filesystem untouched. The error is non-nil only for filesystem failures.
func (b *Builder) CreateEntry(spec pathspec.Spec) (Result, error) {
	abs := b.Resolve(spec)
	res := Result{Spec: spec, Path: abs, Kind: spec.Kind()}

	if !b.underRoot(abs) {
		res.Status = StatusRootMissing
		return res, nil
	}

	if _, err := b.Fs.Stat(abs); err == nil {
		res.Status = StatusExists
		return res, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return res, fmt.Errorf("checking %s: %w", abs, err)
	}

	if res.Kind == pathspec.KindFile {
		dir := filepath.Dir(abs)
		if err := b.Fs.MkdirAll(dir, DirPerm); err != nil {
			return res, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		if err := afero.WriteFile(b.Fs, abs, []byte(b.Placeholder), FilePerm); err != nil {
			return res, fmt.Errorf("creating file %s: %w", abs, err)
		}
	} else {
		if err := b.Fs.MkdirAll(abs, DirPerm); err != nil {
			return res, fmt.Errorf("creating directory %s: %w", abs, err)
		}
	}

	res.Status = StatusCreated
	return res, nil
}

// Run scaffolds specs in order, handing each result to r. It stops at the
// first filesystem failure; entries already created stay in place.
func (b *Builder) Run(specs []pathspec.Spec, r Reporter) (*Report, error) {
	report := &Report{RootMarker: b.RootMarker}
	for _, spec := range specs {
		res, err := b.CreateEntry(spec)
		if err != nil {
			return report, err
		}
		logger.Debug("scaffold entry", "spec", spec.String(), "kind", res.Kind.String(), "status", res.Status.String())
		report.add(res)
		if r != nil {
			r.Report(res)
		}
	}
	return report, nil
}
