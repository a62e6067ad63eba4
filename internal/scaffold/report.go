package scaffold

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/layerkit-labs/layerkit/internal/pathspec"
)

var printer = message.NewPrinter(language.English)

// Reporter receives each result as the builder produces it.
type Reporter interface {
	Report(Result)
}

// Report aggregates the results of a Run.
type Report struct {
	RootMarker  string
	Results     []Result
	Created     int
	Skipped     int
	RootMissing int
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	switch res.Status {
	case StatusCreated:
		r.Created++
	case StatusExists:
		r.Skipped++
	case StatusRootMissing:
		r.RootMissing++
	}
}

// Summary returns a one-line count of the run's outcomes.
func (r *Report) Summary() string {
	return printer.Sprintf("%d entries: %d created, %d skipped, %d outside %s",
		len(r.Results), r.Created, r.Skipped, r.RootMissing, r.RootMarker)
}

// TextReporter prints one line per result in the classic script format.
type TextReporter struct {
	W          io.Writer
	RootMarker string
}

// Report implements Reporter.
func (t TextReporter) Report(res Result) {
	fmt.Fprintln(t.W, FormatResult(res, t.RootMarker))
}

// FormatResult renders res as a single diagnostic line. marker names the
// root marker in the root-missing message.
func FormatResult(res Result, marker string) string {
	switch res.Status {
	case StatusRootMissing:
		return fmt.Sprintf("%s folder not found !", marker)
	case StatusExists:
		return fmt.Sprintf("%s::already exists.", res.Spec)
	}
	if res.Kind == pathspec.KindFile {
		return fmt.Sprintf("%s::file created successfully.", res.Spec)
	}
	return fmt.Sprintf("%s::folder created successfully.", res.Path)
}
