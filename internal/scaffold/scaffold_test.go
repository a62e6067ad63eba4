package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/layerkit-labs/layerkit/internal/config"
	"github.com/layerkit-labs/layerkit/internal/pathspec"
)

var testSettings = config.Settings{
	RootMarker:   "lib",
	Placeholder:  "// Auto generated.",
	FeatureToken: "#feature#",
}

func specs(paths ...string) []pathspec.Spec {
	out := make([]pathspec.Spec, len(paths))
	for i, p := range paths {
		out[i] = pathspec.New(p)
	}
	return out
}

var sampleCatalogue = specs(
	"lib/common/abstract_classes/stateful_util.dart",
	"lib/common/utils",
	"lib/config/themes/light_theme/light_theme.appbar.dart",
	"lib/features/dashboard/data/source/local",
	"lib/features/dashboard/presentation/widgets",
)

func TestCreateEntry_Directory(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := New(fs, "/work/app", testSettings)

	res, err := b.CreateEntry(pathspec.New("lib/common/utils"))
	if err != nil {
		t.Fatalf("CreateEntry() error: %v", err)
	}
	if res.Status != StatusCreated || res.Kind != pathspec.KindDirectory {
		t.Errorf("got status=%v kind=%v, want created directory", res.Status, res.Kind)
	}
	if res.Path != filepath.Join("/work/app", "lib", "common", "utils") {
		t.Errorf("Path = %q", res.Path)
	}
	assertDir(t, fs, "/work/app/lib/common/utils")
}

func TestCreateEntry_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := New(fs, "/work/app", testSettings)

	res, err := b.CreateEntry(pathspec.New("lib/common/classes/permission_class.dart"))
	if err != nil {
		t.Fatalf("CreateEntry() error: %v", err)
	}
	if res.Status != StatusCreated || res.Kind != pathspec.KindFile {
		t.Errorf("got status=%v kind=%v, want created file", res.Status, res.Kind)
	}

	assertDir(t, fs, "/work/app/lib/common/classes")
	data, err := afero.ReadFile(fs, "/work/app/lib/common/classes/permission_class.dart")
	if err != nil {
		t.Fatalf("reading placeholder: %v", err)
	}
	if string(data) != "// Auto generated." {
		t.Errorf("placeholder content = %q", data)
	}
}

func TestCreateEntry_AlreadyExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := New(fs, "/work/app", testSettings)
	path := "/work/app/lib/core/extensions/map_ext.dart"
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, path, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := b.CreateEntry(pathspec.New("lib/core/extensions/map_ext.dart"))
	if err != nil {
		t.Fatalf("CreateEntry() error: %v", err)
	}
	if res.Status != StatusExists {
		t.Errorf("Status = %v, want exists", res.Status)
	}
	data, _ := afero.ReadFile(fs, path)
	if string(data) != "keep me" {
		t.Errorf("existing file was rewritten: %q", data)
	}
}

func TestCreateEntry_ExistingDirectoryWithFileShape(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := New(fs, "/work/app", testSettings)
	if err := fs.MkdirAll("/work/app/lib/widgets.dart", 0755); err != nil {
		t.Fatal(err)
	}

	res, err := b.CreateEntry(pathspec.New("lib/widgets.dart"))
	if err != nil {
		t.Fatalf("CreateEntry() error: %v", err)
	}
	if res.Status != StatusExists {
		t.Errorf("Status = %v, want exists", res.Status)
	}
}

func TestCreateEntry_RootMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := New(fs, "/work/app", testSettings)

	res, err := b.CreateEntry(pathspec.New("src/common/utils"))
	if err != nil {
		t.Fatalf("CreateEntry() error: %v", err)
	}
	if res.Status != StatusRootMissing {
		t.Errorf("Status = %v, want root-missing", res.Status)
	}
	if paths := listTree(t, fs, "/"); len(paths) > 1 {
		t.Errorf("guard failure touched the filesystem: %v", paths)
	}
}

func TestCreateEntry_MarkerInWorkDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := New(fs, "/work/app/lib", testSettings)

	res, err := b.CreateEntry(pathspec.New("common/utils"))
	if err != nil {
		t.Fatalf("CreateEntry() error: %v", err)
	}
	if res.Status != StatusCreated {
		t.Errorf("Status = %v, want created", res.Status)
	}
}

func TestCreateEntry_MarkerMustBeWholeSegment(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := New(fs, "/work/app", testSettings)

	for _, p := range []string{"library/utils", "libs/utils", "mylib/utils"} {
		res, err := b.CreateEntry(pathspec.New(p))
		if err != nil {
			t.Fatalf("CreateEntry(%q) error: %v", p, err)
		}
		if res.Status != StatusRootMissing {
			t.Errorf("CreateEntry(%q) status = %v, want root-missing", p, res.Status)
		}
	}
}

func TestCreateEntry_BackslashSpec(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := New(fs, "/work/app", testSettings)

	res, err := b.CreateEntry(pathspec.New(`lib\common\widgets`))
	if err != nil {
		t.Fatalf("CreateEntry() error: %v", err)
	}
	if res.Status != StatusCreated {
		t.Errorf("Status = %v, want created", res.Status)
	}
	assertDir(t, fs, "/work/app/lib/common/widgets")
}

func TestCreateEntry_FilesystemError(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	b := New(fs, "/work/app", testSettings)

	if _, err := b.CreateEntry(pathspec.New("lib/common/utils")); err == nil {
		t.Fatal("expected error on read-only filesystem")
	}
}

func TestRun_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := New(fs, "/work/app", testSettings)

	first, err := b.Run(sampleCatalogue, nil)
	if err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	if first.Created != len(sampleCatalogue) {
		t.Errorf("first run created %d, want %d", first.Created, len(sampleCatalogue))
	}
	before := listTree(t, fs, "/work")

	// A read-only view proves the second run performs no mutation.
	again := New(afero.NewReadOnlyFs(fs), "/work/app", testSettings)
	second, err := again.Run(sampleCatalogue, nil)
	if err != nil {
		t.Fatalf("second Run() error: %v", err)
	}
	if second.Created != 0 || second.Skipped != len(sampleCatalogue) {
		t.Errorf("second run created=%d skipped=%d", second.Created, second.Skipped)
	}

	after := listTree(t, fs, "/work")
	if strings.Join(before, "\n") != strings.Join(after, "\n") {
		t.Errorf("tree changed between runs:\nbefore: %v\nafter:  %v", before, after)
	}
}

func TestRun_StopsOnFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	b := New(fs, "/work/app", testSettings)

	report, err := b.Run(specs("src/outside", "lib/core/functions", "lib/core/never"), nil)
	if err == nil {
		t.Fatal("expected Run() to fail")
	}
	if len(report.Results) != 1 || report.RootMissing != 1 {
		t.Errorf("report should hold only the entries before the failure: %+v", report)
	}
}

func TestRun_OnDisk(t *testing.T) {
	dir := t.TempDir()
	b := New(afero.NewOsFs(), dir, testSettings)

	var out bytes.Buffer
	report, err := b.Run(sampleCatalogue, TextReporter{W: &out, RootMarker: "lib"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if report.Created != len(sampleCatalogue) {
		t.Errorf("Created = %d", report.Created)
	}

	info, err := os.Stat(filepath.Join(dir, "lib", "common", "utils"))
	if err != nil || !info.IsDir() {
		t.Errorf("expected lib/common/utils directory on disk")
	}
	data, err := os.ReadFile(filepath.Join(dir, "lib", "config", "themes", "light_theme", "light_theme.appbar.dart"))
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(data) != "// Auto generated." {
		t.Errorf("content = %q", data)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(sampleCatalogue) {
		t.Fatalf("got %d output lines, want %d:\n%s", len(lines), len(sampleCatalogue), out.String())
	}
	if lines[0] != "lib/common/abstract_classes/stateful_util.dart::file created successfully." {
		t.Errorf("line 0 = %q", lines[0])
	}
	wantDir := filepath.Join(dir, "lib", "common", "utils") + "::folder created successfully."
	if lines[1] != wantDir {
		t.Errorf("line 1 = %q, want %q", lines[1], wantDir)
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func assertDir(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	ok, err := afero.DirExists(fs, path)
	if err != nil || !ok {
		t.Errorf("expected directory %s", path)
	}
}

func listTree(t *testing.T, fs afero.Fs, root string) []string {
	t.Helper()
	var paths []string
	err := afero.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		entry := p
		if !info.IsDir() {
			data, err := afero.ReadFile(fs, p)
			if err != nil {
				return err
			}
			entry += "=" + string(data)
		}
		paths = append(paths, entry)
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("walking %s: %v", root, err)
	}
	sort.Strings(paths)
	return paths
}
