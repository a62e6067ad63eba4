package catalogue

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layerkit-labs/layerkit/internal/pathspec"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, []string{"base", "feature"}, BuiltinNames())
}

func TestBuiltin_Base(t *testing.T) {
	c, err := Builtin(Base)
	require.NoError(t, err)

	assert.Equal(t, "base", c.Name)
	assert.False(t, c.IsTemplate())

	groupNames := make([]string, len(c.Groups))
	for i, g := range c.Groups {
		groupNames[i] = g.Name
	}
	assert.Equal(t, []string{"common", "config", "core", "feature"}, groupNames)
	assert.Equal(t, 12+26+8+10, c.Len())

	specs := c.Specs()
	require.Len(t, specs, c.Len())
	assert.Equal(t, "lib/common/abstract_classes/stateful_util.dart", specs[0].String())
	assert.Equal(t, "lib/features/dashboard/presentation/widgets", specs[len(specs)-1].String())

	for _, s := range specs {
		assert.Equal(t, "lib", s.Segments()[0], "entry %s should live under lib", s)
	}
}

func TestBuiltin_BaseKinds(t *testing.T) {
	c, err := Builtin(Base)
	require.NoError(t, err)

	kinds := map[string]pathspec.Kind{}
	for _, s := range c.Specs() {
		kinds[s.String()] = s.Kind()
	}
	assert.Equal(t, pathspec.KindFile, kinds["lib/config/themes/dark_theme/dark_theme.inputdecoration.dart"])
	assert.Equal(t, pathspec.KindDirectory, kinds["lib/common/utils"])
	assert.Equal(t, pathspec.KindDirectory, kinds["lib/features/dashboard/presentation/screens"])
}

func TestBuiltin_FeatureRender(t *testing.T) {
	c, err := Builtin(Feature)
	require.NoError(t, err)
	require.True(t, c.IsTemplate())

	token := c.Token("ignored")
	assert.Equal(t, "#feature#", token)

	got := c.Render(token, "payments")
	want := []string{
		"lib/features/payments/data/source/local",
		"lib/features/payments/data/source/remote",
		"lib/features/payments/data/models",
		"lib/features/payments/data/repo_impl",
		"lib/features/payments/domain/entities",
		"lib/features/payments/domain/repo",
		"lib/features/payments/domain/usecases",
		"lib/features/payments/presentation/screens/payments_screen.dart",
		"lib/features/payments/presentation/utils",
		"lib/features/payments/presentation/widgets",
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i].String())
		assert.False(t, got[i].HasPlaceholder(token))
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	_, err := Builtin("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base, feature")
}

func TestToken_Fallback(t *testing.T) {
	c := &Catalogue{Name: "x"}
	assert.Equal(t, "#feature#", c.Token("#feature#"))
}

func TestLoadFile_Valid(t *testing.T) {
	c, err := LoadFile(testPath("valid-custom.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "api-client", c.Name)
	assert.Equal(t, []string{"lib/network/client.dart", "lib/network/interceptors"}, c.Entries())
}

func TestLoadFile_Template(t *testing.T) {
	c, err := LoadFile(testPath("valid-template.yaml"))
	require.NoError(t, err)

	got := c.Render(c.Token(""), "avatar")
	require.Len(t, got, 2)
	assert.Equal(t, "lib/widgets/avatar/avatar.dart", got[0].String())
}

func TestLoadFile_Invalid(t *testing.T) {
	files := []struct {
		file string
		desc string
	}{
		{"invalid-missing-groups.yaml", "missing required groups"},
		{"invalid-bad-name.yaml", "name violates pattern"},
		{"invalid-empty-entries.yaml", "group without entries"},
		{"invalid-trailing-slash.yaml", "entry ending in a separator"},
		{"invalid-unknown-field.yaml", "unknown top-level field"},
	}

	for _, tt := range files {
		t.Run(tt.file, func(t *testing.T) {
			_, err := LoadFile(testPath(tt.file))
			require.Error(t, err, tt.desc)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T", err)
			assert.NotEmpty(t, ve.Issues)
			assert.Contains(t, err.Error(), tt.file)
		})
	}
}

func TestLoadFile_NotYAML(t *testing.T) {
	_, err := LoadFile(testPath("invalid-not-yaml.yaml"))
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "YAML syntax errors are not schema issues")
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(testPath("nonexistent.yaml"))
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	c, err := Resolve("", Base)
	require.NoError(t, err)
	assert.Equal(t, "base", c.Name)

	c, err = Resolve(testPath("valid-custom.yaml"), Base)
	require.NoError(t, err)
	assert.Equal(t, "api-client", c.Name)
}
