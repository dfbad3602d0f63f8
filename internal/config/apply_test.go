package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
[tool.ward]
path = "tests"
exclude = "build"
`)

	res, err := Apply(ApplyOptions{
		SearchPaths: []string{root},
		WorkDir:     root,
	})
	require.NoError(t, err)

	// Scalars coerced to one-element lists, paths rebased onto the cwd.
	assert.Equal(t, []string{"tests"}, res.Defaults["path"])
	assert.Equal(t, []string{"build"}, res.Defaults["exclude"])
	assert.Equal(t, filepath.Join(root, ConfigFile), res.ConfigPath)
	assert.Equal(t, root, res.ProjectRoot)
}

func TestApply_NestedWorkDir(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "nested")
	require.NoError(t, os.Mkdir(nested, 0o755))
	writeConfig(t, root, `
[tool.ward]
path = "sub"
`)

	res, err := Apply(ApplyOptions{
		SearchPaths: []string{root},
		WorkDir:     nested,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("..", "sub")}, res.Defaults["path"])
}

func TestApply_CLISuppressesFileValue(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
[tool.ward]
hook_module = "file_hooks"
`)

	res, err := Apply(ApplyOptions{
		CLIConfig:   Map{"hook_module": []string{"cli_hooks"}},
		SearchPaths: []string{root},
		WorkDir:     root,
	})
	require.NoError(t, err)

	// The raw file value still reaches the default map, but never as a
	// list-coerced default; the parser's own CLI precedence makes it inert.
	assert.Equal(t, "file_hooks", res.Defaults["hook_module"])
}

func TestApply_NoConfigFile(t *testing.T) {
	root := t.TempDir()
	// A marker without a [tool.ward] section still anchors the root.
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))

	res, err := Apply(ApplyOptions{
		SearchPaths: []string{root},
		WorkDir:     root,
	})
	require.NoError(t, err)

	assert.Empty(t, res.Defaults)
	assert.Equal(t, "", res.ConfigPath)
	assert.Equal(t, root, res.ProjectRoot)
}

func TestApply_MalformedFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[tool.ward\n")

	res, err := Apply(ApplyOptions{
		SearchPaths: []string{root},
		WorkDir:     root,
	})
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	// Nothing applied on failure.
	assert.Nil(t, res.Defaults)
}

func TestApply_PassthroughKeys(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
[tool.ward]
fail-limit = 5
order = "random"
`)

	res, err := Apply(ApplyOptions{
		SearchPaths: []string{root},
		WorkDir:     root,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), res.Defaults["fail_limit"])
	assert.Equal(t, "random", res.Defaults["order"])
}

func TestApply_LocatorSeam(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
[tool.ward]
path = "tests"
`)

	var got []string
	res, err := Apply(ApplyOptions{
		WorkDir: root,
		Locate: func(paths []string) (string, error) {
			got = paths
			return root, nil
		},
	})
	require.NoError(t, err)

	// Empty search paths default to the current directory.
	assert.Equal(t, []string{"."}, got)
	assert.Equal(t, []string{"tests"}, res.Defaults["path"])
}
