package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelocatePaths_SameDir(t *testing.T) {
	cfg := Map{"path": []string{"sub"}}

	require.NoError(t, RelocatePaths(cfg, "/repo", "/repo"))
	assert.Equal(t, []string{"sub"}, cfg["path"])
}

func TestRelocatePaths_NestedCwd(t *testing.T) {
	cfg := Map{"path": []string{"sub"}}

	require.NoError(t, RelocatePaths(cfg, "/repo", "/repo/nested"))
	assert.Equal(t, []string{"../sub"}, cfg["path"])
}

func TestRelocatePaths_OrderPreserved(t *testing.T) {
	cfg := Map{"exclude": []string{"b", "a", "c"}}

	require.NoError(t, RelocatePaths(cfg, "/repo", "/repo"))
	assert.Equal(t, []string{"b", "a", "c"}, cfg["exclude"])
}

func TestRelocatePaths_ScalarCoerced(t *testing.T) {
	cfg := Map{"exclude": "build"}

	require.NoError(t, RelocatePaths(cfg, "/repo", "/repo"))
	assert.Equal(t, []string{"build"}, cfg["exclude"])
}

func TestRelocatePaths_NonPathKeysUntouched(t *testing.T) {
	cfg := Map{"hook_module": []string{"hooks"}, "order": "random"}

	require.NoError(t, RelocatePaths(cfg, "/repo", "/repo/nested"))
	assert.Equal(t, []string{"hooks"}, cfg["hook_module"])
	assert.Equal(t, "random", cfg["order"])
}

func TestRelocatePaths_Error(t *testing.T) {
	// A relative project root cannot be expressed relative to an absolute
	// working directory.
	cfg := Map{"path": []string{"sub"}}

	err := RelocatePaths(cfg, "repo", "/elsewhere")
	require.Error(t, err)

	var relErr *RelocationError
	require.True(t, errors.As(err, &relErr))
	assert.Equal(t, "path", relErr.Key)
	assert.Equal(t, "sub", relErr.Path)
}
