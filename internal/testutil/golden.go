package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// UpdateGoldenEnv names the environment variable that rewrites golden files
// instead of comparing against them.
const UpdateGoldenEnv = "VIBELIST_UPDATE_GOLDEN"

// Golden compares got against testdata/<name>.golden.
func Golden(t *testing.T, name string, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")

	if os.Getenv(UpdateGoldenEnv) != "" {
		require.NoError(t, os.MkdirAll("testdata", 0o755))
		require.NoError(t, os.WriteFile(path, []byte(got), 0o644))
		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err, "read golden file %s; got:\n%s", path, got)
	assert.Equal(t, string(want), got, "output mismatch for %s", name)
}
