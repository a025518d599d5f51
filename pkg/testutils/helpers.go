package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateNumberedFiles creates n files named <stem>_1<ext> .. <stem>_n<ext>
// and returns their names in creation order.
func CreateNumberedFiles(t *testing.T, dir, stem, ext string, n int) []string {
	t.Helper()
	names := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("%s_%d%s", stem, i, ext)
		err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644)
		require.NoError(t, err)
		names = append(names, name)
	}
	return names
}

// RequireExists asserts that every named file exists under dir.
func RequireExists(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected %s to exist", name)
	}
}

// RequireNotExists asserts that none of the named files exist under dir.
func RequireNotExists(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := os.Stat(filepath.Join(dir, name))
		require.ErrorIs(t, err, os.ErrNotExist, "expected %s to be gone", name)
	}
}
