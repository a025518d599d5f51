package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bulkrename/internal/fsutil"
	"bulkrename/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDatedFile(t *testing.T, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dated.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestDateForModification(t *testing.T) {
	mtime := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.Local)
	path := writeDatedFile(t, mtime)

	assert.Equal(t, "2024-01-15", fsutil.DateFor(path, types.DateModification, "%Y-%m-%d"))
	assert.Equal(t, "20240115_103000", fsutil.DateFor(path, types.DateModification, "%Y%m%d_%H%M%S"))
}

func TestDateForCreation(t *testing.T) {
	path := writeDatedFile(t, time.Now())
	got := fsutil.DateFor(path, types.DateCreation, "%Y")
	assert.NotEmpty(t, got, "creation date should resolve on every platform")
}

func TestDateForFailuresYieldEmpty(t *testing.T) {
	mtime := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.Local)
	path := writeDatedFile(t, mtime)

	t.Run("missing file", func(t *testing.T) {
		assert.Empty(t, fsutil.DateFor(filepath.Join(t.TempDir(), "gone.txt"), types.DateModification, "%Y"))
	})

	t.Run("unknown source", func(t *testing.T) {
		assert.Empty(t, fsutil.DateFor(path, types.DateSource("bogus"), "%Y"))
	})

	t.Run("malformed format", func(t *testing.T) {
		assert.Empty(t, fsutil.DateFor(path, types.DateModification, "%Q"))
	})

	t.Run("exif on a non-image", func(t *testing.T) {
		assert.Empty(t, fsutil.DateFor(path, types.DateExif, "%Y-%m-%d"))
	})
}

func TestValidDateFormat(t *testing.T) {
	assert.True(t, fsutil.ValidDateFormat("%Y-%m-%d"))
	assert.True(t, fsutil.ValidDateFormat("%Y%m%d_%H%M%S"))
	assert.False(t, fsutil.ValidDateFormat(""))
	assert.False(t, fsutil.ValidDateFormat("%Q"))
}
