package rename_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"bulkrename/internal/config"
	"bulkrename/internal/errors"
	"bulkrename/internal/rename"
	"bulkrename/pkg/testutils"
	"bulkrename/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefixOp(prefix string) config.Operation {
	op := config.New().Operation
	op.Prefix = prefix
	return op
}

func TestSetDirectoryValidates(t *testing.T) {
	engine := rename.New()
	assert.Error(t, engine.SetDirectory(filepath.Join(t.TempDir(), "missing")))
	assert.NoError(t, engine.SetDirectory(t.TempDir()))
}

func TestLoadFilesSoftFailsOnVanishedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub")
	require.NoError(t, os.Mkdir(dir, 0755))

	engine := rename.New()
	require.NoError(t, engine.SetDirectory(dir))
	require.NoError(t, os.RemoveAll(dir))

	err := engine.LoadFiles()
	require.Error(t, err)
	assert.True(t, errors.IsDirectoryAccess(err))
	assert.Zero(t, engine.FileCount())
}

func TestValidateDuplicateTargets(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a_1.txt": "x", "a_2.txt": "y",
	})
	engine := newEngine(t, tmpDir, ".txt")

	op := config.New().Operation
	op.UsePattern = true
	op.Pattern = []string{"a"}
	ok, _ := engine.Configure(op)
	require.True(t, ok)

	engine.Preview()
	errs := engine.Validate()
	// First duplicate wins; only the second file is reported.
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "a.txt")
	assert.Contains(t, errs[0], "duplicate")
}

func TestValidateTargetExistsOnDisk(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt":     "x",
		"new_a.txt": "already here",
	})
	engine := newEngine(t, tmpDir, ".txt")
	engine.Configure(prefixOp("new_"))

	engine.Preview()
	errs := engine.Validate()
	// new_a.txt collides with the on-disk file; new_new_a.txt is free.
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "new_a.txt")
	assert.Contains(t, errs[0], "already exists")
}

func TestValidatePermitsNoopRename(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{"a.txt": "x"})
	engine := newEngine(t, tmpDir, ".txt")

	op := config.New().Operation
	op.Replace.Find = "zzz" // matches nothing; proposed name equals original
	engine.Configure(op)

	engine.Preview()
	assert.Empty(t, engine.Validate())
}

func TestExecuteRenamesAndRecordsUndoBatch(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "a", "b.txt": "b", "c.txt": "c",
	})
	engine := newEngine(t, tmpDir, ".txt")
	engine.Configure(prefixOp("new_"))

	result := engine.Execute()
	require.True(t, result.Success(), "unexpected errors: %v", result.Errors)
	assert.Len(t, result.Renamed, 3)

	testutils.RequireExists(t, tmpDir, "new_a.txt", "new_b.txt", "new_c.txt")
	testutils.RequireNotExists(t, tmpDir, "a.txt", "b.txt", "c.txt")

	assert.True(t, engine.CanUndo())
	assert.Equal(t, 1, engine.UndoCount())

	// Entity identity follows the rename.
	for _, f := range engine.Files() {
		assert.Empty(t, f.PendingName)
		assert.Contains(t, f.BaseName, "new_")
	}
}

func TestExecuteShortCircuitsOnValidationErrors(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt":     "x",
		"new_a.txt": "collision",
	})
	engine := newEngine(t, tmpDir, ".txt")
	engine.Configure(prefixOp("new_"))

	result := engine.Execute()
	assert.Empty(t, result.Renamed)
	require.NotEmpty(t, result.Errors)
	// Nothing moved: the validate gate is all-or-nothing.
	testutils.RequireExists(t, tmpDir, "a.txt", "new_a.txt")
	assert.False(t, engine.CanUndo())
}

func TestExecuteRefusesInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{"a.txt": "x"})
	engine := newEngine(t, tmpDir, ".txt")

	op := prefixOp("new_")
	op.Numbering.Enabled = true
	op.Numbering.Padding = 0
	ok, cfgErrs := engine.Configure(op)
	assert.False(t, ok)
	require.NotEmpty(t, cfgErrs)

	result := engine.Execute()
	assert.Empty(t, result.Renamed)
	assert.Equal(t, cfgErrs, result.Errors)
	testutils.RequireExists(t, tmpDir, "a.txt")
}

func TestExecutePartialFailureContinuesBatch(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "a", "b.txt": "b", "c.txt": "c",
	})
	engine := newEngine(t, tmpDir, ".txt")
	engine.Configure(prefixOp("new_"))

	// Pull file 2 out from under the engine after load: its rename fails,
	// the rest of the batch continues.
	require.NoError(t, os.Remove(filepath.Join(tmpDir, "b.txt")))

	result := engine.Execute()
	assert.Len(t, result.Renamed, 2)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "b.txt")

	testutils.RequireExists(t, tmpDir, "new_a.txt", "new_c.txt")
	testutils.RequireNotExists(t, tmpDir, "new_b.txt")

	// The two successes still form an undoable batch.
	assert.Equal(t, 1, engine.UndoCount())
}

func TestUndoRestoresOriginalPaths(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "a", "b.txt": "b", "c.txt": "c",
	})
	engine := newEngine(t, tmpDir, ".txt")
	engine.Configure(prefixOp("new_"))

	before := engine.UndoCount()
	result := engine.Execute()
	require.True(t, result.Success())

	ok, err := engine.Undo()
	require.True(t, ok, "undo failed: %v", err)
	require.NoError(t, err)

	testutils.RequireExists(t, tmpDir, "a.txt", "b.txt", "c.txt")
	testutils.RequireNotExists(t, tmpDir, "new_a.txt", "new_b.txt", "new_c.txt")
	assert.Equal(t, before, engine.UndoCount())
}

func TestUndoReportsMissingFilesButConsumesBatch(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "a", "b.txt": "b",
	})
	engine := newEngine(t, tmpDir, ".txt")
	engine.Configure(prefixOp("new_"))

	result := engine.Execute()
	require.True(t, result.Success())

	// One renamed file disappears before the undo.
	require.NoError(t, os.Remove(filepath.Join(tmpDir, "new_b.txt")))

	ok, err := engine.Undo()
	assert.False(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")

	// The other pair was still reversed, and the batch is gone.
	testutils.RequireExists(t, tmpDir, "a.txt")
	assert.False(t, engine.CanUndo())
}

func TestUndoWithEmptyStack(t *testing.T) {
	engine := rename.New()
	ok, err := engine.Undo()
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestUndoStackBoundedAtTen(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{"a.txt": "x"})
	engine := newEngine(t, tmpDir, ".txt")

	op := config.New().Operation
	op.Suffix = "x"
	engine.Configure(op)

	for i := 0; i < 11; i++ {
		result := engine.Execute()
		require.True(t, result.Success(), "execute %d failed: %v", i, result.Errors)
	}
	assert.Equal(t, 10, engine.UndoCount(), "oldest batch must be evicted")

	for i := 0; i < 10; i++ {
		ok, err := engine.Undo()
		require.True(t, ok, "undo %d failed: %v", i, err)
	}
	assert.False(t, engine.CanUndo())

	// The first rename survives: its batch fell off the bounded stack.
	testutils.RequireExists(t, tmpDir, "ax.txt")
}

func TestProgressCallback(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "a", "b.txt": "b", "c.txt": "c",
	})
	engine := newEngine(t, tmpDir, ".txt")
	engine.Configure(prefixOp("new_"))

	var calls []string
	engine.SetProgressFunc(func(completed, total int) {
		calls = append(calls, fmt.Sprintf("%d/%d", completed, total))
	})

	result := engine.Execute()
	require.True(t, result.Success())
	assert.Equal(t, []string{"1/3", "2/3", "3/3"}, calls)
}

func TestStats(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "a", "b.txt": "b", "c.jpg": "c",
	})
	engine := newEngine(t, tmpDir, ".txt, .jpg")
	engine.Configure(prefixOp("new_"))
	engine.Preview()

	stats := engine.Stats()
	assert.Equal(t, 3, stats.TotalFiles)
	assert.Equal(t, 3, stats.FilesWithChanges)
	assert.Equal(t, 2, stats.UniqueExtensions)
	assert.Equal(t, 1, stats.Directories)
	assert.Equal(t, 0, stats.UndoBatches)
	assert.True(t, stats.Configured)
}

func TestResetOperation(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{"a.txt": "x"})
	engine := newEngine(t, tmpDir, ".txt")
	engine.Configure(prefixOp("new_"))
	engine.Preview()
	require.Equal(t, 1, engine.Stats().FilesWithChanges)

	engine.ResetOperation()
	stats := engine.Stats()
	assert.Zero(t, stats.FilesWithChanges)
	assert.False(t, stats.Configured)
}

func TestSortFilesChangesNumberingOrder(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "a", "b.txt": "b",
	})
	engine := newEngine(t, tmpDir, ".txt")

	op := config.New().Operation
	op.Numbering.Enabled = true
	op.Numbering.Start = 1
	op.Numbering.Padding = 2
	engine.Configure(op)

	engine.SortFiles(types.SortByName, true)
	got := proposed(engine.Preview())
	assert.Equal(t, []string{"b_01.txt", "a_02.txt"}, got)
}

func TestNewWithConfig(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"IMG_1.jpg": "a", "IMG_2.jpg": "b", "other.jpg": "c",
	})

	cfg := config.New()
	cfg.Scan.Directory = tmpDir
	cfg.Scan.Extensions = ".jpg"
	cfg.Scan.Match = "IMG_*"
	cfg.Operation.Prefix = "x"

	engine, err := rename.NewWithConfig(cfg)
	require.NoError(t, err)
	require.NoError(t, engine.LoadFiles())
	assert.Equal(t, 2, engine.FileCount())
	assert.True(t, engine.Operation().IsConfigured())

	t.Run("bad glob rejected", func(t *testing.T) {
		bad := config.New()
		bad.Scan.Directory = tmpDir
		bad.Scan.Match = "[unclosed"
		_, err := rename.NewWithConfig(bad)
		assert.Error(t, err)
	})
}
