// Package rename implements the batch rename orchestrator: it owns the
// loaded file set, the configured operation, preview and validation, the
// per-file rename execution, and the bounded undo stack.
package rename

import (
	"fmt"
	"os"
	"strings"

	"bulkrename/internal/config"
	"bulkrename/internal/errors"
	"bulkrename/internal/fsutil"
	"bulkrename/internal/log"
	"bulkrename/pkg/types"

	"github.com/gobwas/glob"
)

// maxUndoDepth bounds the undo stack; the oldest batch is evicted first.
const maxUndoDepth = 10

// Engine orchestrates one directory's rename cycle. It is not safe for
// concurrent use: every operation is a sequential pass over the in-memory
// file list, driven from a single goroutine.
type Engine struct {
	directory  string
	extensions []string
	recursive  bool
	match      glob.Glob

	files    []*FileEntity
	op       config.Operation
	opValid  bool
	opErrors []string

	undoStack [][]types.RenamePair
	progress  types.ProgressFunc
	journal   *log.Journal
	policy    fsutil.NamePolicy
}

// New creates an engine with the strict default filename policy and an
// empty, unconfigured state.
func New() *Engine {
	return &Engine{
		opValid: true,
		policy:  fsutil.DefaultPolicy,
	}
}

// NewWithConfig creates an engine preloaded with the scan settings and
// operation from cfg. The operation's validity is recorded the same way
// Configure records it.
func NewWithConfig(cfg *config.Config) (*Engine, error) {
	e := New()
	if cfg.Scan.Directory != "" {
		if err := e.SetDirectory(cfg.Scan.Directory); err != nil {
			return nil, err
		}
	}
	e.SetExtensions(cfg.Scan.Extensions)
	e.SetRecursive(cfg.Scan.Recursive)
	if cfg.Scan.Match != "" {
		if err := e.SetMatch(cfg.Scan.Match); err != nil {
			return nil, err
		}
	}
	e.Configure(cfg.Operation)
	return e, nil
}

// SetDirectory sets the working directory after checking it exists, is a
// directory, and is readable.
func (e *Engine) SetDirectory(dir string) error {
	if err := fsutil.ValidDirectory(dir); err != nil {
		return err
	}
	e.directory = dir
	return nil
}

// Directory returns the current working directory.
func (e *Engine) Directory() string {
	return e.directory
}

// SetExtensions sets the comma-separated extension filter.
func (e *Engine) SetExtensions(s string) {
	e.extensions = fsutil.ParseExtensions(s)
}

// SetRecursive sets whether load descends into subdirectories.
func (e *Engine) SetRecursive(recursive bool) {
	e.recursive = recursive
}

// SetMatch sets an optional glob filter applied to base names.
func (e *Engine) SetMatch(pattern string) error {
	g, err := glob.Compile(pattern)
	if err != nil {
		return errors.Wrapf(err, "invalid match pattern %q", pattern)
	}
	e.match = g
	return nil
}

// SetProgressFunc sets the callback invoked after each individual file
// operation during Execute. The callback must not re-enter the engine.
func (e *Engine) SetProgressFunc(fn types.ProgressFunc) {
	e.progress = fn
}

// SetJournal attaches the append-only audit log.
func (e *Engine) SetJournal(j *log.Journal) {
	e.journal = j
}

// SetNamePolicy overrides the filename legality policy.
func (e *Engine) SetNamePolicy(p fsutil.NamePolicy) {
	e.policy = p
}

// Configure stores the operation snapshot. Invalid operations are stored
// anyway but flagged; Execute refuses to run while the flag is set.
func (e *Engine) Configure(op config.Operation) (bool, []string) {
	e.op = op
	e.opErrors = op.Validate()
	e.opValid = len(e.opErrors) == 0
	return e.opValid, e.opErrors
}

// Operation returns the configured operation snapshot.
func (e *Engine) Operation() config.Operation {
	return e.op
}

// LoadFiles scans the working directory and rebuilds the file list in
// sorted path order. On a directory access error the list comes back
// empty and the error is returned for display; it is already logged.
func (e *Engine) LoadFiles() error {
	paths, err := fsutil.Scan(e.directory, fsutil.ScanOptions{
		Extensions: e.extensions,
		Recursive:  e.recursive,
		Match:      e.match,
	})

	e.files = make([]*FileEntity, 0, len(paths))
	for _, p := range paths {
		e.files = append(e.files, NewFileEntity(p))
	}

	if err != nil {
		return err
	}
	log.Info("loaded %d files from %s", len(e.files), e.directory)
	return nil
}

// Files returns the loaded entities in their current order.
func (e *Engine) Files() []*FileEntity {
	out := make([]*FileEntity, len(e.files))
	copy(out, e.files)
	return out
}

// FileCount returns the number of loaded files.
func (e *Engine) FileCount() int {
	return len(e.files)
}

// Preview resets staged names, re-runs the configured operation, and
// returns display pairs. Calling it twice without mutating anything in
// between produces identical output.
func (e *Engine) Preview() []types.PreviewEntry {
	e.resetPending()
	applyOperation(e.files, e.op)

	entries := make([]types.PreviewEntry, 0, len(e.files))
	for _, f := range e.files {
		entries = append(entries, types.PreviewEntry{
			Original: f.DisplayName(),
			Proposed: f.ProposedName(),
		})
	}
	return entries
}

// Validate checks every pending rename: no two files may propose the same
// final name, and no proposed path may collide with an existing on-disk
// file other than the entity's own original path (a no-op rename is
// permitted). Returns human-readable messages, empty when clean.
func (e *Engine) Validate() []string {
	var errs []string
	seen := make(map[string]bool)

	for _, f := range e.files {
		if f.PendingName == "" {
			continue
		}

		proposed := f.ProposedName()
		if seen[proposed] {
			errs = append(errs, fmt.Sprintf("duplicate filename: %s", proposed))
		} else {
			seen[proposed] = true
		}

		newPath := f.NewPath()
		if newPath == f.OriginalPath {
			continue
		}
		if _, err := os.Stat(newPath); err == nil {
			errs = append(errs, fmt.Sprintf("target file already exists: %s", proposed))
		}
	}

	return errs
}

// Execute stages the configured operation, validates it, and performs the
// renames. Validation failures short-circuit before any filesystem
// mutation; per-file failures during the batch are collected and do not
// stop the remaining files. Successful pairs become one undo batch.
func (e *Engine) Execute() types.ExecuteResult {
	if !e.opValid {
		return types.ExecuteResult{Errors: e.opErrors}
	}

	e.Preview()

	if errs := e.Validate(); len(errs) > 0 {
		return types.ExecuteResult{Errors: errs}
	}

	var renamed []types.RenamePair
	var errs []string

	total := 0
	for _, f := range e.files {
		if f.PendingName != "" {
			total++
		}
	}

	completed := 0
	for _, f := range e.files {
		if f.PendingName == "" {
			continue
		}

		oldPath := f.OriginalPath
		newPath := f.NewPath()

		if err := e.safeRename(f); err != nil {
			msg := fmt.Sprintf("failed to rename %s: %v", f.DisplayName(), err)
			errs = append(errs, msg)
			e.journal.Record("ERROR %s", msg)
			log.Errorf("%s", msg)
		} else {
			renamed = append(renamed, types.RenamePair{NewPath: newPath, OldPath: oldPath})
			f.commit()
			e.journal.Record("RENAME %q -> %q", oldPath, newPath)
		}

		completed++
		if e.progress != nil {
			e.progress(completed, total)
		}
	}

	if len(renamed) > 0 {
		e.pushUndoBatch(renamed)
	}

	if len(errs) == 0 {
		log.Info("successfully renamed %d files", len(renamed))
	} else {
		log.Errorf("rename completed with %d errors", len(errs))
	}

	return types.ExecuteResult{Renamed: renamed, Errors: errs}
}

// safeRename performs one rename, re-checking filename legality and
// target non-existence immediately before the filesystem call. Validate
// already ran, but the directory may have changed underneath us.
func (e *Engine) safeRename(f *FileEntity) error {
	proposed := f.ProposedName()
	if !e.policy.LegalName(proposed) {
		return errors.NewFileError("illegal filename", proposed, errors.IllegalFilename, nil)
	}

	newPath := f.NewPath()
	if newPath != f.OriginalPath {
		if _, err := os.Stat(newPath); err == nil {
			return errors.NewFileError("target file already exists", newPath, errors.TargetExists, nil)
		}
	}

	if err := os.Rename(f.OriginalPath, newPath); err != nil {
		return errors.NewFileError("rename failed", f.OriginalPath, errors.RenameFailed, err)
	}
	return nil
}

func (e *Engine) pushUndoBatch(batch []types.RenamePair) {
	e.undoStack = append(e.undoStack, batch)
	if len(e.undoStack) > maxUndoDepth {
		e.undoStack = e.undoStack[1:]
	}
}

// CanUndo reports whether an undo batch is available.
func (e *Engine) CanUndo() bool {
	return len(e.undoStack) > 0
}

// UndoCount returns the number of undoable batches.
func (e *Engine) UndoCount() int {
	return len(e.undoStack)
}

// Undo pops the most recent batch and reverses its pairs in reverse
// insertion order, unwinding any chained renames correctly. A pair whose
// new path no longer exists is reported but does not block the rest. The
// batch is consumed either way, and the file list is reloaded afterwards
// so the in-memory view matches the disk.
func (e *Engine) Undo() (bool, error) {
	if len(e.undoStack) == 0 {
		return false, errors.New("no operations to undo")
	}

	batch := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]

	var errs []string
	for i := len(batch) - 1; i >= 0; i-- {
		pair := batch[i]
		if _, err := os.Stat(pair.NewPath); err != nil {
			msg := fmt.Sprintf("file not found: %s", pair.NewPath)
			errs = append(errs, msg)
			e.journal.Record("ERROR undo: %s", msg)
			continue
		}
		if err := os.Rename(pair.NewPath, pair.OldPath); err != nil {
			msg := fmt.Sprintf("could not undo rename for %s: %v", pair.NewPath, err)
			errs = append(errs, msg)
			e.journal.Record("ERROR undo: %s", msg)
			log.Errorf("%s", msg)
			continue
		}
		e.journal.Record("UNDO %q -> %q", pair.NewPath, pair.OldPath)
		log.Info("undone: %q back to %q", pair.NewPath, pair.OldPath)
	}

	// Reload regardless of outcome so the caller's view stays consistent
	// with whatever state the disk ended up in.
	if err := e.LoadFiles(); err != nil {
		log.Warnf("reload after undo failed: %v", err)
	}

	if len(errs) > 0 {
		return false, errors.NewFileError(strings.Join(errs, "; "), "", errors.UndoFailed, nil)
	}
	return true, nil
}

// ClearUndoStack drops every recorded batch.
func (e *Engine) ClearUndoStack() {
	e.undoStack = nil
}

// ResetOperation clears the configured operation and any staged names.
func (e *Engine) ResetOperation() {
	e.op = config.Operation{}
	e.opValid = true
	e.opErrors = nil
	e.resetPending()
}

func (e *Engine) resetPending() {
	for _, f := range e.files {
		f.PendingName = ""
	}
}

// Stats summarizes the engine state.
func (e *Engine) Stats() types.Stats {
	exts := make(map[string]bool)
	dirs := make(map[string]bool)
	pending := 0
	for _, f := range e.files {
		exts[f.Extension] = true
		dirs[f.Directory] = true
		if f.PendingName != "" {
			pending++
		}
	}
	return types.Stats{
		TotalFiles:       len(e.files),
		FilesWithChanges: pending,
		UniqueExtensions: len(exts),
		Directories:      len(dirs),
		UndoBatches:      len(e.undoStack),
		Configured:       e.op.IsConfigured(),
	}
}
