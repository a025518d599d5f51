package types

import "fmt"

// RenamePair records one rename as (NewPath, OldPath). Execute results and
// undo batches are ordered sequences of these.
type RenamePair struct {
	NewPath string `json:"new_path"`
	OldPath string `json:"old_path"`
}

// PreviewEntry is one row of a preview: display names only, no paths.
type PreviewEntry struct {
	Original string `json:"original"`
	Proposed string `json:"proposed"`
}

// Changed reports whether the entry stages an actual rename.
func (p PreviewEntry) Changed() bool {
	return p.Original != p.Proposed
}

// ExecuteResult holds the outcome of one execute call.
type ExecuteResult struct {
	Renamed []RenamePair `json:"renamed"`
	Errors  []string     `json:"errors,omitempty"`
}

// Success reports whether every staged rename went through.
func (r ExecuteResult) Success() bool {
	return len(r.Errors) == 0
}

// Stats summarizes the engine state for display.
type Stats struct {
	TotalFiles       int  `json:"total_files"`
	FilesWithChanges int  `json:"files_with_changes"`
	UniqueExtensions int  `json:"unique_extensions"`
	Directories      int  `json:"directories"`
	UndoBatches      int  `json:"undo_batches"`
	Configured       bool `json:"operation_configured"`
}

// String returns a human-readable representation.
func (s Stats) String() string {
	return fmt.Sprintf("files: %d, pending: %d, extensions: %d, directories: %d, undoable batches: %d",
		s.TotalFiles, s.FilesWithChanges, s.UniqueExtensions, s.Directories, s.UndoBatches)
}

// ProgressFunc is invoked after each individual file operation during
// execute with (completed, total). It runs on the calling goroutine; the
// callback must not re-enter the engine.
type ProgressFunc func(completed, total int)

// DateSource selects where a file's date is read from.
type DateSource string

const (
	DateCreation     DateSource = "creation"
	DateModification DateSource = "modification"
	DateExif         DateSource = "exif"
)

// Valid reports whether s is a known date source.
func (s DateSource) Valid() bool {
	switch s {
	case DateCreation, DateModification, DateExif:
		return true
	}
	return false
}

// SortKey selects the ordering of the loaded file list.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPath      SortKey = "path"
	SortByExtension SortKey = "extension"
	SortBySize      SortKey = "size"
	SortByDate      SortKey = "date"
)
