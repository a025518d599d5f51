package rename

import (
	"path/filepath"
	"strings"
)

// FileEntity is one file in the working set. Directory, BaseName and
// Extension are derived once from OriginalPath at load time. PendingName
// holds the proposed base name (no extension) until committed or reset.
type FileEntity struct {
	Directory    string
	BaseName     string
	Extension    string
	OriginalPath string
	PendingName  string
}

// NewFileEntity derives an entity from a full path.
func NewFileEntity(path string) *FileEntity {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return &FileEntity{
		Directory:    filepath.Dir(path),
		BaseName:     strings.TrimSuffix(base, ext),
		Extension:    ext,
		OriginalPath: path,
	}
}

// DisplayName returns the current on-disk filename.
func (f *FileEntity) DisplayName() string {
	return f.BaseName + f.Extension
}

// ProposedName returns the staged filename, or the current one when no
// change is staged.
func (f *FileEntity) ProposedName() string {
	if f.PendingName == "" {
		return f.DisplayName()
	}
	return f.PendingName + f.Extension
}

// NewPath returns the full path the pending rename points at, or the
// original path when nothing is staged.
func (f *FileEntity) NewPath() string {
	if f.PendingName == "" {
		return f.OriginalPath
	}
	return filepath.Join(f.Directory, f.PendingName+f.Extension)
}

// workingName is the input to the next pipeline stage: the staged name
// if a prior stage set one, else the original base name.
func (f *FileEntity) workingName() string {
	if f.PendingName != "" {
		return f.PendingName
	}
	return f.BaseName
}

// commit updates the entity's identity after a successful rename so it
// reflects the new on-disk state; undo chaining within a session depends
// on this.
func (f *FileEntity) commit() {
	f.OriginalPath = f.NewPath()
	f.BaseName = f.PendingName
	f.PendingName = ""
}
