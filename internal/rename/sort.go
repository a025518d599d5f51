package rename

import (
	"os"
	"sort"

	"bulkrename/pkg/types"
)

// SortFiles reorders the loaded list, which also changes numbering order
// on the next preview. Size and date fall back to zero for files that
// vanished from disk.
func (e *Engine) SortFiles(key types.SortKey, reverse bool) {
	var less func(a, b *FileEntity) bool

	switch key {
	case types.SortByName:
		less = func(a, b *FileEntity) bool { return a.BaseName < b.BaseName }
	case types.SortByExtension:
		less = func(a, b *FileEntity) bool { return a.Extension < b.Extension }
	case types.SortBySize:
		less = func(a, b *FileEntity) bool { return fileSize(a.OriginalPath) < fileSize(b.OriginalPath) }
	case types.SortByDate:
		less = func(a, b *FileEntity) bool { return fileMtime(a.OriginalPath) < fileMtime(b.OriginalPath) }
	default:
		less = func(a, b *FileEntity) bool { return a.OriginalPath < b.OriginalPath }
	}

	sort.SliceStable(e.files, func(i, j int) bool {
		if reverse {
			return less(e.files[j], e.files[i])
		}
		return less(e.files[i], e.files[j])
	})
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

func fileMtime(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().UnixNano()
}
