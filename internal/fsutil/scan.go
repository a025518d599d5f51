// Package fsutil holds the filesystem-facing utilities: directory
// scanning, date extraction, and filename legality checks.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bulkrename/internal/errors"
	"bulkrename/internal/log"

	"github.com/gobwas/glob"
)

// ScanOptions narrows a directory scan.
type ScanOptions struct {
	// Extensions is the suffix filter, matched case-insensitively.
	// Empty means every regular file matches.
	Extensions []string
	// Recursive walks the full subtree instead of direct children only.
	Recursive bool
	// Match is an optional glob applied to the base name (e.g. "IMG_*").
	Match glob.Glob
}

// Scan lists the files under directory that pass the options, sorted
// lexicographically by full path. A directory-level access error fails
// soft: the error is logged and returned alongside an empty slice, so the
// caller can surface it without aborting.
func Scan(directory string, opts ScanOptions) ([]string, error) {
	if directory == "" {
		return nil, errors.NewFileError("directory not set", "", errors.DirectoryAccess, nil)
	}

	exts := make([]string, 0, len(opts.Extensions))
	for _, e := range opts.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}

	matches := func(name string) bool {
		if opts.Match != nil && !opts.Match.Match(name) {
			return false
		}
		if len(exts) == 0 {
			return true
		}
		lower := strings.ToLower(name)
		for _, e := range exts {
			if strings.HasSuffix(lower, e) {
				return true
			}
		}
		return false
	}

	var files []string
	var scanErr error

	if opts.Recursive {
		scanErr = filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip unreadable subtrees, but fail the scan if the
				// root itself is inaccessible.
				if path == directory {
					return err
				}
				log.Warnf("skipping %s: %v", path, err)
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if matches(d.Name()) {
				files = append(files, path)
			}
			return nil
		})
	} else {
		entries, err := os.ReadDir(directory)
		if err != nil {
			scanErr = err
		}
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			if matches(entry.Name()) {
				files = append(files, filepath.Join(directory, entry.Name()))
			}
		}
	}

	if scanErr != nil {
		log.Errorf("error accessing directory %s: %v", directory, scanErr)
		return nil, errors.NewFileError("error accessing directory", directory, errors.DirectoryAccess, scanErr)
	}

	sort.Strings(files)
	return files, nil
}

// ParseExtensions splits a comma-separated extension list, trimming
// whitespace and dropping empty entries. Entries keep or gain their
// leading dot during the scan itself.
func ParseExtensions(s string) []string {
	if s == "" {
		return nil
	}
	var exts []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			exts = append(exts, part)
		}
	}
	return exts
}

// ValidDirectory checks that path exists, is a directory, and is readable.
func ValidDirectory(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("directory path cannot be empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return errors.NewFileError("directory does not exist", path, errors.DirectoryAccess, err)
	}
	if !info.IsDir() {
		return errors.NewFileError("path is not a directory", path, errors.DirectoryAccess, nil)
	}
	if _, err := os.ReadDir(path); err != nil {
		return errors.NewFileError("permission denied to access directory", path, errors.DirectoryAccess, err)
	}
	return nil
}
