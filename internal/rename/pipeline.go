package rename

import (
	"fmt"
	"regexp"
	"strings"

	"bulkrename/internal/config"
	"bulkrename/internal/fsutil"
	"bulkrename/internal/log"
	"bulkrename/internal/pattern"
)

// applyOperation stages a proposed name on every file. Standard mode runs
// the transforms in a fixed order, each stage reading the previous
// stage's output; pattern mode renders through the pattern engine with
// find/replace as a pre-step on the original base name.
func applyOperation(files []*FileEntity, op config.Operation) {
	if op.UsePattern {
		applyPattern(files, op)
		return
	}

	if op.Replace.Find != "" {
		applyReplace(files, op.Replace.Find, op.Replace.With, op.Replace.CaseSensitive)
	}
	if op.Prefix != "" || op.Suffix != "" {
		applyAffix(files, op.Prefix, op.Suffix)
	}
	if op.Numbering.Enabled {
		applyNumbering(files, op.Numbering.Start, op.Numbering.Padding)
	}
	if op.Date.Enabled {
		applyDate(files, op)
	}
}

// applyReplace is the first stage, so it always reads the original base
// name rather than the working name.
func applyReplace(files []*FileEntity, find, with string, caseSensitive bool) {
	for _, f := range files {
		f.PendingName = replaceText(f.BaseName, find, with, caseSensitive)
	}
}

// replaceText substitutes every occurrence of find, treating it as
// literal text in both modes.
func replaceText(name, find, with string, caseSensitive bool) string {
	if caseSensitive {
		return strings.ReplaceAll(name, find, with)
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(find))
	if err != nil {
		log.Errorf("find/replace failed for %q: %v", find, err)
		return name
	}
	return re.ReplaceAllLiteralString(name, with)
}

func applyAffix(files []*FileEntity, prefix, suffix string) {
	for _, f := range files {
		f.PendingName = prefix + f.workingName() + suffix
	}
}

// applyNumbering appends "_NNN" where the number is start plus the file's
// zero-based position in the loaded list.
func applyNumbering(files []*FileEntity, start, padding int) {
	for i, f := range files {
		f.PendingName = fmt.Sprintf("%s_%0*d", f.workingName(), padding, start+i)
	}
}

// applyDate appends "_<date>". Files with no obtainable date keep their
// name from the prior stages; that is a per-file skip, not a batch error.
func applyDate(files []*FileEntity, op config.Operation) {
	for _, f := range files {
		dateStr := fsutil.DateFor(f.OriginalPath, op.Date.Source, op.Date.Format)
		if dateStr == "" {
			continue
		}
		f.PendingName = f.workingName() + "_" + dateStr
	}
}

func applyPattern(files []*FileEntity, op config.Operation) {
	seq, err := pattern.FromList(op.Pattern)
	if err != nil {
		log.Errorf("cannot apply pattern: %v", err)
		return
	}

	for i, f := range files {
		values := map[string]string{
			pattern.PhPrefix: op.Prefix,
			pattern.PhSuffix: op.Suffix,
		}
		if op.Numbering.Enabled {
			values[pattern.PhNum] = fmt.Sprintf("%0*d", op.Numbering.Padding, op.Numbering.Start+i)
		}
		if op.Date.Enabled {
			values[pattern.PhDate] = fsutil.DateFor(f.OriginalPath, op.Date.Source, op.Date.Format)
		}

		name := f.BaseName
		if op.Replace.Find != "" {
			name = replaceText(name, op.Replace.Find, op.Replace.With, op.Replace.CaseSensitive)
		}
		values[pattern.PhName] = name

		f.PendingName = seq.Render(values, "")
	}
}
