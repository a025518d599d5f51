package main

import (
	"fmt"
	"strings"

	"bulkrename/internal/config"
	"bulkrename/internal/log"
	"bulkrename/internal/pattern"
	"bulkrename/internal/rename"
	"bulkrename/pkg/types"

	"github.com/spf13/cobra"
)

// addOperationFlags registers the transform flags shared by the preview,
// rename, and watch commands.
func addOperationFlags(cmd *cobra.Command) {
	cmd.Flags().String("prefix", "", "prefix to add")
	cmd.Flags().String("suffix", "", "suffix to add")
	cmd.Flags().BoolP("number", "n", false, "add sequential numbers")
	cmd.Flags().Int("start", config.DefaultStart, "starting number")
	cmd.Flags().Int("padding", config.DefaultPadding, "zero-pad width")
	cmd.Flags().String("find", "", "text to find")
	cmd.Flags().String("replace", "", "replacement text")
	cmd.Flags().BoolP("ignore-case", "i", false, "case-insensitive find/replace")
	cmd.Flags().Bool("date", false, "append a date stamp")
	cmd.Flags().String("date-source", string(types.DateCreation), "date source: creation, modification, or exif")
	cmd.Flags().String("date-format", config.DefaultDateFormat, "strftime-style date format")
	cmd.Flags().StringP("pattern", "p", "", "naming pattern, e.g. '{prefix}{name}-{num}'")
	cmd.Flags().String("sort", "", "order files by: name, path, extension, size, or date")
	cmd.Flags().Bool("sort-reverse", false, "reverse the sort order")
}

// operationFromFlags overlays explicitly set flags onto the configured
// operation.
func operationFromFlags(cmd *cobra.Command) (config.Operation, error) {
	op := cfg.Operation

	flags := cmd.Flags()
	if flags.Changed("prefix") {
		op.Prefix, _ = flags.GetString("prefix")
	}
	if flags.Changed("suffix") {
		op.Suffix, _ = flags.GetString("suffix")
	}
	if flags.Changed("number") {
		op.Numbering.Enabled, _ = flags.GetBool("number")
	}
	if flags.Changed("start") {
		op.Numbering.Start, _ = flags.GetInt("start")
	}
	if flags.Changed("padding") {
		op.Numbering.Padding, _ = flags.GetInt("padding")
	}
	if flags.Changed("find") {
		op.Replace.Find, _ = flags.GetString("find")
	}
	if flags.Changed("replace") {
		op.Replace.With, _ = flags.GetString("replace")
	}
	if flags.Changed("ignore-case") {
		ignore, _ := flags.GetBool("ignore-case")
		op.Replace.CaseSensitive = !ignore
	}
	if flags.Changed("date") {
		op.Date.Enabled, _ = flags.GetBool("date")
	}
	if flags.Changed("date-source") {
		src, _ := flags.GetString("date-source")
		op.Date.Source = types.DateSource(src)
	}
	if flags.Changed("date-format") {
		op.Date.Format, _ = flags.GetString("date-format")
	}
	if flags.Changed("pattern") {
		raw, _ := flags.GetString("pattern")
		seq, err := pattern.Parse(raw)
		if err != nil {
			return op, err
		}
		op.UsePattern = true
		op.Pattern = seq.List()
	}

	return op, nil
}

// buildEngine constructs a configured engine from the loaded config and
// command flags, loads the file list, and attaches the audit journal.
func buildEngine(cmd *cobra.Command) (*rename.Engine, error) {
	op, err := operationFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	cfg.Operation = op

	engine, err := rename.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Settings.LogFile != "" {
		journal, err := log.OpenJournal(cfg.Settings.LogFile)
		if err != nil {
			log.Warnf("audit log disabled: %v", err)
		} else {
			engine.SetJournal(journal)
		}
	}

	if err := engine.LoadFiles(); err != nil {
		return nil, err
	}

	if flags := cmd.Flags(); flags.Changed("sort") {
		key, _ := flags.GetString("sort")
		reverse, _ := flags.GetBool("sort-reverse")
		engine.SortFiles(types.SortKey(key), reverse)
	}

	return engine, nil
}

// printPreview writes the original -> proposed table and returns the
// number of staged changes.
func printPreview(engine *rename.Engine) int {
	entries := engine.Preview()

	width := 0
	for _, e := range entries {
		if len(e.Original) > width {
			width = len(e.Original)
		}
	}

	changed := 0
	for _, e := range entries {
		marker := " "
		if e.Changed() {
			marker = "*"
			changed++
		}
		fmt.Printf("%s %-*s -> %s\n", marker, width, e.Original, e.Proposed)
	}
	fmt.Printf("%d files, %d changes staged\n", len(entries), changed)
	return changed
}

func printErrors(errs []string) {
	for _, e := range errs {
		fmt.Println("  -", e)
	}
}

func joinErrors(errs []string) string {
	return strings.Join(errs, "; ")
}
