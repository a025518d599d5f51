package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Preview, confirm, and execute the rename batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine(cmd)
			if err != nil {
				return err
			}

			if ok, errs := engine.Configure(cfg.Operation); !ok {
				fmt.Println("configuration errors:")
				printErrors(errs)
				return fmt.Errorf("invalid configuration")
			}

			if !cfg.Operation.IsConfigured() {
				return fmt.Errorf("no renaming operation configured; see --help for the available transforms")
			}

			changed := printPreview(engine)
			if changed == 0 {
				fmt.Println("nothing to rename")
				return nil
			}

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !confirm(fmt.Sprintf("Rename %d files?", changed)) {
				fmt.Println("aborted")
				return nil
			}

			engine.SetProgressFunc(func(completed, total int) {
				fmt.Printf("\r%d/%d", completed, total)
			})

			result := engine.Execute()
			fmt.Println()
			fmt.Printf("renamed %d files\n", len(result.Renamed))
			if !result.Success() {
				fmt.Printf("%d errors:\n", len(result.Errors))
				printErrors(result.Errors)
			}

			if len(result.Renamed) > 0 && !yes && confirm("Undo this batch?") {
				if ok, err := engine.Undo(); !ok {
					return fmt.Errorf("undo failed: %v", err)
				}
				fmt.Println("batch undone")
			}

			if result.Success() {
				return nil
			}
			return fmt.Errorf("completed with errors: %s", joinErrors(result.Errors))
		},
	}
	addOperationFlags(cmd)
	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompts")
	return cmd
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
