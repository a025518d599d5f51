package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for the loaded file set",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine(cmd)
			if err != nil {
				return err
			}
			engine.Configure(cfg.Operation)
			engine.Preview()

			stats := engine.Stats()
			fmt.Printf("directory:      %s\n", engine.Directory())
			fmt.Printf("total files:    %d\n", stats.TotalFiles)
			fmt.Printf("pending:        %d\n", stats.FilesWithChanges)
			fmt.Printf("extensions:     %d\n", stats.UniqueExtensions)
			fmt.Printf("directories:    %d\n", stats.Directories)
			fmt.Printf("configured:     %v\n", stats.Configured)
			return nil
		},
	}
	addOperationFlags(cmd)
	return cmd
}
