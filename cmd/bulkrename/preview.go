package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the rename mapping without touching the disk",
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

			printPreview(engine)

			if errs := engine.Validate(); len(errs) > 0 {
				fmt.Println("validation errors:")
				printErrors(errs)
			}
			return nil
		},
	}
	addOperationFlags(cmd)
	return cmd
}
