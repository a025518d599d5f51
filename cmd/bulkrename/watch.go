package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bulkrename/internal/log"
	"bulkrename/internal/watch"

	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reload and re-preview whenever the directory changes",
		Long: `Watches the target directory and re-prints the rename preview each time
its contents change on disk. Nothing is renamed; stop with Ctrl-C and run
'rename' when the preview looks right.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine(cmd)
			if err != nil {
				return err
			}
			engine.Configure(cfg.Operation)

			notifier, err := watch.New(engine.Directory())
			if err != nil {
				return err
			}
			notifier.Start()
			defer notifier.Stop()

			printPreview(engine)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			fmt.Printf("watching %s (Ctrl-C to stop)\n", engine.Directory())
			for {
				select {
				case <-notifier.Changes():
					if err := engine.LoadFiles(); err != nil {
						log.Warnf("reload failed: %v", err)
						continue
					}
					fmt.Println()
					printPreview(engine)
				case <-sigChan:
					fmt.Println()
					return nil
				}
			}
		},
	}
	addOperationFlags(cmd)
	return cmd
}
