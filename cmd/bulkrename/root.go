package main

import (
	"bulkrename/internal/config"
	"bulkrename/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bulkrename",
		Short: "Batch-rename files with preview and undo",
		Long: `bulkrename renames batches of files according to configurable rules:
prefix/suffix, sequential numbering, find/replace, date-stamping, or an
ordered token pattern. Every run previews the full mapping before anything
touches the disk, and the last batch can be undone.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfigFile(cfgFile)
			if err != nil {
				return err
			}
			applyScanFlags(cmd)
			if debug, _ := cmd.Flags().GetBool("debug"); debug || cfg.Settings.Debug {
				log.SetDebug(true)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringP("dir", "d", ".", "directory to load files from")
	rootCmd.PersistentFlags().StringP("ext", "e", "", "comma-separated extension filter (default: common image types)")
	rootCmd.PersistentFlags().BoolP("recursive", "r", false, "include subdirectories")
	rootCmd.PersistentFlags().StringP("match", "m", "", "glob applied to base names (e.g. 'IMG_*')")
	rootCmd.PersistentFlags().Bool("debug", false, "verbose logging")

	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newRenameCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newWatchCmd())

	return rootCmd
}

// applyScanFlags copies explicitly set scan flags over the loaded config.
func applyScanFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("dir") || cfg.Scan.Directory == "" {
		cfg.Scan.Directory, _ = cmd.Flags().GetString("dir")
	}
	if cmd.Flags().Changed("ext") {
		cfg.Scan.Extensions, _ = cmd.Flags().GetString("ext")
	}
	if cmd.Flags().Changed("recursive") {
		cfg.Scan.Recursive, _ = cmd.Flags().GetBool("recursive")
	}
	if cmd.Flags().Changed("match") {
		cfg.Scan.Match, _ = cmd.Flags().GetString("match")
	}
}
