package main

import (
	"time"

	"github.com/spf13/cobra"
)

type exportFlags struct {
	output   string
	timeout  time.Duration
	logLevel string
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags exportFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "takeout <token>",
		Short: "Export Somtoday grades to JSON files",
		Long: "Export every placement, subject average and grade list visible to a Somtoday\n" +
			"bearer token into <output>/<year>/averages.json, subjects/ and exam_grades/.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, ctx, args[0], flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output directory (default \"somtoday_takeout\")")
	rootCmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "Per-request timeout, e.g. 30s (0 disables)")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
