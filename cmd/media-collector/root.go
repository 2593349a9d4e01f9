package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"media-collector/internal/logging"
	"media-collector/internal/startup"
)

// NewRootCommand creates and returns the root cobra command for media-collector
func NewRootCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "media-collector",
		Short: "Find mp3 and mp4 files under a set of paths",
		Long: `media-collector expands files and directories into the list of mp3/mp4
files reachable from them. Directories are walked concurrently, symbolic
links are followed, and every file is reported once under its resolved
absolute path, however many routes lead to it.

Run it once with "collect", or as an HTTP service with "serve".`,
		Version: startup.Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if logLevel == "" {
				return nil
			}
			level, ok := logging.ParseLevel(logLevel)
			if !ok {
				return fmt.Errorf("invalid --log-level %q (want debug, info, warn or error)", logLevel)
			}
			logging.SetLevel(level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from LOG_LEVEL)")

	cmd.AddCommand(NewCollectCommand())
	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
