package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"media-collector/internal/collector"
	"media-collector/internal/handlers"
	"media-collector/internal/mediatypes"
)

type collectOptions struct {
	report  bool
	json    bool
	workers int
	noColor bool
}

// NewCollectCommand creates the collect subcommand
func NewCollectCommand() *cobra.Command {
	var opts collectOptions

	cmd := &cobra.Command{
		Use:   "collect <path>...",
		Short: "Print every mp3/mp4 file reachable from the given paths",
		Long: `Expand each path into the media files reachable from it and print one
resolved absolute path per line. Directories are walked recursively and
symbolic links are followed; files reachable by several routes are printed
once. Unreadable paths are skipped.

Exit code: 0 if at least one file was found, 1 with "No valid files" otherwise`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollect(opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVar(&opts.report, "report", false, "Print skipped paths and a summary to stderr")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the result as JSON, including diagnostics when --report is set")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Concurrent filesystem calls (0 = COLLECT_WORKERS or 2 per CPU)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runCollect(opts collectOptions, paths []string, stdout, stderr io.Writer) error {
	if opts.noColor || !isTerminal(stderr) {
		color.NoColor = true
	}

	config := collector.DefaultConfig()
	if opts.workers > 0 {
		config.IOWorkers = opts.workers
	}

	report, err := collector.New(config).CollectAllWithReport(paths)
	if err != nil && !errors.Is(err, collector.ErrNoValidFiles) {
		return err
	}

	if opts.json {
		if encErr := writeCollectJSON(stdout, report, err, opts.report); encErr != nil {
			return encErr
		}
	} else {
		for _, f := range report.Files {
			fmt.Fprintln(stdout, f)
		}
	}

	if opts.report {
		printReport(stderr, report)
	}

	return err
}

func writeCollectJSON(w io.Writer, report *collector.Report, err error, includeReport bool) error {
	var payload any
	if err != nil {
		resp := handlers.CollectErrorResponse{Error: err.Error(), InvocationID: report.InvocationID}
		if includeReport {
			resp.Report = report
		}
		payload = resp
	} else {
		resp := handlers.CollectResponse{Files: report.Files, InvocationID: report.InvocationID}
		if includeReport {
			resp.Report = report
		}
		payload = resp
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func printReport(w io.Writer, report *collector.Report) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	for _, s := range report.Skipped {
		yellow.Fprintf(w, "skipped ")
		if s.Error != "" {
			fmt.Fprintf(w, "%s (%s: %s)\n", s.Path, s.Reason, s.Error)
		} else {
			fmt.Fprintf(w, "%s (%s)\n", s.Path, s.Reason)
		}
	}

	bold.Fprintf(w, "\nCollect %s\n", report.InvocationID)
	found := green
	if len(report.Files) == 0 {
		found = red
	}
	found.Fprintf(w, "  files:       %d", len(report.Files))
	fmt.Fprintf(w, " (audio %d, video %d)\n",
		report.FilesByType[mediatypes.FileTypeAudio], report.FilesByType[mediatypes.FileTypeVideo])
	fmt.Fprintf(w, "  roots:       %d\n", report.Roots)
	fmt.Fprintf(w, "  directories: %d\n", report.DirectoriesVisited)
	fmt.Fprintf(w, "  duplicates:  %d\n", report.Duplicates)
	fmt.Fprintf(w, "  ignored:     %d\n", report.FilesIgnored)
	skipped := fmt.Sprintf("  skipped:     %d\n", len(report.Skipped))
	if len(report.Skipped) > 0 {
		yellow.Fprint(w, skipped)
	} else {
		fmt.Fprint(w, skipped)
	}
	fmt.Fprintf(w, "  duration:    %v\n", report.Duration)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
