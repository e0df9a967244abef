package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/enova-tools/hrexport/internal/config"
	"github.com/enova-tools/hrexport/internal/logging"
	"github.com/enova-tools/hrexport/internal/pipeline"
	"github.com/enova-tools/hrexport/internal/textfile"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		// Pipeline failures were already logged with their run_id;
		// anything else is a usage problem surfaced here.
		if !errors.Is(err, errRunFailed) {
			slog.Error("invalid invocation", "error", err)
		}
		os.Exit(1)
	}
}

// errRunFailed marks an error that the run-scoped logger already reported.
var errRunFailed = errors.New("run failed")

func newRootCmd(cfg *config.Config) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "hrexport",
		Short: "Utilities for enova365 HR-export text files",
		Long: "hrexport works with the tab-delimited personnel exports produced by enova365.\n" +
			"Use convert to re-encode a UTF-16 export as cleaned UTF-8, and compare to diff\n" +
			"two exports keyed by the Kod column.",
		// Errors are reported through the structured log, not cobra's
		// own printer.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := cfg.Logging.Level
			if verbose {
				level = "debug"
			}
			logging.Setup(level, cfg.Logging.Format)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging for this run")
	root.AddCommand(newConvertCmd(cfg), newCompareCmd(cfg))
	return root
}

func newConvertCmd(cfg *config.Config) *cobra.Command {
	var path string
	var showTable bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-encode a UTF-16 export as UTF-8, keeping only well-formed rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewRun("convert")

			_, err := pipeline.Convert(cfg, logger, cmd.OutOrStdout(), pipeline.ConvertOptions{
				Path:      path,
				ShowTable: showTable,
			})
			if err != nil {
				// The converter reports failures through the log and
				// exits cleanly; nothing downstream consumes its exit
				// status.
				logFailure(logger, "conversion aborted", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Path to the UTF-16 input file (required)")
	cmd.Flags().BoolVarP(&showTable, "table", "t", false, "Print accepted rows as a console table")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func newCompareCmd(cfg *config.Config) *cobra.Command {
	var first, second string
	var showTables bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two exports keyed by Kod and report the differences",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewRun("compare")

			_, err := pipeline.Compare(cfg, logger, cmd.OutOrStdout(), pipeline.CompareOptions{
				First:      first,
				Second:     second,
				ShowTables: showTables,
			})
			if err != nil {
				// Unlike convert, a failed comparison exits non-zero so
				// scripted callers can tell the runs apart.
				logFailure(logger, "comparison aborted", err)
				return errRunFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "file1", "", "Path to the first file (required)")
	cmd.Flags().StringVar(&second, "file2", "", "Path to the second file (required)")
	cmd.Flags().BoolVarP(&showTables, "tables", "t", false, "Print diff tables to the console")
	_ = cmd.MarkFlagRequired("file1")
	_ = cmd.MarkFlagRequired("file2")

	return cmd
}

// logFailure logs a run-ending error, distinguishing the known file-level
// failures from anything unexpected.
func logFailure(logger *slog.Logger, msg string, err error) {
	switch {
	case errors.Is(err, textfile.ErrMissing),
		errors.Is(err, textfile.ErrEmpty),
		errors.Is(err, textfile.ErrTooLarge),
		errors.Is(err, textfile.ErrDecode):
		logger.Error(msg, "error", err)
	default:
		logger.Error(msg, "error", err, "unexpected", true)
	}
}
