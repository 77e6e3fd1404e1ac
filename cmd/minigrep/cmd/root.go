// Package cmd provides the CLI command for minigrep.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/minigrep/internal/config"
	"github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/logging"
	"github.com/Aman-CERP/minigrep/internal/output"
	"github.com/Aman-CERP/minigrep/internal/runner"
	"github.com/Aman-CERP/minigrep/pkg/version"
)

// rootOptions holds CLI flags.
type rootOptions struct {
	ignoreCase bool
	format     string // "text", "json", "yaml"
	debug      bool
	logFile    string
}

// NewRootCmd creates the root command. The root command is the search.
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "minigrep [flags] <query> <file>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep reads a file and prints every line containing the query.

Matching is case-sensitive unless -i is given or the CASE_INSENSITIVE
environment variable is set. Case folding covers ASCII letters only.

Examples:
  minigrep duct poem.txt
  minigrep -i rust poem.txt
  CASE_INSENSITIVE=1 minigrep rust poem.txt
  minigrep --format json to poem.txt`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}

	cmd.SetVersionTemplate(version.String() + "\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.ConfigurationError(errors.ErrCodeInvalidArgument, err.Error()).
			WithSuggestion("run 'minigrep --help' for usage")
	})

	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Case-insensitive search (ASCII letters)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging to ~/.minigrep/logs/")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file (implies file logging)")

	return cmd
}

// runSearch resolves flags and environment into a SearchConfig, then runs it.
// Every configuration error is reported before the file is touched.
func runSearch(cmd *cobra.Command, args []string, opts rootOptions) error {
	searchCfg, err := config.New(args, opts.ignoreCase, os.LookupEnv)
	if err != nil {
		return err
	}
	if note := config.IgnoreCaseNote(opts.ignoreCase, os.LookupEnv); note != "" {
		output.NewAuto(cmd.ErrOrStderr()).Warning(note)
	}

	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	sink, err := output.NewSink(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger, cleanup, err := setupLogging(cmd, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	r := runner.New(sink, runner.WithLogger(logger))
	if err := r.Run(searchCfg); err != nil {
		logger.Debug("run_failed",
			slog.String("error_code", errors.GetCode(err)),
			slog.Bool("fatal", errors.IsFatal(err)))
		return err
	}
	return nil
}

// setupLogging builds the logger for one invocation. Without --debug or
// --log-file only warnings and errors reach stderr.
func setupLogging(cmd *cobra.Command, opts rootOptions) (*slog.Logger, func(), error) {
	level, err := config.LogLevel(os.LookupEnv)
	if err != nil {
		return nil, nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	if opts.debug {
		logCfg = logging.DebugConfig()
	}
	if opts.logFile != "" {
		logCfg.FilePath = opts.logFile
	}
	logCfg.Stderr = cmd.ErrOrStderr()

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, nil, errors.ConfigurationError(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("failed to set up logging: %v", err))
	}

	if opts.debug {
		logger.Debug("debug_logging_enabled",
			slog.String("log_file", logCfg.FilePath),
			slog.String("version", version.Short()))
	}
	return logger, cleanup, nil
}
