package main

import (
	"fmt"
	"os"

	"github.com/gubarz/untt/internal/config"
	"github.com/gubarz/untt/internal/filter"
	"github.com/gubarz/untt/internal/logging"
	"github.com/gubarz/untt/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0"

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "untt <input> <output>",
	Short: `Strip \texttt{} markup from a text file`,
	Long: `Reads <input>, replaces every \texttt{X} with X and writes the
result to <output>, creating or overwriting it.

Nested braces are not balanced: the first closing brace ends the match.`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(config.GetLogLevel())
		if err != nil {
			// Diagnostics only; a bad level never stops the run.
			fmt.Fprintf(os.Stderr, "Warning: %v, using %q\n", err, config.DefaultLogLevel)
			logger, err = logging.New(config.DefaultLogLevel)
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runFilter,
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
	ui.RefreshStyles()
}

func runFilter(cmd *cobra.Command, args []string) error {
	// Past argument validation; I/O failures don't need the usage text.
	cmd.SilenceUsage = true

	if logger == nil {
		logger = zap.NewNop()
	}

	inPath, outPath := args[0], args[1]
	res, err := filter.File(inPath, outPath, logger)
	if err != nil {
		return err
	}

	logger.Info("Filtered file",
		zap.String("input", inPath),
		zap.String("output", outPath),
		zap.Int("replacements", res.Replacements))
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err))
		os.Exit(1)
	}
}
