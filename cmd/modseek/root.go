// SPDX-License-Identifier: MPL-2.0

// modseek is a fallback resolver for dynamically loadable modules and
// locale-specific resource bundles.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/modseek/modseek/internal/config"
	"github.com/modseek/modseek/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables diagnostic output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without subcommands
	rootCmd = &cobra.Command{
		Use:   "modseek",
		Short: "A fallback resolver for dynamically loadable modules",
		Long: TitleStyle.Render("modseek") + SubtitleStyle.Render(" - a fallback resolver for loadable modules") + `

modseek locates dynamically loadable modules and locale-specific
resource bundles across a prioritized list of search directories.
Search paths and locale roots come from the configuration file
(CUE format) and can be overridden through MODSEEK_* environment
variables.

` + SubtitleStyle.Render("Examples:") + `
  modseek resolve Foo                                Resolve a plain module
  modseek resolve "App.resources, Version=1.0, Culture=fr"
  modseek paths                                      List registered paths
  modseek config init                                Create a default config
  modseek watch Foo                                  Re-resolve on config change`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the per-user config directory)")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(watchCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. Called by main.main().
func Execute() {
	// fang.Execute provides the styled help/version/error surface.
	// Version goes through fang.WithVersion since fang overrides
	// rootCmd.Version.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig loads the configuration and wires the process-wide logger.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Config loading problems are surfaced but never abort the CLI;
		// defaults still allow every command to run.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if cfg != nil && !verbose {
		verbose = cfg.Verbose
	}

	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
		Level:           level,
	})
	slog.SetDefault(slog.New(logger))
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their Format method; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
