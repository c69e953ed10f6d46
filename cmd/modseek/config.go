// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modseek/modseek/internal/config"
	"github.com/modseek/modseek/internal/issue"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage modseek configuration",
	Long: `Manage modseek configuration.

Configuration is stored in:
  - Linux: ~/.config/modseek/config.cue
  - macOS: ~/Library/Application Support/modseek/config.cue
  - Windows: %APPDATA%\modseek\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Print(config.GenerateCUE(cfg))
			return nil
		},
	})
}

func showConfig(cmd *cobra.Command) error {
	cfg, path, err := config.LoadWithPath(cmd.Context())
	if err != nil {
		if rendered, renderErr := issue.ById(issue.ConfigLoadFailedId).Render(); renderErr == nil {
			fmt.Fprint(os.Stderr, rendered)
		}
		return err
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if path != "" {
		fmt.Printf("%s: %s\n", PathStyle.Render("Config file"), path)
	} else {
		fmt.Printf("%s: %s\n", PathStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	printConfigValue("assemblies_source", cfg.AssembliesSource)
	printConfigValue("languages_directories", cfg.LanguagesDirectories)
	printConfigValue("cache_ttl", cfg.CacheTTL)
	printConfigValue("verbose", fmt.Sprintf("%t", cfg.Verbose))
	return nil
}

func printConfigValue(key, value string) {
	if value == "" {
		fmt.Printf("%s: %s\n", PathStyle.Render(key), SubtitleStyle.Render("(unset)"))
		return
	}
	fmt.Printf("%s: %s\n", PathStyle.Render(key), SuccessStyle.Render(value))
}

func initConfigFile() error {
	path, err := config.CreateDefaultConfig()
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", SuccessStyle.Render("Created"), PathStyle.Render(path))
	return nil
}

func showConfigPath() error {
	path, err := config.DefaultConfigFilePath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
