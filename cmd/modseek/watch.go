// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modseek/modseek/internal/config"
	"github.com/modseek/modseek/internal/resolver"
	"github.com/modseek/modseek/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <identity>...",
	Short: "Re-resolve identities whenever the configuration changes",
	Long: `Resolve the given identities, then keep watching the configuration
file and re-resolve them each time it changes. Useful while tuning
assemblies_source or languages_directories: edit the config, save,
and see the new resolution outcome immediately.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd.Context(), args)
	},
}

func runWatch(ctx context.Context, identities []string) error {
	cfgPath := cfgFile
	if cfgPath == "" {
		path, err := config.DefaultConfigFilePath()
		if err != nil {
			return err
		}
		cfgPath = path
	}

	reresolve := func(ctx context.Context) error {
		cfg, err := config.Load()
		if err != nil {
			fmt.Println(WarningStyle.Render("Warning: ") + formatErrorForDisplay(err, verbose))
			return nil
		}
		r := resolver.Default()
		r.Initialize(cfg)

		results := make([]resolveResult, 0, len(identities))
		for _, identity := range identities {
			res := resolveResult{Identity: identity}
			mod, resolveErr := r.Resolve(identity)
			switch {
			case resolveErr != nil:
				res.Error = resolveErr.Error()
			case mod != nil:
				res.Found = true
				res.Path = mod.Path
			}
			results = append(results, res)
		}
		printResolveResults(r, results)
		return nil
	}

	if err := reresolve(ctx); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Watching ") + PathStyle.Render(cfgPath) +
		SubtitleStyle.Render(" for changes (Ctrl-C to stop)"))

	w, err := watch.New(watch.Config{
		Path:     cfgPath,
		OnChange: reresolve,
	})
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
