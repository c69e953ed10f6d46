// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modseek/modseek/internal/config"
	"github.com/modseek/modseek/internal/issue"
	"github.com/modseek/modseek/internal/resolver"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <identity>...",
	Short: "Resolve module identities against the configured paths",
	Long: `Resolve one or more module identities against the configured search
paths and locale roots.

A plain identity ("Foo") is looked up as Foo` + "`<ext>`" + ` across the search
paths in priority order. An identity whose simple name ends in
".resources" and carries a Culture field ("App.resources, Version=1.0,
Culture=fr") is looked up under the locale roots instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(args)
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output results as JSON")
}

// resolveResult is the JSON shape for one resolution outcome.
type resolveResult struct {
	Identity string `json:"identity"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Error    string `json:"error,omitempty"`
}

func runResolve(identities []string) error {
	r, err := initializedResolver()
	if err != nil {
		return err
	}

	results := make([]resolveResult, 0, len(identities))
	failed := false
	for _, identity := range identities {
		res := resolveResult{Identity: identity}
		mod, resolveErr := r.Resolve(identity)
		switch {
		case resolveErr != nil:
			res.Error = resolveErr.Error()
			failed = true
		case mod != nil:
			res.Found = true
			res.Path = mod.Path
		}
		results = append(results, res)
	}

	if resolveJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		printResolveResults(r, results)
	}

	if failed {
		return fmt.Errorf("%d of %d identities failed to load", countErrors(results), len(results))
	}
	return nil
}

func printResolveResults(r *resolver.Resolver, results []resolveResult) {
	for _, res := range results {
		switch {
		case res.Error != "":
			fmt.Printf("%s %s\n  %s\n",
				ErrorStyle.Render("✗"), PathStyle.Render(res.Identity), res.Error)
			if hint, err := issue.ById(issue.LoaderFailedId).Render(); err == nil {
				fmt.Fprint(os.Stderr, hint)
			}
		case res.Found:
			fmt.Printf("%s %s\n  %s\n",
				SuccessStyle.Render("✓"), PathStyle.Render(res.Identity), res.Path)
		default:
			fmt.Printf("%s %s\n  %s\n",
				WarningStyle.Render("∅"), PathStyle.Render(res.Identity),
				SubtitleStyle.Render("not found"))
		}
	}

	if anyNotFound(results) && len(r.Registry().SearchPaths()) == 0 {
		if hint, err := issue.ById(issue.NoSearchPathsId).Render(); err == nil {
			fmt.Fprint(os.Stderr, hint)
		}
	}
}

func anyNotFound(results []resolveResult) bool {
	for _, res := range results {
		if !res.Found && res.Error == "" {
			return true
		}
	}
	return false
}

func countErrors(results []resolveResult) int {
	n := 0
	for _, res := range results {
		if res.Error != "" {
			n++
		}
	}
	return n
}

// initializedResolver loads the configuration and rebuilds the shared
// resolver's registry from it.
func initializedResolver() (*resolver.Resolver, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	r := resolver.Default()
	r.Initialize(cfg)
	return r, nil
}
