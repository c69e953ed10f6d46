// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modseek/modseek/internal/issue"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the effective search paths and locale roots",
	Long: `List the search paths and locale roots the resolver would consult,
in priority order, after expanding the configuration's path
specifications (recursive entries, duplicates dropped, invalid
entries rejected).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPaths()
	},
}

func runPaths() error {
	r, err := initializedResolver()
	if err != nil {
		return err
	}

	searchPaths := r.Registry().SearchPaths()
	localeRoots := r.Registry().LocaleRoots()

	fmt.Println(TitleStyle.Render("Search paths") + SubtitleStyle.Render(" (priority order)"))
	if len(searchPaths) == 0 {
		fmt.Println(SubtitleStyle.Render("  (none)"))
	}
	for i, p := range searchPaths {
		fmt.Printf("  %s %s\n", SubtitleStyle.Render(fmt.Sprintf("%d.", i+1)), PathStyle.Render(p))
	}

	fmt.Println()
	fmt.Println(TitleStyle.Render("Locale roots"))
	if len(localeRoots) == 0 {
		fmt.Println(SubtitleStyle.Render("  (none)"))
	}
	for i, p := range localeRoots {
		fmt.Printf("  %s %s\n", SubtitleStyle.Render(fmt.Sprintf("%d.", i+1)), PathStyle.Render(p))
	}

	if len(searchPaths) == 0 && len(localeRoots) == 0 {
		if hint, renderErr := issue.ById(issue.NoSearchPathsId).Render(); renderErr == nil {
			fmt.Fprint(os.Stderr, hint)
		}
	}
	return nil
}
