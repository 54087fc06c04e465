package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pager",
		Short: "Inspect paged collections from the command line",
		Long: `Pager builds a paged collection of numbered items and prints its
paging state: page count, bounds of the current page, navigation flags
and the page numbers a pager control would render.

Use it to try out page sizes and page generators before wiring them
into a UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		showCmd(),
		generatorsCmd(),
		versionCmd(),
	)

	return cmd
}
