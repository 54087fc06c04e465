package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vango-dev/paged/pkg/paging"
)

func generatorsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "generators",
		Short: "List the registered page generators",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(configPath, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range registry.Names() {
				g, _ := registry.Lookup(name)
				fmt.Fprintf(out, "%-10s %s\n", name, g.Kind())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a "+paging.ConfigFileName+" file")

	return cmd
}
