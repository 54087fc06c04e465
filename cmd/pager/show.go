package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vango-dev/paged/pkg/paging"
)

type showOptions struct {
	items      int
	page       int
	pageSize   int
	generator  string
	window     int
	configPath string
	nav        []string
	jsonOutput bool
	verbose    bool
}

func showCmd() *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the paging state of a numbered collection",
		Long: `Build a collection of the items 1..N, page it, apply any navigation
steps in order, and print the result.

Navigation steps are next, prev, first, last or a page number.

Examples:
  pager show --items 30 --page-size 3
  pager show --items 30 --page-size 3 --generator sliding --page 5
  pager show --items 95 --page-size 10 --nav last --nav prev --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.items, "items", "n", 0, "Number of items in the collection")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 0, "Initial page number (default from config)")
	cmd.Flags().IntVarP(&opts.pageSize, "page-size", "s", 0, "Items per page (default from config)")
	cmd.Flags().StringVarP(&opts.generator, "generator", "g", "", "Page generator name")
	cmd.Flags().IntVarP(&opts.window, "window", "w", 0, "Window size for the sliding generator")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a "+paging.ConfigFileName+" file")
	cmd.Flags().StringArrayVar(&opts.nav, "nav", nil, "Navigation step to apply (repeatable)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the state as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log paging events to stderr")

	return cmd
}

func runShow(cmd *cobra.Command, opts showOptions) error {
	if opts.items < 0 {
		return fmt.Errorf("--items must not be negative, got %d", opts.items)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	registry, err := loadRegistry(opts.configPath, logger)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("window") {
		if err := registry.Sliding().SetWindowSize(opts.window); err != nil {
			return err
		}
	}

	pagingOpts := []paging.Option{
		paging.WithRegistry(registry),
		paging.WithLogger(logger),
	}
	if cmd.Flags().Changed("page") {
		pagingOpts = append(pagingOpts, paging.WithPageNumber(opts.page))
	}
	if cmd.Flags().Changed("page-size") {
		pagingOpts = append(pagingOpts, paging.WithPageSize(opts.pageSize))
	}
	if opts.generator != "" {
		pagingOpts = append(pagingOpts, paging.WithGenerator(opts.generator))
	}

	p, err := paging.NewPagedSlice(paging.Range(1, opts.items), pagingOpts...)
	if err != nil {
		return err
	}

	for _, step := range opts.nav {
		if err := navigate(p, step); err != nil {
			return err
		}
	}

	snapshot := p.Snapshot()
	out := cmd.OutOrStdout()

	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	}

	fmt.Fprintln(out, renderSummary(snapshot))
	fmt.Fprintln(out, renderPager(snapshot))
	return nil
}

// navigate applies one --nav step.
func navigate(p *paging.Paged[int], step string) error {
	switch step {
	case "next":
		p.ToNextPage()
	case "prev", "previous":
		p.ToPreviousPage()
	case "first":
		p.ToFirstPage()
	case "last":
		p.ToLastPage()
	default:
		n, err := strconv.Atoi(step)
		if err != nil {
			return fmt.Errorf("unknown navigation step %q", step)
		}
		p.ToPage(n)
	}
	return nil
}

// loadRegistry creates a registry and applies the config file, if any.
func loadRegistry(path string, logger *slog.Logger) (*paging.Registry, error) {
	var opts []paging.RegistryOption
	if logger != nil {
		opts = append(opts, paging.WithRegistryLogger(logger))
	}
	registry := paging.NewRegistry(opts...)

	if path == "" {
		return registry, nil
	}
	cfg, err := paging.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(registry); err != nil {
		return nil, err
	}
	return registry, nil
}
