package main

import (
	"github.com/fekuna/omnipos-retail-view/config"
	"github.com/fekuna/omnipos-retail-view/internal/view"
	"github.com/spf13/cobra"
)

const (
	kindProducts      = "products"
	kindInventory     = "inventory"
	kindNotifications = "notifications"
)

type options struct {
	kind       string
	file       string
	backendURL string
	merchantID string
	dataPath   string
	query      string
	filter     view.FilterConfig
	theme      string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	cfg := config.LoadEnv()
	opts := &options{}

	root := &cobra.Command{
		Use:           "viewctl",
		Short:         "Render the retail product, inventory and notification screens in a terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.kind, "kind", "k", kindProducts, "Screen to render: products, inventory, notifications")
	flags.StringVarP(&opts.file, "file", "f", "", "Read the collection from a JSON file instead of the backend")
	flags.StringVar(&opts.backendURL, "backend", cfg.Backend.BaseURL, "Backend base URL")
	flags.StringVarP(&opts.merchantID, "merchant", "m", "", "Merchant to load the collection for")
	flags.StringVar(&opts.dataPath, "data-path", cfg.Backend.DataPath, "gjson path of the record array, empty for a bare array")
	flags.StringVarP(&opts.query, "query", "q", "", "Search text")
	flags.StringVar(&opts.filter.Category, "category", view.All, "Category or notification type filter")
	flags.StringVar(&opts.filter.Status, "status", view.All, "Status filter")
	flags.StringVar(&opts.filter.SortBy, "sort", "", "Sort key, empty for the screen default")
	flags.StringVar((*string)(&opts.filter.SortOrder), "order", string(view.Asc), "Sort order: asc, desc")
	flags.StringVar(&opts.theme, "theme", cfg.Theme.Mode, "Colour theme: light, dark")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log backend requests to stderr")

	root.AddCommand(newDeriveCmd(cfg, opts), newWatchCmd(cfg, opts))
	return root
}
