package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fekuna/omnipos-retail-view/config"
	"github.com/fekuna/omnipos-retail-view/internal/backend"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/render"
	"github.com/fekuna/omnipos-retail-view/internal/theme"
	"github.com/fekuna/omnipos-retail-view/internal/view"
	"github.com/mattn/go-isatty"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

var errNoSource = errors.New("either --file or --merchant is required")

func newDeriveCmd(cfg *config.Config, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "derive",
		Short: "Derive the selected screen once and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return derive(cmd.Context(), cmd.OutOrStdout(), cfg, opts, pickTheme(opts.theme, isTerminal(cmd.OutOrStdout())))
		},
	}
}

func derive(ctx context.Context, w io.Writer, cfg *config.Config, opts *options, t theme.Theme) error {
	switch opts.kind {
	case kindProducts:
		records, err := load[model.Product](ctx, cfg, opts, cfg.Backend.Endpoints.Products)
		if err != nil {
			return err
		}
		return render.Products(w, view.DeriveProducts(records, opts.query, opts.filter), t)
	case kindInventory:
		records, err := load[model.InventoryLine](ctx, cfg, opts, cfg.Backend.Endpoints.Inventory)
		if err != nil {
			return err
		}
		return render.Inventory(w, view.DeriveInventory(records, opts.query, opts.filter), t)
	case kindNotifications:
		records, err := load[model.Notification](ctx, cfg, opts, cfg.Backend.Endpoints.Notifications)
		if err != nil {
			return err
		}
		return render.Notifications(w, view.DeriveNotifications(records, opts.query, opts.filter), t)
	default:
		return fmt.Errorf("unknown kind %q", opts.kind)
	}
}

// load reads the collection from --file when given, otherwise from the
// backend endpoint at path for --merchant.
func load[T any](ctx context.Context, cfg *config.Config, opts *options, path string) ([]T, error) {
	records := []T{}
	if opts.file != "" {
		name, err := homedir.Expand(opts.file)
		if err != nil {
			return nil, err
		}
		body, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if err := backend.Decode(body, opts.dataPath, &records); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return records, nil
	}

	if opts.merchantID == "" {
		return nil, errNoSource
	}
	client := backend.NewClient(&backend.Config{
		BaseURL:  opts.backendURL,
		Token:    cfg.Backend.Token,
		Timeout:  time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		RetryMax: cfg.Backend.RetryMax,
		DataPath: opts.dataPath,
	}, cliLogger(opts.verbose))
	if err := client.List(ctx, path, opts.merchantID, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func cliLogger(verbose bool) logger.ZapLogger {
	if !verbose {
		return logger.NewNop()
	}
	return logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     true,
		Encoding:          "console",
		Level:             "debug",
		DisableCaller:     true,
		DisableStacktrace: true,
	})
}

// pickTheme colours the output only when it goes to a terminal.
func pickTheme(mode string, tty bool) theme.Theme {
	if !tty {
		return theme.Plain()
	}
	return theme.ForMode(theme.ParseMode(mode))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
