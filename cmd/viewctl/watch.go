package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-retail-view/config"
	"github.com/fekuna/omnipos-retail-view/internal/debounce"
	"github.com/fekuna/omnipos-retail-view/internal/theme"
	"github.com/fsnotify/fsnotify"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

const clearScreen = "\033[H\033[2J"

var errWatchNeedsFile = errors.New("watch needs --file")

func newWatchCmd(cfg *config.Config, opts *options) *cobra.Command {
	var quiet time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the selected screen whenever --file changes",
		Long: `Re-render the selected screen whenever --file changes.

Type t and press enter to switch between the light and dark theme.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.file == "" {
				return errWatchNeedsFile
			}
			name, err := homedir.Expand(opts.file)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			tty := isTerminal(out)
			holder := theme.NewHolder(theme.ForMode(theme.ParseMode(opts.theme)))

			var mu sync.Mutex
			draw := func() {
				mu.Lock()
				defer mu.Unlock()

				t := theme.Plain()
				if tty {
					t = holder.Current()
				}
				var buf bytes.Buffer
				if tty {
					buf.WriteString(clearScreen)
				}
				if err := derive(ctx, &buf, cfg, opts, t); err != nil {
					fmt.Fprintln(errOut, err)
					return
				}
				_, _ = io.Copy(out, &buf)
			}

			draw()
			go toggleOnInput(cmd.InOrStdin(), holder, draw)
			return watchFile(ctx, name, quiet, draw)
		},
	}
	cmd.Flags().DurationVar(&quiet, "quiet", debounce.DefaultInterval, "Wait this long after the last change before re-rendering")
	return cmd
}

// watchFile calls onChange once writes to name have settled for quiet. The
// parent directory is watched so editors that replace the file are seen.
func watchFile(ctx context.Context, name string, quiet time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(name)); err != nil {
		return fmt.Errorf("watch %s: %w", name, err)
	}

	d := debounce.New(quiet, func(struct{}) { onChange() })
	defer d.Stop()

	target := filepath.Clean(name)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				d.Push(struct{}{})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", name, err)
		}
	}
}

// toggleOnInput flips the theme and redraws for every "t" line read from r,
// until r is exhausted.
func toggleOnInput(r io.Reader, h *theme.Holder, redraw func()) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), "t") {
			h.Toggle()
			redraw()
		}
	}
}
