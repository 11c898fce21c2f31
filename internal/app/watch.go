package app

import (
	"context"
	"time"

	"go.trai.ch/svgmake/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"golang.org/x/sync/errgroup"
)

// Watch generates the script and regenerates it whenever the source tree changes,
// until ctx is done. Each regeneration is a fresh run with a fresh dependency cache.
// Failed runs are logged and watching continues.
func (a *App) Watch(ctx context.Context, opts GenerateOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	if err := a.Generate(ctx, opts); err != nil {
		a.logger.Error(err)
	}

	if err := a.watcher.Start(ctx, cfg.SourceDir); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()
	a.logger.Info("Watching " + cfg.SourceDir + " for changes")

	// Capacity one: changes arriving during a run collapse into a single rerun.
	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow(), func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-trigger:
				a.logger.Info("Change detected, regenerating")
				if err := a.Generate(gctx, opts); err != nil && gctx.Err() == nil {
					a.logger.Error(err)
				}
			}
		}
	})
	return g.Wait()
}

func (a *App) debounceWindow() time.Duration {
	if a.window > 0 {
		return a.window
	}
	return watcher.DefaultDebounceWindow
}

// WithDebounceWindow sets how long watch mode waits for changes to settle.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.window = window
	return a
}
