package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/quatray/go-quaternion-julia/pkg/core"
)

// Watch reloads the configuration file whenever it changes on disk and
// delivers validated snapshots on the returned channel. Invalid edits are
// logged and skipped, keeping the last good configuration live. The watcher
// shuts down and closes the channel when ctx is cancelled.
//
// The parent directory is watched rather than the file itself, since most
// editors replace files by rename.
func Watch(ctx context.Context, path string, logger core.Logger) (<-chan Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	updates := make(chan Config, 1)

	go func() {
		defer watcher.Close()
		defer close(updates)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}

				cfg, err := Load(path)
				if err != nil {
					logger.Printf("config reload skipped: %v\n", err)
					continue
				}

				// Keep only the newest snapshot pending; a stale one is
				// superseded, not queued.
				select {
				case <-updates:
				default:
				}
				updates <- cfg

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Printf("config watcher error: %v\n", err)
			}
		}
	}()

	return updates, nil
}
