package server

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/maiden-org/maiden/dataset"
)

// reloadDebounce coalesces the burst of fsnotify events editors and
// atomic-save tools emit for a single file update.
const reloadDebounce = 250 * time.Millisecond

// Watch reloads the dataset when the source file changes and swaps the
// store's snapshot. A failed reload keeps the previous snapshot.
// Blocks until ctx is canceled.
func Watch(ctx context.Context, path string, store *Store, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors replace files, which drops a watch
	// on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target := filepath.Clean(path)
	log.Info("watching dataset", zap.String("path", target))

	var timer *time.Timer
	reload := make(chan struct{}, 1)

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
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			ds, err := dataset.Load(target, log)
			if err != nil {
				log.Error("dataset reload failed, keeping previous snapshot",
					zap.String("path", target), zap.Error(err))
				continue
			}
			store.Swap(ds)
			log.Info("dataset reloaded", zap.Int("passengers", ds.Len()))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
