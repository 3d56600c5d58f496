// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

// Watch analyzes every text file already in dir, then every text file
// created or written in dir until ctx is cancelled. Record files written by
// the analyzer itself are ignored, so dir may also be the output directory.
func (a *Analyzer) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	existing, err := CollectTexts([]string{dir})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		a.AnalyzeBatch(ctx, existing)
	}

	runID := uuid.New().String()
	fmt.Fprintf(a.out, "watching: %s\n", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !IsTextFile(event.Name) {
				continue
			}
			name := filepath.Base(event.Name)
			if _, _, err := a.AnalyzeFile(ctx, runID, event.Name); err != nil {
				fmt.Fprintf(a.out, "failed:  %s (%v)\n", name, err)
				continue
			}
			fmt.Fprintf(a.out, "analyzed: %s\n", name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(a.out, "watch error: %v\n", err)
		}
	}
}
