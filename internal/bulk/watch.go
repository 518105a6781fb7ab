package bulk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Subdirectories of the inbox that processed files are moved to.
const (
	DoneDir   = "done"
	FailedDir = "failed"
)

// DefaultSettle is how long a file must go without writes before it is
// imported.
const DefaultSettle = 500 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	Settle time.Duration
	// OnReport receives the report of every imported file.
	OnReport func(Report)
}

// Watch imports every .csv file that appears in dir until ctx is done.
// Files already present when Watch starts are imported first. A file whose
// rows were all created moves to dir/done; anything else moves to
// dir/failed.
func (im *Importer) Watch(ctx context.Context, dir string, opts WatchOptions) error {
	if opts.Settle <= 0 {
		opts.Settle = DefaultSettle
	}
	for _, sub := range []string{DoneDir, FailedDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("ensure dir %s: %w", sub, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	im.logger.Info("watching inbox", "dir", dir)

	pending := make(map[string]time.Time)
	existing, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	for _, name := range existing {
		if isCSV(name) {
			pending[name] = time.Time{}
		}
	}

	ticker := time.NewTicker(opts.Settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) && isCSV(event.Name) {
				im.logger.Debug("fsnotify event", "op", event.Op.String(), "file", event.Name)
				pending[event.Name] = time.Now()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			im.logger.Error("fsnotify error", "error", err)
		case now := <-ticker.C:
			var ready []string
			for name, last := range pending {
				if now.Sub(last) >= opts.Settle {
					ready = append(ready, name)
				}
			}
			sort.Strings(ready)
			for _, name := range ready {
				delete(pending, name)
				rep, err := im.importFile(ctx, dir, name)
				if err != nil {
					im.logger.Error("import failed", "file", name, "error", err)
					continue
				}
				if opts.OnReport != nil {
					opts.OnReport(rep)
				}
			}
		}
	}
}

func isCSV(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".csv")
}

// importFile imports one inbox file and moves it out of the inbox.
func (im *Importer) importFile(ctx context.Context, dir, name string) (Report, error) {
	f, err := os.Open(name)
	if os.IsNotExist(err) {
		return Report{}, fmt.Errorf("file vanished: %w", err)
	}
	if err != nil {
		return Report{}, err
	}
	rep, importErr := im.Import(ctx, filepath.Base(name), f)
	f.Close()

	dest := FailedDir
	if importErr == nil && rep.OK() {
		dest = DoneDir
	}
	target := filepath.Join(dir, dest, filepath.Base(name))
	if err := os.Rename(name, target); err != nil {
		return rep, fmt.Errorf("move %s to %s: %w", name, dest, err)
	}
	if importErr != nil {
		return rep, importErr
	}
	return rep, nil
}
