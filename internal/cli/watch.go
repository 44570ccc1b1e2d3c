package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/xbmc/sync-addon-metadata-translations/internal/logging"
	"github.com/xbmc/sync-addon-metadata-translations/internal/services"
	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Sync continuously, re-running whenever metadata files change",
	Long: `Watch runs one sync pass, then keeps watching addon.xml and the language
catalog directories and re-runs the sync whenever one of them changes.
Events are debounced so a burst of saves triggers a single pass.

A pass the watch itself triggered settles immediately: the follow-up run
finds nothing left to change and writes nothing.

Directories created after the watch starts are not picked up; restart the
watch after adding a new language.

Examples:
  # Keep an addon synced while editing translations
  samt watch ./plugin.video.example

  # Watch a whole repository checkout
  samt watch ./repo-plugins --multi`,
	Args: AcceptAddonPath,
	RunE: runWatch,
}

type watchFlagValues struct {
	debounce time.Duration
}

var watchFlags watchFlagValues

func init() {
	rootCmd.AddCommand(watchCmd)
	addSyncFlags(watchCmd)

	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", 500*time.Millisecond,
		"Quiet period after the last change before a sync pass runs\n"+
			"Examples: 200ms, 2s")
}

func runWatch(cmd *cobra.Command, args []string) error {
	config, err := buildSyncConfig(cmd, args, getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(config.Verbose)
	service := services.NewSyncService(logger)

	// Initial pass so the tree starts out in sync.
	if _, err := service.Run(config); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, config); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, stopping watch...")
		cancel()
	}()

	logger.Info("Watching %s for changes...", config.Path)
	return watchLoop(ctx, watcher, service, config, logger, watchFlags.debounce)
}

// watchLoop reacts to watcher events until the context is cancelled. The
// timer is armed only while changes are pending, so an idle tree costs
// nothing.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, syncer samt.Syncer, config samt.SyncConfig, logger samt.Logger, debounce time.Duration) error {
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			logger.Verbose("Change detected: %s", event)
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watch error: %v", err)

		case <-timer.C:
			if _, err := syncer.Run(config); err != nil {
				logger.Error("Sync failed: %v", err)
			}
		}
	}
}

// relevantEvent reports whether an fsnotify event concerns a file the sync
// reads or writes. Editor temp files and unrelated assets are ignored.
func relevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	return name == samt.AddonXMLFilename || filepath.Ext(name) == samt.POExtension
}

// addWatchDirs registers the addon root (for addon.xml) and every language
// catalog directory with the watcher. fsnotify does not recurse, so the
// catalog directories are added one by one.
func addWatchDirs(watcher *fsnotify.Watcher, config samt.SyncConfig) error {
	roots := []string{config.Path}
	if config.Multi {
		entries, err := os.ReadDir(config.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", config.Path, err)
		}
		roots = roots[:0]
		for _, entry := range entries {
			if entry.IsDir() {
				roots = append(roots, filepath.Join(config.Path, entry.Name()))
			}
		}
	}

	for _, root := range roots {
		if err := watcher.Add(root); err != nil {
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() && strings.HasPrefix(d.Name(), samt.LanguageDirPrefix) {
				if err := watcher.Add(path); err != nil {
					return fmt.Errorf("failed to watch %s: %w", path, err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
