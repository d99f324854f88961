package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// watchFile reprocesses path every time it changes, until SIGINT or SIGTERM.
// Events are debounced so editors that write in several steps trigger a
// single reprocess.
func watchFile(path string, opts options, cfg Config, log *logrus.Logger) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory rather than the file: most editors replace the
	// file on save, which drops a watch held on the file itself.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	var timer *time.Timer
	var pending <-chan time.Time

	log.WithField("file", absPath).Info("watching for changes")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			report, err := processFile(absPath, log)
			if err != nil {
				log.WithError(err).Error("reprocess failed")
				continue
			}
			if err := writeReport(report, opts.OutPath, cfg.Output.Pretty); err != nil {
				log.WithError(err).Error("writing report failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")

		case <-signals:
			log.Info("shutting down")
			return nil
		}
	}
}
