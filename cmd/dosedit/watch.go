package main

import (
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/iw2rmb/dosedit/editor"
)

// watchFile sends editor.FileChangedMsg whenever path is written, created,
// renamed or removed. The parent directory is watched so that editors that
// replace the file by rename are seen too. The returned stop closes the
// watcher.
func watchFile(path string, send func(tea.Msg)) (stop func() error, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
					ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
					send(editor.FileChangedMsg{})
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("watch %s: %v", abs, err)
			}
		}
	}()
	return w.Close, nil
}
