// Copyright 2024 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package watcher

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/x/errorchain"
)

type watchTarget struct {
	realPath  string
	listeners []ChangeListener
}

type watcher struct {
	fsw     *fsnotify.Watcher
	log     zerolog.Logger
	targets map[string]*watchTarget

	mu sync.Mutex
}

func newWatcher(logger zerolog.Logger) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errorchain.
			NewWithMessage(gjallar.ErrInternal, "failed instantiating the file watcher").
			CausedBy(err)
	}

	return &watcher{fsw: fsw, log: logger, targets: make(map[string]*watchTarget)}, nil
}

func (w *watcher) Add(path string, cl ChangeListener) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if target, known := w.targets[path]; known {
		target.listeners = append(target.listeners, cl)

		return nil
	}

	if err := w.fsw.Add(path); err != nil {
		return errorchain.NewWithMessagef(gjallar.ErrInternal,
			"listener registration for file %s failed", path).CausedBy(err)
	}

	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errorchain.NewWithMessagef(gjallar.ErrInternal,
			"listener registration for file %s failed", path).CausedBy(err)
	}

	w.targets[path] = &watchTarget{realPath: realPath, listeners: []ChangeListener{cl}}

	return nil
}

func (w *watcher) start(_ context.Context) error {
	w.log.Debug().Msg("Starting watching files for changes")

	go w.run()

	return nil
}

func (w *watcher) stop(_ context.Context) error {
	w.log.Debug().Msg("Stopping watching files for changes")

	return w.fsw.Close()
}

func (w *watcher) run() {
	for {
		select {
		case evt, open := <-w.fsw.Events:
			if !open {
				w.log.Debug().Msg("File watcher closed")

				return
			}

			w.handleEvent(evt)
		case err, open := <-w.fsw.Errors:
			if !open {
				w.log.Debug().Msg("File watcher error channel closed")

				return
			}

			w.log.Warn().Err(err).Msg("File watcher error received")
		}
	}
}

func (w *watcher) handleEvent(evt fsnotify.Event) {
	var replaced bool

	if evt.Has(fsnotify.Chmod) {
		var err error

		replaced, err = w.rewatchIfReplaced(evt.Name)
		if err != nil {
			w.log.Warn().Err(err).Msgf("Handling modification for %s failed", evt.Name)
		}
	}

	if evt.Has(fsnotify.Write) || replaced {
		w.notifyListeners(evt.Name)
	}
}

// Kubernetes updates mounted files by flipping a symlink. The file behind the
// watched path changes then, with the change itself surfacing as a chmod event
// only. The watch must be reestablished in that case to follow the new target.
func (w *watcher) rewatchIfReplaced(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			_ = w.fsw.Remove(path)

			return false, nil
		}

		return false, err
	}

	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	target := w.targets[path]
	if target.realPath == realPath {
		return false, nil
	}

	_ = w.fsw.Remove(path)
	target.realPath = realPath
	_ = w.fsw.Add(path)

	return true, nil
}

func (w *watcher) notifyListeners(path string) {
	w.mu.Lock()
	listeners := slices.Clone(w.targets[path].listeners)
	w.mu.Unlock()

	for _, listener := range listeners {
		go listener.OnChanged(w.log.Level(zerolog.InfoLevel))
	}
}
