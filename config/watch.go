// This file is part of rtinput.
//
// rtinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rtinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rtinput.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/jetsetilly/rtinput/curated"
	"github.com/jetsetilly/rtinput/logger"
)

// Watcher reloads a configuration file when it changes.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// Watch the configuration file at path. The directory containing the file is
// watched so that files replaced by editors are noticed. The directory must
// exist but the file need not.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, curated.Errorf(ConfigError, path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(ConfigError, path, err)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, curated.Errorf(ConfigError, path, err)
	}

	return &Watcher{
		path:    abs,
		watcher: fsw,
	}, nil
}

// Poll returns a freshly loaded configuration if the file has been written
// since the previous call to Poll(). Returns nil and no error if the file has
// not changed. Never blocks.
//
// A configuration that fails to load is returned as an error. The caller
// should keep using the previous configuration.
func (w *Watcher) Poll() (*Config, error) {
	var changed bool

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil, curated.Errorf(ConfigError, w.path, "watcher closed")
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				changed = true
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil, curated.Errorf(ConfigError, w.path, "watcher closed")
			}
			return nil, curated.Errorf(ConfigError, w.path, err)
		default:
			if !changed {
				return nil, nil
			}
			logger.Logf(logger.Allow, "config", "reloading %s", w.path)
			return Load(w.path)
		}
	}
}

// Close the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
