// Copyright 2023 Dimitrij Drus <dadrus@gmx.de>
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

package templates

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Masterminds/sprig/v3"
	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/app"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/x/errorchain"
	"github.com/dadrus/gjallar/internal/x/stringx"
)

var (
	ErrTemplateRender = errors.New("template error")
	ErrNoSuchTemplate = errors.New("no such template")
)

//go:generate mockery --name Renderer --structname RendererMock

// Renderer renders named templates. Implementations are safe for concurrent
// use.
type Renderer interface {
	// Render executes the named template with the given values.
	Render(name string, values map[string]any) (string, error)
	// Hash returns a hash over the contents of all loaded templates. It
	// changes whenever the templates are reloaded with different contents.
	Hash() []byte
}

type renderer struct {
	paths []string

	mut  sync.RWMutex
	root *template.Template
	hash []byte
}

// NewRenderer loads all *.tmpl files from the directories configured via
// templates.paths and makes them available for rendering. The name of a
// template is the path of its file relative to the templates directory it
// was loaded from, without the extension and with path separators replaced
// by "::". So templates/404.tmpl is addressed as "404" and
// templates/layout/error.tmpl as "layout::error". Templates from later
// directories override equally named templates from earlier directories.
//
// With templates.watch enabled, the loaded files are registered with the
// given watcher and all templates are reloaded when any of them changes.
// Files added to the configured directories after startup are only picked
// up by such a reload, but not watched themselves.
//
// If no paths are configured, the returned Renderer is nil and template
// rendering is disabled.
func NewRenderer(app app.Context) (Renderer, error) {
	conf := app.Config().Templates
	logger := app.Logger()

	if len(conf.Paths) == 0 {
		logger.Info().Msg("No template paths configured. Template rendering is disabled")

		return nil, nil
	}

	rndr := &renderer{paths: conf.Paths}

	files, err := rndr.load()
	if err != nil {
		return nil, err
	}

	if conf.Watch {
		for _, file := range files {
			if err = app.Watcher().Add(file, rndr); err != nil {
				return nil, err
			}
		}
	}

	logger.Info().Int("_templates", len(files)).Msg("Templates loaded")

	return rndr, nil
}

func (r *renderer) load() ([]string, error) {
	funcMap := sprig.HtmlFuncMap()
	delete(funcMap, "env")
	delete(funcMap, "expandenv")

	root := template.New("gjallar").Funcs(funcMap)
	hash := sha256.New()

	var files []string

	for _, dir := range r.paths {
		err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if entry.IsDir() || filepath.Ext(path) != ".tmpl" {
				return nil
			}

			contents, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			name, err := templateName(dir, path)
			if err != nil {
				return err
			}

			if _, err = root.New(name).Parse(stringx.ToString(contents)); err != nil {
				return err
			}

			hash.Write(contents)

			files = append(files, path)

			return nil
		})
		if err != nil {
			return nil, errorchain.
				NewWithMessagef(gjallar.ErrConfiguration, "failed loading templates from %s", dir).
				CausedBy(err)
		}
	}

	r.mut.Lock()
	r.root = root
	r.hash = hash.Sum(nil)
	r.mut.Unlock()

	return files, nil
}

func (r *renderer) Render(name string, values map[string]any) (string, error) {
	r.mut.RLock()
	root := r.root
	r.mut.RUnlock()

	tmpl := root.Lookup(name)
	if tmpl == nil {
		return "", errorchain.NewWithMessagef(ErrNoSuchTemplate, "'%s'", name)
	}

	var buf bytes.Buffer

	if err := tmpl.Execute(&buf, values); err != nil {
		return "", errorchain.New(ErrTemplateRender).CausedBy(err)
	}

	return buf.String(), nil
}

func (r *renderer) Hash() []byte {
	r.mut.RLock()
	defer r.mut.RUnlock()

	return r.hash
}

// OnChanged implements watcher.ChangeListener. If the reload fails, the
// previously loaded templates remain in use.
func (r *renderer) OnChanged(log zerolog.Logger) {
	_, err := r.load()
	if err != nil {
		log.Warn().Err(err).
			Str("_source", "templates").
			Msg("Templates reload failed")
	} else {
		log.Info().
			Str("_source", "templates").
			Msg("Templates reloaded")
	}
}

func templateName(dir, path string) (string, error) {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return "", err
	}

	name := strings.TrimSuffix(filepath.ToSlash(rel), ".tmpl")

	return strings.ReplaceAll(name, "/", "::"), nil
}
