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

package cache

import (
	"errors"
	"sync"

	"github.com/dadrus/gjallar/internal/app"
	"github.com/dadrus/gjallar/internal/cache/noop"
	"github.com/dadrus/gjallar/internal/x/errorchain"
)

var ErrUnsupportedCacheType = errors.New("cache type unsupported")

// registry is written during package initialization only and read during
// application bootstrap.
// nolint: gochecknoglobals
var registry = struct {
	mu        sync.RWMutex
	factories map[string]Factory
}{
	factories: make(map[string]Factory),
}

func Register(typ string, factory Factory) {
	if factory == nil {
		panic("cache factory is nil")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.factories[typ] = factory
}

func Create(app app.Context, typ string, config map[string]any) (Cache, error) {
	if typ == "noop" {
		return &noop.Cache{}, nil
	}

	factory, found := lookup(typ)
	if !found {
		return nil, errorchain.NewWithMessagef(ErrUnsupportedCacheType, "'%s'", typ)
	}

	return factory.Create(app, config)
}

func lookup(typ string) (Factory, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	factory, found := registry.factories[typ]

	return factory, found
}
