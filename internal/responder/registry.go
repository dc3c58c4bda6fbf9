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

package responder

import (
	"errors"
	"sync"

	"github.com/dadrus/gjallar/internal/x/errorchain"
)

var ErrNoSuchService = errors.New("no such service")

// Well-known service ids used during composition of the catch-all handler.
const (
	// ResponseFactoryKey identifies the ResponseFactory service. gjallar
	// seeds a default registration for it. An operator supplied override
	// takes precedence over the registered response supplier.
	ResponseFactoryKey = "response-factory"
	// ResponseSupplierKey identifies the ResponseSupplier service, used
	// if no overriding response factory is registered.
	ResponseSupplierKey = "response-supplier"
	// TemplateRendererKey identifies the templates.Renderer service.
	TemplateRendererKey = "template-renderer"
)

// ServiceLocator is the read interface of the Registry.
type ServiceLocator interface {
	// Has reports whether a service is registered for the given id.
	Has(id string) bool
	// Get returns the service registered for the given id. If the service
	// was registered via a provider, the provider is invoked on every call.
	Get(id string) (any, error)
	// IsDefault reports whether the service registered for the given id,
	// aliases followed, is still the stock one seeded by gjallar itself
	// and was not overridden.
	IsDefault(id string) bool
}

// Provider is a zero-argument factory producing a service instance. It is
// invoked on every lookup of the corresponding id, so whether instances are
// shared is entirely up to the provider.
type Provider func() any

type registration struct {
	value     any
	provider  Provider
	isDefault bool
}

// RegistrationOption configures a service registration.
type RegistrationOption func(*registration)

// AsDefault marks the registration as the stock one. Registering another
// service for the same id removes the marker.
func AsDefault() RegistrationOption {
	return func(r *registration) { r.isDefault = true }
}

// Registry is a string-keyed service registry with support for lazily
// constructed services and alias resolution. It is safe for concurrent use.
type Registry struct {
	mut     sync.RWMutex
	entries map[string]*registration
	aliases map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*registration),
		aliases: make(map[string]string),
	}
}

// Register registers the given value for the given id, replacing any
// previous registration.
func (r *Registry) Register(id string, value any, opts ...RegistrationOption) {
	r.register(id, &registration{value: value}, opts)
}

// RegisterProvider registers the given provider for the given id, replacing
// any previous registration. The provider is invoked on every Get.
func (r *Registry) RegisterProvider(id string, provider Provider, opts ...RegistrationOption) {
	r.register(id, &registration{provider: provider}, opts)
}

// RegisterAlias makes the service registered for the target id available
// under the alias as well. Aliases are resolved transitively.
func (r *Registry) RegisterAlias(alias, target string) {
	r.mut.Lock()
	defer r.mut.Unlock()

	r.aliases[alias] = target
}

func (r *Registry) register(id string, reg *registration, opts []RegistrationOption) {
	for _, opt := range opts {
		opt(reg)
	}

	r.mut.Lock()
	defer r.mut.Unlock()

	r.entries[id] = reg
}

func (r *Registry) Has(id string) bool {
	r.mut.RLock()
	defer r.mut.RUnlock()

	_, ok := r.entries[r.resolve(id)]

	return ok
}

func (r *Registry) Get(id string) (any, error) {
	r.mut.RLock()
	defer r.mut.RUnlock()

	reg, ok := r.entries[r.resolve(id)]
	if !ok {
		return nil, errorchain.NewWithMessagef(ErrNoSuchService,
			"no service registered for id='%s'", id)
	}

	if reg.provider != nil {
		return reg.provider(), nil
	}

	return reg.value, nil
}

func (r *Registry) IsDefault(id string) bool {
	r.mut.RLock()
	defer r.mut.RUnlock()

	reg, ok := r.entries[r.resolve(id)]

	return ok && reg.isDefault
}

// resolve follows alias registrations until a non-alias id is reached.
// Cyclic aliases resolve to nothing.
func (r *Registry) resolve(id string) string {
	seen := map[string]struct{}{}

	for {
		target, ok := r.aliases[id]
		if !ok {
			return id
		}

		if _, cyclic := seen[target]; cyclic {
			return target
		}

		seen[id] = struct{}{}
		id = target
	}
}
