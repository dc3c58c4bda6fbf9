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
	"go.uber.org/fx"

	"github.com/dadrus/gjallar/internal/app"
	"github.com/dadrus/gjallar/internal/config/parser"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/templates"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewServiceRegistry),
	fx.Provide(newNotFoundHandler),
)

// NewServiceRegistry seeds the service registry with the stock services.
// The registry is the extension point for overrides when gjallar is
// embedded into another program.
func NewServiceRegistry(rnd templates.Renderer) *Registry {
	registry := NewRegistry()

	registry.Register(ResponseSupplierKey,
		ResponseSupplier(gjallar.NewResponse), AsDefault())
	registry.Register(ResponseFactoryKey,
		NewSupplierResponseFactory(gjallar.NewResponse), AsDefault())

	if rnd != nil {
		registry.Register(TemplateRendererKey, rnd)
	}

	return registry
}

func newNotFoundHandler(app app.Context, registry *Registry) (*NotFoundHandler, error) {
	logger := app.Logger()

	conf, err := parser.FromStruct(app.Config())
	if err != nil {
		logger.Error().Err(err).Msg("Failed creating catch-all handler")

		return nil, err
	}

	handler, err := CreateNotFoundHandler(registry, conf)
	if err != nil {
		logger.Error().Err(err).Msg("Failed creating catch-all handler")

		return nil, err
	}

	logger.Info().
		Str("_template", handler.template).
		Str("_layout", handler.layout).
		Bool("_rendering", handler.renderer != nil).
		Msg("Catch-all handler configured")

	return handler, nil
}
