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
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/templates"
	"github.com/dadrus/gjallar/internal/x/errorchain"
)

// Configuration paths evaluated by CreateNotFoundHandler.
const (
	template404ConfigPath = "gjallar.error_handler.template_404"
	layoutConfigPath      = "gjallar.error_handler.layout"
)

// CreateNotFoundHandler builds the catch-all handler from the services
// available in the given locator and the given configuration.
//
// The used response factory is the one registered for ResponseFactoryKey if
// that registration, aliases followed, is an override. Otherwise the
// supplier registered for ResponseSupplierKey, which is the only required
// service, is wrapped into a SupplierResponseFactory. A renderer registered
// for TemplateRendererKey is attached if present. The template and layout
// names are read from the configuration, falling back to DefaultTemplate,
// respectively no layout, for absent values.
//
// The operation is read-only on both the locator and the configuration and
// yields equally configured handlers on repeated calls.
func CreateNotFoundHandler(locator ServiceLocator, conf any) (*NotFoundHandler, error) {
	rf, err := resolveResponseFactory(locator)
	if err != nil {
		return nil, err
	}

	renderer, err := resolveRenderer(locator)
	if err != nil {
		return nil, err
	}

	return NewNotFoundHandler(rf,
		WithRenderer(renderer),
		WithTemplate(lookupString(conf, template404ConfigPath, DefaultTemplate)),
		WithLayout(lookupString(conf, layoutConfigPath, "")),
	), nil
}

func resolveResponseFactory(locator ServiceLocator) (ResponseFactory, error) {
	if locator.Has(ResponseFactoryKey) && !locator.IsDefault(ResponseFactoryKey) {
		service, err := locator.Get(ResponseFactoryKey)
		if err != nil {
			return nil, err
		}

		rf, ok := service.(ResponseFactory)
		if !ok {
			return nil, errorchain.NewWithMessagef(gjallar.ErrConfiguration,
				"the service registered for id='%s' is not a response factory", ResponseFactoryKey)
		}

		return rf, nil
	}

	service, err := locator.Get(ResponseSupplierKey)
	if err != nil {
		return nil, err
	}

	switch supplier := service.(type) {
	case ResponseSupplier:
		return NewSupplierResponseFactory(supplier), nil
	case func() *gjallar.Response:
		return NewSupplierResponseFactory(supplier), nil
	default:
		return nil, errorchain.NewWithMessagef(gjallar.ErrConfiguration,
			"the service registered for id='%s' is not a response supplier", ResponseSupplierKey)
	}
}

func resolveRenderer(locator ServiceLocator) (templates.Renderer, error) {
	if !locator.Has(TemplateRendererKey) {
		return nil, nil
	}

	service, err := locator.Get(TemplateRendererKey)
	if err != nil {
		return nil, err
	}

	renderer, ok := service.(templates.Renderer)
	if !ok {
		return nil, errorchain.NewWithMessagef(gjallar.ErrConfiguration,
			"the service registered for id='%s' is not a template renderer", TemplateRendererKey)
	}

	return renderer, nil
}
