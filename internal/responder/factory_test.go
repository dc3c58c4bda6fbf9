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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/templates/mocks"
)

type staticResponseFactory struct {
	response *gjallar.Response
}

func (f *staticResponseFactory) CreateResponse() *gjallar.Response { return f.response }

func TestCreateNotFoundHandler(t *testing.T) {
	t.Parallel()

	response := gjallar.NewResponse()
	supplier := ResponseSupplier(func() *gjallar.Response { return response })
	override := &staticResponseFactory{response: gjallar.NewResponse()}
	renderer := mocks.NewRendererMock(t)

	requireSupplierWrapped := func(t *testing.T, handler *NotFoundHandler) {
		t.Helper()

		rf, ok := handler.rf.(*SupplierResponseFactory)
		require.True(t, ok)
		assert.Same(t, response, rf.Supplier()())
	}

	for uc, tc := range map[string]struct {
		setup  func(reg *Registry)
		conf   any
		assert func(t *testing.T, err error, handler *NotFoundHandler)
	}{
		"only a response supplier is registered": {
			setup: func(reg *Registry) {
				reg.Register(ResponseSupplierKey, supplier)
			},
			assert: func(t *testing.T, err error, handler *NotFoundHandler) {
				t.Helper()

				require.NoError(t, err)
				requireSupplierWrapped(t, handler)
				assert.Nil(t, handler.renderer)
				assert.Equal(t, DefaultTemplate, handler.template)
				assert.Empty(t, handler.layout)
			},
		},
		"response factory registration left at the seeded default": {
			setup: func(reg *Registry) {
				reg.Register(ResponseSupplierKey, supplier)
				reg.Register(ResponseFactoryKey,
					NewSupplierResponseFactory(gjallar.NewResponse), AsDefault())
			},
			assert: func(t *testing.T, err error, handler *NotFoundHandler) {
				t.Helper()

				require.NoError(t, err)
				requireSupplierWrapped(t, handler)
			},
		},
		"alias pointing at the seeded default": {
			setup: func(reg *Registry) {
				reg.Register(ResponseSupplierKey, supplier)
				reg.Register("shared-factory",
					NewSupplierResponseFactory(gjallar.NewResponse), AsDefault())
				reg.RegisterAlias(ResponseFactoryKey, "shared-factory")
			},
			assert: func(t *testing.T, err error, handler *NotFoundHandler) {
				t.Helper()

				require.NoError(t, err)
				requireSupplierWrapped(t, handler)
			},
		},
		"response factory overridden": {
			setup: func(reg *Registry) {
				reg.Register(ResponseFactoryKey, override)
			},
			assert: func(t *testing.T, err error, handler *NotFoundHandler) {
				t.Helper()

				require.NoError(t, err)
				assert.Same(t, override, handler.rf)
			},
		},
		"response factory overridden via alias": {
			setup: func(reg *Registry) {
				reg.Register("custom-factory", override)
				reg.RegisterAlias(ResponseFactoryKey, "custom-factory")
			},
			assert: func(t *testing.T, err error, handler *NotFoundHandler) {
				t.Helper()

				require.NoError(t, err)
				assert.Same(t, override, handler.rf)
			},
		},
		"supplier registered as plain function": {
			setup: func(reg *Registry) {
				reg.Register(ResponseSupplierKey,
					func() *gjallar.Response { return response })
			},
			assert: func(t *testing.T, err error, handler *NotFoundHandler) {
				t.Helper()

				require.NoError(t, err)
				requireSupplierWrapped(t, handler)
			},
		},
		"no response producing service at all": {
			setup: func(_ *Registry) {},
			assert: func(t *testing.T, err error, _ *NotFoundHandler) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, ErrNoSuchService)
				assert.Contains(t, err.Error(), "id='"+ResponseSupplierKey+"'")
			},
		},
		"response factory override of wrong type": {
			setup: func(reg *Registry) {
				reg.Register(ResponseFactoryKey, "not a factory")
			},
			assert: func(t *testing.T, err error, _ *NotFoundHandler) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, gjallar.ErrConfiguration)
				assert.Contains(t, err.Error(), "not a response factory")
			},
		},
		"response supplier of wrong type": {
			setup: func(reg *Registry) {
				reg.Register(ResponseSupplierKey, 42)
			},
			assert: func(t *testing.T, err error, _ *NotFoundHandler) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, gjallar.ErrConfiguration)
				assert.Contains(t, err.Error(), "not a response supplier")
			},
		},
		"renderer registered": {
			setup: func(reg *Registry) {
				reg.Register(ResponseSupplierKey, supplier)
				reg.Register(TemplateRendererKey, renderer)
			},
			assert: func(t *testing.T, err error, handler *NotFoundHandler) {
				t.Helper()

				require.NoError(t, err)
				assert.Same(t, renderer, handler.renderer)
			},
		},
		"renderer of wrong type": {
			setup: func(reg *Registry) {
				reg.Register(ResponseSupplierKey, supplier)
				reg.Register(TemplateRendererKey, "not a renderer")
			},
			assert: func(t *testing.T, err error, _ *NotFoundHandler) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, gjallar.ErrConfiguration)
				assert.Contains(t, err.Error(), "not a template renderer")
			},
		},
		"template and layout from map shaped config": {
			setup: func(reg *Registry) {
				reg.Register(ResponseSupplierKey, supplier)
			},
			conf: map[string]any{
				"gjallar": map[string]any{
					"error_handler": map[string]any{
						"template_404": "foo::bar",
						"layout":       "layout::error",
					},
				},
			},
			assert: func(t *testing.T, err error, handler *NotFoundHandler) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "foo::bar", handler.template)
				assert.Equal(t, "layout::error", handler.layout)
			},
		},
		"explicit nil layout in config": {
			setup: func(reg *Registry) {
				reg.Register(ResponseSupplierKey, supplier)
			},
			conf: map[string]any{
				"gjallar": map[string]any{
					"error_handler": map[string]any{"layout": nil},
				},
			},
			assert: func(t *testing.T, err error, handler *NotFoundHandler) {
				t.Helper()

				require.NoError(t, err)
				assert.Empty(t, handler.layout)
			},
		},
		"indexable object shaped config": {
			setup: func(reg *Registry) {
				reg.Register(ResponseSupplierKey, supplier)
			},
			conf: asGetter(t, map[string]any{
				"gjallar": map[string]any{
					"error_handler": map[string]any{
						"template_404": "foo::bar",
						"layout":       "layout::error",
					},
				},
			}),
			assert: func(t *testing.T, err error, handler *NotFoundHandler) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "foo::bar", handler.template)
				assert.Equal(t, "layout::error", handler.layout)
			},
		},
		"config of unexpected shape": {
			setup: func(reg *Registry) {
				reg.Register(ResponseSupplierKey, supplier)
			},
			conf: "gibberish",
			assert: func(t *testing.T, err error, handler *NotFoundHandler) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, DefaultTemplate, handler.template)
				assert.Empty(t, handler.layout)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			reg := NewRegistry()
			tc.setup(reg)

			// WHEN
			handler, err := CreateNotFoundHandler(reg, tc.conf)

			// THEN
			tc.assert(t, err, handler)
		})
	}
}

func TestCreateNotFoundHandlerIsIdempotent(t *testing.T) {
	t.Parallel()

	// GIVEN
	response := gjallar.NewResponse()
	renderer := mocks.NewRendererMock(t)

	reg := NewRegistry()
	reg.Register(ResponseSupplierKey,
		ResponseSupplier(func() *gjallar.Response { return response }))
	reg.Register(TemplateRendererKey, renderer)

	conf := map[string]any{
		"gjallar": map[string]any{
			"error_handler": map[string]any{
				"template_404": "foo::bar",
				"layout":       "layout::error",
			},
		},
	}

	// WHEN
	first, err1 := CreateNotFoundHandler(reg, conf)
	second, err2 := CreateNotFoundHandler(reg, conf)

	// THEN
	require.NoError(t, err1)
	require.NoError(t, err2)

	assert.NotSame(t, first, second)
	assert.Equal(t, *first.opts, *second.opts)

	rf1, ok := first.rf.(*SupplierResponseFactory)
	require.True(t, ok)
	rf2, ok := second.rf.(*SupplierResponseFactory)
	require.True(t, ok)

	assert.Same(t, rf1.Supplier()(), rf2.Supplier()())
}
