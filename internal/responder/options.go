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
	"net/http"

	"github.com/dadrus/gjallar/internal/templates"
)

// DefaultTemplate is the name of the template rendered by the catch-all
// handler if not configured otherwise.
const DefaultTemplate = "404"

type opts struct {
	renderer    templates.Renderer
	template    string
	layout      string
	code        int
	contentType string
}

type Option func(*opts)

func defaultOptions() *opts {
	return &opts{
		template: DefaultTemplate,
		code:     http.StatusNotFound,
	}
}

// WithRenderer sets the renderer used to render the response body. Without
// a renderer the body is negotiated based on the Accept header.
func WithRenderer(renderer templates.Renderer) Option {
	return func(o *opts) {
		if renderer != nil {
			o.renderer = renderer
		}
	}
}

// WithTemplate sets the name of the template to render.
func WithTemplate(name string) Option {
	return func(o *opts) {
		if len(name) != 0 {
			o.template = name
		}
	}
}

// WithLayout sets the name of the layout template the rendered page is
// wrapped into. An empty name means no layout wrapping.
func WithLayout(name string) Option {
	return func(o *opts) {
		o.layout = name
	}
}

// WithResponseCode sets the status code of the response. Defaults to 404.
func WithResponseCode(code int) Option {
	return func(o *opts) {
		if code != 0 {
			o.code = code
		}
	}
}

// WithContentType pins the content type of the negotiated response body,
// bypassing the Accept header evaluation. It has no effect if a renderer
// is used.
func WithContentType(contentType string) Option {
	return func(o *opts) {
		if len(contentType) != 0 {
			o.contentType = contentType
		}
	}
}

// WithoutRenderer disables template rendering, so that the response body is
// always negotiated.
func WithoutRenderer() Option {
	return func(o *opts) {
		o.renderer = nil
	}
}
