// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
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

package fallback

import (
	"net/http"

	"github.com/gobwas/glob"

	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/responder"
	"github.com/dadrus/gjallar/internal/x/errorchain"
)

type override struct {
	matchers []glob.Glob
	handler  http.Handler
}

func (o *override) matches(path string) bool {
	for _, matcher := range o.matchers {
		if matcher.Match(path) {
			return true
		}
	}

	return false
}

// Handler implements the actual catch-all behavior of the service. Every
// request is answered with the configured response. If overrides are
// configured, the first one with a matching path pattern takes precedence
// over the default response.
type Handler struct {
	dflt      http.Handler
	overrides []*override
}

// NewHandler creates the catch-all handler for the given response overrides
// with nfh answering all requests not covered by any of them.
func NewHandler(nfh *responder.NotFoundHandler, conf []config.OverrideConfig) (*Handler, error) {
	overrides := make([]*override, 0, len(conf))

	for _, oc := range conf {
		options := []responder.Option{
			responder.WithTemplate(oc.Template),
			responder.WithResponseCode(oc.Code),
		}

		if len(oc.ContentType) != 0 {
			options = append(options,
				responder.WithoutRenderer(),
				responder.WithContentType(oc.ContentType))
		}

		matchers := make([]glob.Glob, 0, len(oc.Paths))

		for _, pattern := range oc.Paths {
			matcher, err := glob.Compile(pattern, '/')
			if err != nil {
				return nil, errorchain.NewWithMessagef(gjallar.ErrConfiguration,
					"failed compiling path pattern '%s'", pattern).CausedBy(err)
			}

			matchers = append(matchers, matcher)
		}

		overrides = append(overrides, &override{
			matchers: matchers,
			handler:  nfh.With(options...),
		})
	}

	return &Handler{dflt: nfh, overrides: overrides}, nil
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	for _, o := range h.overrides {
		if o.matches(req.URL.Path) {
			o.handler.ServeHTTP(rw, req)

			return
		}
	}

	h.dflt.ServeHTTP(rw, req)
}
