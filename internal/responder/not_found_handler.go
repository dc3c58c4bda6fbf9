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
	"fmt"
	"html/template"
	"net/http"

	"github.com/elnormous/contenttype"
	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/accesscontext"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/x/stringx"
)

// NotFoundHandler answers every request it receives. The response body is
// either rendered using the configured template, or, without a renderer,
// negotiated based on the Accept header of the request.
type NotFoundHandler struct {
	rf ResponseFactory

	*opts
}

func NewNotFoundHandler(rf ResponseFactory, options ...Option) *NotFoundHandler {
	handlerOpts := defaultOptions()

	for _, opt := range options {
		opt(handlerOpts)
	}

	return &NotFoundHandler{rf: rf, opts: handlerOpts}
}

// With returns a copy of the handler with the given options applied on top
// of its current configuration.
func (h *NotFoundHandler) With(options ...Option) *NotFoundHandler {
	clone := *h.opts

	for _, opt := range options {
		opt(&clone)
	}

	return &NotFoundHandler{rf: h.rf, opts: &clone}
}

func (h *NotFoundHandler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	res := h.rf.CreateResponse()
	res.WithStatus(h.code)

	if h.renderer != nil {
		body, err := h.render(req)
		if err == nil {
			res.WithHeader("Content-Type", "text/html; charset=utf-8").
				WithBody(stringx.ToBytes(body))
		} else {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("Rendering the error page failed")

			h.negotiate(res, req)
		}
	} else {
		h.negotiate(res, req)
	}

	if err := res.Write(rw); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Failed writing response")
	}

	accesscontext.SetError(ctx, gjallar.ErrNotFound)
}

func (h *NotFoundHandler) render(req *http.Request) (string, error) {
	values := map[string]any{
		"Method": req.Method,
		"URL":    req.URL.String(),
		"Host":   req.Host,
	}

	page, err := h.renderer.Render(h.template, values)
	if err != nil {
		return "", err
	}

	if len(h.layout) == 0 {
		return page, nil
	}

	// the page was rendered by the same engine and is safe to embed unescaped
	values["Content"] = template.HTML(page) //nolint:gosec

	return h.renderer.Render(h.layout, values)
}

func (h *NotFoundHandler) negotiate(res *gjallar.Response, req *http.Request) {
	var (
		mt   contenttype.MediaType
		body []byte
		err  error
	)

	message := fmt.Sprintf("Cannot %s %s", req.Method, req.URL.String())

	if len(h.contentType) != 0 {
		mt, body, err = formatAs(contenttype.NewMediaType(h.contentType), message)
	} else {
		mt, body, err = format(req, message)
	}

	if err != nil {
		zerolog.Ctx(req.Context()).Warn().Err(err).
			Msg("Response format negotiation failed. No body is sent")

		return
	}

	res.WithHeader("Content-Type", mt.String()).
		WithHeader("X-Content-Type-Options", "nosniff").
		WithBody(body)
}
