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

package errorhandler

import (
	"errors"
	"net/http"

	"github.com/elnormous/contenttype"
	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/accesscontext"
	"github.com/dadrus/gjallar/internal/gjallar"
)

//go:generate mockery --name ErrorHandler --structname ErrorHandlerMock

// ErrorHandler maps errors raised while serving a request to HTTP responses.
type ErrorHandler interface {
	HandleError(rw http.ResponseWriter, req *http.Request, err error)
}

func New(opts ...Option) ErrorHandler {
	handler := &errorHandler{
		argumentCode:      http.StatusBadRequest,
		communicationCode: http.StatusBadGateway,
		methodCode:        http.StatusMethodNotAllowed,
		notFoundCode:      http.StatusNotFound,
		internalCode:      http.StatusInternalServerError,
	}

	for _, opt := range opts {
		opt(handler)
	}

	return handler
}

type errorHandler struct {
	verboseErrors     bool
	argumentCode      int
	communicationCode int
	methodCode        int
	notFoundCode      int
	internalCode      int
}

func (h *errorHandler) HandleError(rw http.ResponseWriter, req *http.Request, err error) {
	ctx := req.Context()

	switch {
	case errors.Is(err, gjallar.ErrArgument):
		h.respond(rw, req, h.argumentCode, err)
	case errors.Is(err, gjallar.ErrCommunicationTimeout) || errors.Is(err, gjallar.ErrCommunication):
		h.respond(rw, req, h.communicationCode, err)
	case errors.Is(err, gjallar.ErrMethodNotAllowed):
		h.respond(rw, req, h.methodCode, err)
	case errors.Is(err, gjallar.ErrNotFound):
		h.respond(rw, req, h.notFoundCode, err)
	default:
		zerolog.Ctx(ctx).Error().Err(err).Msg("Internal error occurred")

		h.respond(rw, req, h.internalCode, err)
	}

	accesscontext.SetError(ctx, err)
}

// respond writes the response for the given error. A body is only sent if
// verbose errors are enabled and the content negotiation succeeded.
func (h *errorHandler) respond(rw http.ResponseWriter, req *http.Request, code int, cause error) {
	var (
		mt   contenttype.MediaType
		body []byte
	)

	if h.verboseErrors {
		var err error
		if mt, body, err = format(req, cause); err != nil {
			zerolog.Ctx(req.Context()).Warn().Err(err).
				Msg("Response format negotiation failed. No body is sent")
		}
	}

	if len(body) != 0 {
		rw.Header().Set("Content-Type", mt.String())
		rw.Header().Set("X-Content-Type-Options", "nosniff")
	}

	rw.WriteHeader(code)

	if len(body) != 0 {
		rw.Write(body) //nolint:errcheck
	}
}
