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

package logger

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/accesscontext"
)

// New returns a middleware making a request scoped logger available via the
// request context. The logger is tagged with the request id established by
// the access log middleware, which must therefore be placed in front of it.
func New(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			logCtx := logger.With()
			if reqID := accesscontext.RequestID(ctx); len(reqID) != 0 {
				logCtx = logCtx.Str("_request_id", reqID)
			}

			log := logCtx.Logger()

			next.ServeHTTP(rw, req.WithContext(log.WithContext(ctx)))
		})
	}
}
