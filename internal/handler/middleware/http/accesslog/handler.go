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

package accesslog

import (
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/accesscontext"
	"github.com/dadrus/gjallar/internal/x"
	"github.com/dadrus/gjallar/internal/x/httpx"
)

// nolint: gochecknoglobals
var forwardedHeaders = []struct {
	name  string
	field string
}{
	{"X-Forwarded-Proto", "_http_x_forwarded_proto"},
	{"X-Forwarded-Host", "_http_x_forwarded_host"},
	{"X-Forwarded-Uri", "_http_x_forwarded_uri"},
	{"X-Forwarded-For", "_http_x_forwarded_for"},
	{"Forwarded", "_http_forwarded"},
}

type handler struct {
	next http.Handler
	log  zerolog.Logger
}

// New creates a middleware logging the start and the completion of each
// transaction, together with the effective request id.
func New(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return &handler{next: next, log: logger.Level(zerolog.InfoLevel)}
	}
}

func (h *handler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	start := time.Now()
	ctx := accesscontext.New(req.Context())
	req = req.WithContext(ctx)

	reqID := requestID(req)
	accesscontext.SetRequestID(ctx, reqID)
	rw.Header().Set("X-Request-ID", reqID)

	logCtx := h.log.With().
		Int64("_tx_start", start.Unix()).
		Str("_request_id", reqID).
		Str("_client_ip", httpx.IPFromHostPort(req.RemoteAddr)).
		Str("_http_method", req.Method).
		Str("_http_path", req.URL.Path).
		Str("_http_user_agent", req.Header.Get("User-Agent")).
		Str("_http_host", req.Host).
		Str("_http_scheme", x.IfThenElse(req.TLS != nil, "https", "http"))

	for _, header := range forwardedHeaders {
		if value := req.Header.Get(header.name); len(value) != 0 {
			logCtx = logCtx.Str(header.field, value)
		}
	}

	accLog := logCtx.Logger()
	accLog.Info().Msg("TX started")

	metrics := httpsnoop.CaptureMetrics(h.next, rw, req)

	evt := accLog.Info()
	if err := accesscontext.Error(ctx); err != nil {
		evt = evt.Err(err)
	}

	evt.Int64("_body_bytes_sent", metrics.Written).
		Int("_http_status_code", metrics.Code).
		Int64("_tx_duration_ms", time.Since(start).Milliseconds()).
		Msg("TX finished")
}

func requestID(req *http.Request) string {
	if id := req.Header.Get("X-Request-ID"); len(id) != 0 {
		return id
	}

	return uuid.NewString()
}
