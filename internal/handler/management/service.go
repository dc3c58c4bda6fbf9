// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
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

package management

import (
	"net/http"

	"github.com/ccoveille/go-safecast"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/handler/middleware/http/accesslog"
	"github.com/dadrus/gjallar/internal/handler/middleware/http/dump"
	"github.com/dadrus/gjallar/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/gjallar/internal/handler/middleware/http/logger"
	"github.com/dadrus/gjallar/internal/handler/middleware/http/passthrough"
	prometheus2 "github.com/dadrus/gjallar/internal/handler/middleware/http/prometheus"
	"github.com/dadrus/gjallar/internal/handler/middleware/http/recovery"
	"github.com/dadrus/gjallar/internal/x"
	"github.com/dadrus/gjallar/internal/x/loggeradapter"
)

func newService(conf *config.Configuration, reg prometheus.Registerer, log zerolog.Logger) *http.Server {
	cfg := conf.Management
	eh := errorhandler.New()
	opFilter := func(req *http.Request) bool { return req.URL.Path == EndpointHealth }

	hc := alice.New(
		accesslog.New(log),
		logger.New(log),
		dump.New(),
		recovery.New(eh),
		x.IfThenElseExec(conf.Metrics.Enabled,
			func() func(http.Handler) http.Handler {
				return prometheus2.New(
					prometheus2.WithServiceName("management"),
					prometheus2.WithRegisterer(reg),
					prometheus2.WithOperationFilter(opFilter),
				)
			},
			func() func(http.Handler) http.Handler { return passthrough.New },
		),
		x.IfThenElseExec(cfg.CORS != nil,
			func() func(http.Handler) http.Handler {
				return cors.New(cors.Options{
					AllowedOrigins:   cfg.CORS.AllowedOrigins,
					AllowedMethods:   cfg.CORS.AllowedMethods,
					AllowedHeaders:   cfg.CORS.AllowedHeaders,
					AllowCredentials: cfg.CORS.AllowCredentials,
					ExposedHeaders:   cfg.CORS.ExposedHeaders,
					MaxAge:           int(cfg.CORS.MaxAge.Seconds()),
				}).Handler
			},
			func() func(http.Handler) http.Handler { return passthrough.New },
		),
	)

	return &http.Server{
		Handler:        hc.Then(newManagementHandler()),
		ReadTimeout:    cfg.Timeout.Read,
		WriteTimeout:   cfg.Timeout.Write,
		IdleTimeout:    cfg.Timeout.Idle,
		MaxHeaderBytes: safecast.MustConvert[int](uint64(cfg.BufferLimit.Read)),
		ErrorLog:       loggeradapter.NewStdLogger(log),
	}
}
