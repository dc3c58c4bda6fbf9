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

package fallback

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/gjallar/internal/cache"
	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/handler/fxlcm"
	"github.com/dadrus/gjallar/internal/responder"
	"github.com/dadrus/gjallar/internal/templates"
	"github.com/dadrus/gjallar/internal/watcher"
)

var Module = fx.Invoke( // nolint: gochecknoglobals
	fx.Annotate(
		newLifecycleManager,
		fx.OnStart(func(ctx context.Context, lcm *fxlcm.LifecycleManager) error { return lcm.Start(ctx) }),
		fx.OnStop(func(ctx context.Context, lcm *fxlcm.LifecycleManager) error { return lcm.Stop(ctx) }),
	),
)

func newLifecycleManager(
	conf *config.Configuration,
	logger zerolog.Logger,
	reg prometheus.Registerer,
	cch cache.Cache,
	nfh *responder.NotFoundHandler,
	rnd templates.Renderer,
	cw watcher.Watcher,
) (*fxlcm.LifecycleManager, error) {
	cfg := conf.Serve

	srv, err := newService(conf, reg, cch, logger, nfh, rnd)
	if err != nil {
		return nil, err
	}

	return &fxlcm.LifecycleManager{
		ServiceName:    "Fallback",
		ServiceAddress: cfg.Address(),
		Server:         srv,
		Logger:         logger,
		TLSConf:        cfg.TLS,
		FileWatcher:    cw,
	}, nil
}
