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

package fxlcm

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/handler/listener"
	"github.com/dadrus/gjallar/internal/watcher"
	"github.com/dadrus/gjallar/internal/x/errorchain"
)

//go:generate mockery --name Server --structname ServerMock

type Server interface {
	Serve(l net.Listener) error
	Shutdown(ctx context.Context) error
}

// LifecycleManager integrates a Server with the fx application lifecycle.
// Start is non-blocking. A serve failure after successful startup
// terminates the process.
type LifecycleManager struct {
	ServiceName    string
	ServiceAddress string
	Server         Server
	Logger         zerolog.Logger
	TLSConf        *config.TLS
	FileWatcher    watcher.Watcher
}

func (m *LifecycleManager) Start(_ context.Context) error {
	ln, err := listener.New("tcp", m.ServiceName, m.ServiceAddress, m.TLSConf, m.FileWatcher)
	if err != nil {
		return errorchain.NewWithMessagef(gjallar.ErrInternal,
			"Could not create listener for %s service", m.ServiceName).
			CausedBy(err)
	}

	log := m.serviceLogger()

	log.Info().Str("_address", ln.Addr().String()).Msg("Starting listening")

	if m.TLSConf == nil {
		log.Warn().Msg("TLS is disabled.")
	}

	go m.serve(ln, log)

	return nil
}

func (m *LifecycleManager) Stop(ctx context.Context) error {
	log := m.serviceLogger()

	log.Info().Msg("Tearing down service")

	if err := m.Server.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Graceful shutdown failed")

		return err
	}

	return nil
}

func (m *LifecycleManager) serviceLogger() zerolog.Logger {
	return m.Logger.With().Str("_service", m.ServiceName).Logger()
}

func (m *LifecycleManager) serve(ln net.Listener, log zerolog.Logger) {
	switch err := m.Server.Serve(ln); {
	case err == nil:
	case errors.Is(err, http.ErrServerClosed):
		log.Info().Msg("Service stopped")
	default:
		log.Fatal().Err(err).Msg("Could not start service")
	}
}
