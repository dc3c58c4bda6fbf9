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
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/gjallar/internal/cache/mocks"
	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/handler/fxlcm"
	"github.com/dadrus/gjallar/internal/responder"
	mocks3 "github.com/dadrus/gjallar/internal/watcher/mocks"
)

func TestNewLifecycleManager(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		conf   *config.Configuration
		assert func(t *testing.T, err error, conf *config.Configuration, lcm *fxlcm.LifecycleManager)
	}{
		"with invalid override configuration": {
			conf: &config.Configuration{
				Gjallar: config.AppConfig{
					ErrorHandler: config.ErrorHandlerConfig{
						Overrides: []config.OverrideConfig{{Paths: []string{"/api/[invalid"}}},
					},
				},
			},
			assert: func(t *testing.T, err error, _ *config.Configuration, _ *fxlcm.LifecycleManager) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, gjallar.ErrConfiguration)
			},
		},
		"successful": {
			conf: &config.Configuration{
				Serve: config.ServeConfig{
					Host: "127.0.0.1",
					Port: 4458,
					TLS:  &config.TLS{CertFile: "/path/to/cert.pem", KeyFile: "/path/to/key.pem"},
				},
			},
			assert: func(t *testing.T, err error, conf *config.Configuration, lcm *fxlcm.LifecycleManager) {
				t.Helper()

				require.NoError(t, err)
				require.NotNil(t, lcm)
				assert.Equal(t, "Fallback", lcm.ServiceName)
				assert.Equal(t, "127.0.0.1:4458", lcm.ServiceAddress)
				assert.NotNil(t, lcm.Server)
				assert.Equal(t, conf.Serve.TLS, lcm.TLSConf)
				assert.NotNil(t, lcm.FileWatcher)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			nfh := responder.NewNotFoundHandler(responder.NewSupplierResponseFactory(gjallar.NewResponse))

			// WHEN
			lcm, err := newLifecycleManager(
				tc.conf, log.Logger, prometheus.NewRegistry(), mocks.NewCacheMock(t), nfh, nil, mocks3.NewWatcherMock(t))

			// THEN
			tc.assert(t, err, tc.conf, lcm)
		})
	}
}
