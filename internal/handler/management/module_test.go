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

package management

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/watcher/mocks"
)

func TestNewLifecycleManager(t *testing.T) {
	t.Parallel()

	// GIVEN
	conf := &config.Configuration{
		Management: config.ManagementConfig{
			Host: "127.0.0.1",
			Port: 4457,
			TLS:  &config.TLS{CertFile: "/path/to/cert.pem", KeyFile: "/path/to/key.pem"},
		},
	}

	// WHEN
	lcm := newLifecycleManager(conf, log.Logger, prometheus.NewRegistry(), mocks.NewWatcherMock(t))

	// THEN
	require.NotNil(t, lcm)
	assert.Equal(t, "Management", lcm.ServiceName)
	assert.Equal(t, "127.0.0.1:4457", lcm.ServiceAddress)
	assert.NotNil(t, lcm.Server)
	assert.Equal(t, conf.Management.TLS, lcm.TLSConf)
	assert.NotNil(t, lcm.FileWatcher)
}
