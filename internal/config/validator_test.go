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

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dadrus/gjallar/internal/gjallar"
)

func TestValidateConfigSchema(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc        string
		config    string
		expectErr bool
	}{
		{
			uc:        "malformed yaml",
			config:    "foo: [bar",
			expectErr: true,
		},
		{
			uc:        "unknown property",
			config:    "foo: bar",
			expectErr: true,
		},
		{
			uc:        "wrong type",
			config:    "serve:\n  port: foo",
			expectErr: true,
		},
		{
			uc:        "unknown log level",
			config:    "log:\n  level: verbose",
			expectErr: true,
		},
		{
			uc:        "tls without key",
			config:    "serve:\n  tls:\n    cert: /path/to/cert.pem",
			expectErr: true,
		},
		{
			uc: "valid config",
			config: `
serve:
  host: 127.0.0.1
  port: 4458
  timeout:
    read: 5s
management:
  port: 4459
metrics:
  enabled: true
log:
  level: debug
cache:
  type: in-memory
  config:
    max_entries: 100
templates:
  paths:
    - /etc/gjallar/templates
  watch: true
gjallar:
  error_handler:
    template_404: "404"
    layout: null
    overrides:
      - paths: [ "/api/**" ]
        content_type: application/json
`,
		},
		{
			uc:     "empty config",
			config: "{}",
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// WHEN
			err := ValidateConfigSchema(strings.NewReader(tc.config))

			// THEN
			if tc.expectErr {
				require.Error(t, err)
				require.ErrorIs(t, err, gjallar.ErrConfiguration)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
