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
	"crypto/tls"
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/gjallar/internal/x/testsupport"
)

func decodeConfig[T any](t *testing.T, hook mapstructure.DecodeHookFunc, rawConfig []byte) (T, error) {
	t.Helper()

	var typ T

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: hook,
		Result:     &typ,
	})
	require.NoError(t, err)

	conf, err := testsupport.DecodeTestConfig(rawConfig)
	require.NoError(t, err)

	return typ, dec.Decode(conf)
}

func TestDecodeLogLevel(t *testing.T) {
	t.Parallel()

	type logConfig struct {
		Level zerolog.Level `mapstructure:"level"`
	}

	for uc, tc := range map[string]struct {
		level    string
		expected zerolog.Level
	}{
		"panic level":                      {"panic", zerolog.PanicLevel},
		"fatal level":                      {"fatal", zerolog.FatalLevel},
		"error level":                      {"error", zerolog.ErrorLevel},
		"warn level":                       {"warn", zerolog.WarnLevel},
		"info level":                       {"info", zerolog.InfoLevel},
		"debug level":                      {"debug", zerolog.DebugLevel},
		"trace level":                      {"trace", zerolog.TraceLevel},
		"no level":                         {"no", zerolog.NoLevel},
		"disabled":                         {"disabled", zerolog.Disabled},
		"unknown level falls back to info": {"foo", zerolog.InfoLevel},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			typ, err := decodeConfig[logConfig](t, logLevelDecodeHookFunc, []byte("level: "+tc.level))

			// THEN
			require.NoError(t, err)
			assert.Equal(t, tc.expected, typ.Level)
		})
	}
}

func TestDecodeLogFormat(t *testing.T) {
	t.Parallel()

	type logConfig struct {
		Format LogFormat `mapstructure:"format"`
	}

	for uc, tc := range map[string]struct {
		format   string
		expected LogFormat
	}{
		"gelf format":                       {"gelf", LogGelfFormat},
		"text format":                       {"text", LogTextFormat},
		"unknown format falls back to text": {"foo", LogTextFormat},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			typ, err := decodeConfig[logConfig](t, logFormatDecodeHookFunc, []byte("format: "+tc.format))

			// THEN
			require.NoError(t, err)
			assert.Equal(t, tc.expected, typ.Format)
		})
	}
}

func TestDecodeTLSMinVersion(t *testing.T) {
	t.Parallel()

	type tlsConfig struct {
		MinVersion TLSMinVersion `mapstructure:"min_version"`
	}

	for uc, tc := range map[string]struct {
		config   []byte
		expected TLSMinVersion
		expError string
	}{
		"TLS1.2": {config: []byte(`min_version: TLS1.2`), expected: TLSMinVersion(tls.VersionTLS12)},
		"TLS1.3": {config: []byte(`min_version: TLS1.3`), expected: TLSMinVersion(tls.VersionTLS13)},
		"outdated TLS version is rejected": {
			config:   []byte(`min_version: TLS1.1`),
			expError: "unsupported TLS version",
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			typ, err := decodeConfig[tlsConfig](t, DecodeTLSMinVersionHookFunc, tc.config)

			// THEN
			if len(tc.expError) != 0 {
				require.ErrorContains(t, err, tc.expError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, typ.MinVersion)
			}
		})
	}
}

func TestDecodeTLSCipherSuites(t *testing.T) {
	t.Parallel()

	type tlsConfig struct {
		CipherSuites TLSCipherSuites `mapstructure:"cipher_suites"`
	}

	for uc, tc := range map[string]struct {
		config   []byte
		expected TLSCipherSuites
		expError string
	}{
		"supported suites": {
			config: []byte(`
cipher_suites:
  - TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256
  - TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384
`),
			expected: TLSCipherSuites{
				tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
				tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			},
		},
		"unknown suite is rejected": {
			config:   []byte(`cipher_suites: [ TLS_FOO_BAR ]`),
			expError: "unsupported cipher suite",
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			typ, err := decodeConfig[tlsConfig](t, DecodeTLSCipherSuiteHookFunc, tc.config)

			// THEN
			if len(tc.expError) != 0 {
				require.ErrorContains(t, err, tc.expError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, typ.CipherSuites)
			}
		})
	}
}
