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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/gjallar/internal/accesscontext"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/x/testsupport"
)

func TestHandlerExecution(t *testing.T) {
	for uc, tc := range map[string]struct {
		method        string
		setHeader     func(t *testing.T, req *http.Request)
		handleRequest func(t *testing.T, rw http.ResponseWriter, req *http.Request)
		assert        func(t *testing.T, clientReq *http.Request, resp *http.Response, logEvent1, logEvent2 map[string]any)
	}{
		"without request id and x-* header": {
			method:    http.MethodGet,
			setHeader: func(t *testing.T, _ *http.Request) { t.Helper() },
			handleRequest: func(t *testing.T, rw http.ResponseWriter, _ *http.Request) {
				t.Helper()

				rw.WriteHeader(http.StatusOK)
			},
			assert: func(t *testing.T, clientReq *http.Request, resp *http.Response, logEvent1, logEvent2 map[string]any) {
				t.Helper()

				require.Len(t, logEvent1, 10)
				assert.Equal(t, "info", logEvent1["level"])
				assert.Contains(t, logEvent1, "_tx_start")
				assert.Contains(t, logEvent1, "_client_ip")
				assert.Contains(t, logEvent1, "_http_user_agent")
				assert.Equal(t, clientReq.Method, logEvent1["_http_method"])
				assert.Equal(t, clientReq.URL.Host, logEvent1["_http_host"])
				assert.Equal(t, clientReq.URL.Path, logEvent1["_http_path"])
				assert.Equal(t, clientReq.URL.Scheme, logEvent1["_http_scheme"])
				assert.NotEmpty(t, logEvent1["_request_id"])
				assert.Equal(t, "TX started", logEvent1["message"])

				assert.Equal(t, logEvent1["_request_id"], resp.Header.Get("X-Request-ID"))

				require.Len(t, logEvent2, 13)
				assert.Equal(t, "info", logEvent2["level"])
				assert.Contains(t, logEvent2, "_tx_start")
				assert.Contains(t, logEvent2, "_tx_duration_ms")
				assert.Contains(t, logEvent2, "_client_ip")
				assert.Equal(t, clientReq.Method, logEvent2["_http_method"])
				assert.Equal(t, clientReq.URL.Host, logEvent2["_http_host"])
				assert.Equal(t, clientReq.URL.Path, logEvent2["_http_path"])
				assert.Equal(t, clientReq.URL.Scheme, logEvent2["_http_scheme"])
				assert.Equal(t, logEvent1["_request_id"], logEvent2["_request_id"])
				assert.Contains(t, logEvent2, "_body_bytes_sent")
				assert.InDelta(t, float64(http.StatusOK), logEvent2["_http_status_code"], 0.001)
				assert.NotContains(t, logEvent2, "error")
				assert.Equal(t, "TX finished", logEvent2["message"])
			},
		},
		"with given request id": {
			method: http.MethodGet,
			setHeader: func(t *testing.T, req *http.Request) {
				t.Helper()

				req.Header.Set("X-Request-ID", "test-id-123")
			},
			handleRequest: func(t *testing.T, rw http.ResponseWriter, _ *http.Request) {
				t.Helper()

				rw.WriteHeader(http.StatusOK)
			},
			assert: func(t *testing.T, _ *http.Request, resp *http.Response, logEvent1, logEvent2 map[string]any) {
				t.Helper()

				assert.Equal(t, "test-id-123", logEvent1["_request_id"])
				assert.Equal(t, "test-id-123", logEvent2["_request_id"])
				assert.Equal(t, "test-id-123", resp.Header.Get("X-Request-ID"))
			},
		},
		"with x-* header and error": {
			method: http.MethodPost,
			setHeader: func(t *testing.T, req *http.Request) {
				t.Helper()

				req.Header.Set("X-Forwarded-Proto", "https")
				req.Header.Set("X-Forwarded-Host", "foobar.com")
				req.Header.Set("X-Forwarded-Uri", "https://foobar.com/bar")
				req.Header.Set("X-Forwarded-For", "127.0.0.1")
				req.Header.Set("Forwarded", "for=127.0.0.1")
			},
			handleRequest: func(t *testing.T, rw http.ResponseWriter, req *http.Request) {
				t.Helper()

				accesscontext.SetError(req.Context(), gjallar.ErrNotFound)
				rw.WriteHeader(http.StatusNotFound)
			},
			assert: func(t *testing.T, clientReq *http.Request, _ *http.Response, logEvent1, logEvent2 map[string]any) {
				t.Helper()

				require.Len(t, logEvent1, 15)
				assert.Equal(t, clientReq.Method, logEvent1["_http_method"])
				assert.Equal(t, "https", logEvent1["_http_x_forwarded_proto"])
				assert.Equal(t, "foobar.com", logEvent1["_http_x_forwarded_host"])
				assert.Equal(t, "https://foobar.com/bar", logEvent1["_http_x_forwarded_uri"])
				assert.Equal(t, "127.0.0.1", logEvent1["_http_x_forwarded_for"])
				assert.Equal(t, "for=127.0.0.1", logEvent1["_http_forwarded"])
				assert.Equal(t, "TX started", logEvent1["message"])

				require.Len(t, logEvent2, 19)
				assert.InDelta(t, float64(http.StatusNotFound), logEvent2["_http_status_code"], 0.001)
				assert.Equal(t, "no resource found", logEvent2["error"])
				assert.Equal(t, "TX finished", logEvent2["message"])
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			tb := &testsupport.TestingLog{TB: t}
			logger := zerolog.New(zerolog.TestWriter{T: tb})

			srv := httptest.NewServer(
				alice.New(New(logger)).ThenFunc(func(rw http.ResponseWriter, req *http.Request) {
					tc.handleRequest(t, rw, req)
				}),
			)

			defer srv.Close()

			req, err := http.NewRequestWithContext(t.Context(), tc.method, srv.URL+"/test", nil)
			require.NoError(t, err)

			tc.setHeader(t, req)

			// WHEN
			resp, err := srv.Client().Do(req)

			// THEN
			require.NoError(t, err)
			require.NoError(t, resp.Body.Close())

			events := strings.Split(tb.CollectedLog(), "}")
			require.Len(t, events, 3)

			var (
				logLine1 map[string]any
				logLine2 map[string]any
			)

			require.NoError(t, json.Unmarshal([]byte(events[0]+"}"), &logLine1))
			require.NoError(t, json.Unmarshal([]byte(events[1]+"}"), &logLine2))

			tc.assert(t, req, resp, logLine1, logLine2)
		})
	}
}
