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

package gjallar_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/gjallar/internal/gjallar"
)

func TestNewResponse(t *testing.T) {
	t.Parallel()

	// WHEN
	res := gjallar.NewResponse()

	// THEN
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Empty(t, res.Header)
	assert.Empty(t, res.Body)
}

func TestResponseWrite(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		build  func(res *gjallar.Response) *gjallar.Response
		assert func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		"empty response": {
			build: func(res *gjallar.Response) *gjallar.Response { return res },
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Empty(t, rec.Header())
				assert.Zero(t, rec.Body.Len())
			},
		},
		"status and body set": {
			build: func(res *gjallar.Response) *gjallar.Response {
				return res.WithStatus(http.StatusNotFound).WithBody([]byte("nothing here"))
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()

				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, "nothing here", rec.Body.String())
			},
		},
		"headers set before the status line": {
			build: func(res *gjallar.Response) *gjallar.Response {
				return res.WithStatus(http.StatusTeapot).
					WithHeader("Content-Type", "text/plain").
					WithHeader("X-Foo", "bar")
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()

				assert.Equal(t, http.StatusTeapot, rec.Code)
				assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
				assert.Equal(t, "bar", rec.Header().Get("X-Foo"))
			},
		},
		"header value overwritten": {
			build: func(res *gjallar.Response) *gjallar.Response {
				return res.WithHeader("Content-Type", "text/plain").
					WithHeader("Content-Type", "application/json")
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				t.Helper()

				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			res := tc.build(gjallar.NewResponse())
			rec := httptest.NewRecorder()

			// WHEN
			err := res.Write(rec)

			// THEN
			require.NoError(t, err)
			tc.assert(t, rec)
		})
	}
}

func TestResponseWriteForwardsWriterError(t *testing.T) {
	t.Parallel()

	// GIVEN
	res := gjallar.NewResponse().WithBody([]byte("some body"))

	// WHEN
	err := res.Write(&failingResponseWriter{err: errors.New("connection reset")})

	// THEN
	require.Error(t, err)
	require.ErrorContains(t, err, "connection reset")
}

type failingResponseWriter struct {
	err error

	header http.Header
}

func (w *failingResponseWriter) Header() http.Header {
	if w.header == nil {
		w.header = make(http.Header)
	}

	return w.header
}

func (w *failingResponseWriter) Write([]byte) (int, error) { return 0, w.err }
func (w *failingResponseWriter) WriteHeader(int)           {}
