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

package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/gjallar/internal/handler/management"
	"github.com/dadrus/gjallar/internal/x/testsupport"
)

func TestRunHealthCommand(t *testing.T) {
	var (
		statusCode int
		response   string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, management.EndpointHealth, req.URL.Path)

		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(statusCode)
		rw.Write([]byte(response)) //nolint:errcheck
	}))
	defer srv.Close()

	for _, tc := range []struct {
		uc         string
		outFormat  string
		statusCode int
		response   string
		expOutput  string
		expError   string
	}{
		{
			uc:         "text output",
			outFormat:  "text",
			statusCode: http.StatusOK,
			response:   `{ "status": "ok" }`,
			expOutput:  "ok",
		},
		{
			uc:         "json output",
			outFormat:  "json",
			statusCode: http.StatusOK,
			response:   `{ "status": "ok" }`,
			expOutput:  `{ "status": "ok" }`,
		},
		{
			uc:         "yaml output",
			outFormat:  "yaml",
			statusCode: http.StatusOK,
			response:   `{ "status": "ok" }`,
			expOutput:  "status: ok",
		},
		{
			uc:         "service unavailable",
			outFormat:  "text",
			statusCode: http.StatusServiceUnavailable,
			response:   "unavailable",
			expError:   "Unexpected HTTP status code",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			exit, err := testsupport.PatchOSExit(t, func(int) {})
			require.NoError(t, err)

			statusCode = tc.statusCode
			response = tc.response

			buf := bytes.NewBuffer([]byte{})
			healthCmd.SetOut(buf)
			healthCmd.SetErr(buf)

			err = healthCmd.ParseFlags([]string{"--endpoint", srv.URL, "--output", tc.outFormat})
			require.NoError(t, err)

			// WHEN
			healthCmd.Run(healthCmd, []string{})

			// THEN
			log := buf.String()
			if len(tc.expError) != 0 {
				assert.Contains(t, log, tc.expError)
				assert.True(t, exit.Called)
				assert.Equal(t, -1, exit.Code)
			} else {
				assert.Contains(t, log, tc.expOutput)
				assert.False(t, exit.Called)
			}
		})
	}
}
