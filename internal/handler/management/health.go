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

	"github.com/goccy/go-json"
)

// EndpointHealth is the path of the health endpoint exposed by the management service.
const EndpointHealth = "/.well-known/health"

func health() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		type status struct {
			Status string `json:"status"`
		}

		res, err := json.Marshal(status{Status: "ok"})
		if err != nil {
			http.Error(rw, "Internal Server Error", http.StatusInternalServerError)

			return
		}

		rw.Header().Set("Content-Type", "application/json")
		_, _ = rw.Write(res)
	})
}
