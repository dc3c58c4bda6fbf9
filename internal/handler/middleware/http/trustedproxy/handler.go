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

package trustedproxy

import (
	"net"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/x/httpx"
)

var sensitiveHeaders = []string{ //nolint:gochecknoglobals
	"Forwarded",
	"X-Forwarded-For",
	"X-Forwarded-Proto",
	"X-Forwarded-Host",
	"X-Forwarded-Uri",
}

type matchFunc func(net.IP) bool

func parseProxyList(logger zerolog.Logger, entries []string) []matchFunc {
	matchers := make([]matchFunc, 0, len(entries))

	for _, entry := range entries {
		if !strings.Contains(entry, "/") {
			matchers = append(matchers, net.ParseIP(entry).Equal)

			continue
		}

		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			logger.Warn().Err(err).
				Msgf("Trusted proxies entry %q could not be parsed and will be ignored", entry)

			continue
		}

		if slices.Contains(config.InsecureNetworks, ipNet.String()) {
			logger.Warn().Msgf("Configured trusted proxies contains insecure networks: %s", entry)
		}

		matchers = append(matchers, ipNet.Contains)
	}

	return matchers
}

// New creates a middleware, which deletes all forwarding related headers from
// the received request, unless the latter originates from one of the given
// proxies.
func New(logger zerolog.Logger, proxies ...string) func(http.Handler) http.Handler {
	matchers := parseProxyList(logger, proxies)

	isTrusted := func(remoteAddr string) bool {
		ip := net.ParseIP(httpx.IPFromHostPort(remoteAddr))

		return slices.ContainsFunc(matchers, func(matches matchFunc) bool { return matches(ip) })
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			if !isTrusted(req.RemoteAddr) {
				for _, name := range sensitiveHeaders {
					req.Header.Del(name)
				}
			}

			next.ServeHTTP(rw, req)
		})
	}
}
