// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
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
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/accesscontext"
	"github.com/dadrus/gjallar/internal/cache"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/templates"
	"github.com/dadrus/gjallar/internal/x/stringx"
)

// cacheEntry retains those parts of a response, which are actually produced
// by the Handler. All other headers are request specific and are set anew
// while replaying the entry.
type cacheEntry struct {
	Code               int    `json:"code"`
	ContentType        string `json:"content_type"`
	ContentTypeOptions string `json:"content_type_options"`
	Body               []byte `json:"body"`
}

func newCacheMiddleware(cch cache.Cache, ttl time.Duration, rnd templates.Renderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			key := cacheKey(req, rnd)

			if data, err := cch.Get(ctx, key); err == nil {
				var entry cacheEntry

				if err = json.Unmarshal(data, &entry); err == nil {
					writeCachedResponse(rw, &entry)
					accesscontext.SetError(ctx, gjallar.ErrNotFound)

					return
				}

				zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed decoding cached response")
			}

			code := http.StatusOK

			var body bytes.Buffer

			next.ServeHTTP(httpsnoop.Wrap(rw, httpsnoop.Hooks{
				WriteHeader: func(writeHeader httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
					return func(statusCode int) {
						code = statusCode

						writeHeader(statusCode)
					}
				},
				Write: func(write httpsnoop.WriteFunc) httpsnoop.WriteFunc {
					return func(data []byte) (int, error) {
						body.Write(data)

						return write(data)
					}
				},
			}), req)

			data, err := json.Marshal(cacheEntry{
				Code:               code,
				ContentType:        rw.Header().Get("Content-Type"),
				ContentTypeOptions: rw.Header().Get("X-Content-Type-Options"),
				Body:               body.Bytes(),
			})
			if err == nil {
				err = cch.Set(ctx, key, data, ttl)
			}

			if err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed caching response")
			}
		})
	}
}

func writeCachedResponse(rw http.ResponseWriter, entry *cacheEntry) {
	if len(entry.ContentType) != 0 {
		rw.Header().Set("Content-Type", entry.ContentType)
	}

	if len(entry.ContentTypeOptions) != 0 {
		rw.Header().Set("X-Content-Type-Options", entry.ContentTypeOptions)
	}

	rw.WriteHeader(entry.Code)
	rw.Write(entry.Body) //nolint:errcheck,gosec
}

func cacheKey(req *http.Request, rnd templates.Renderer) string {
	hash := sha256.New()

	// the hash of the renderer changes whenever the templates are reloaded,
	// invalidating all entries created with the previous contents
	if rnd != nil {
		hash.Write(rnd.Hash())
	}

	hash.Write(stringx.ToBytes(req.Method))
	hash.Write(stringx.ToBytes(req.Host))
	hash.Write(stringx.ToBytes(req.URL.String()))
	hash.Write(stringx.ToBytes(req.Header.Get("Accept")))

	return hex.EncodeToString(hash.Sum(nil))
}
