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

package dump

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httputil"
	"strconv"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/x/stringx"
)

var crlf = []byte("\r\n") //nolint:gochecknoglobals

// New creates a middleware, which dumps requests and responses to the request
// scoped logger as long as the latter is configured to log on trace level.
func New() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			logger := zerolog.Ctx(req.Context())

			if logger.GetLevel() != zerolog.TraceLevel {
				next.ServeHTTP(rw, req)

				return
			}

			dumpRequest(logger, req)

			rec := &recorder{logger: logger, rw: rw, proto: req.Proto}

			next.ServeHTTP(httpsnoop.Wrap(rw, httpsnoop.Hooks{
				Hijack:      rec.hijackHook,
				WriteHeader: rec.writeHeaderHook,
				Write:       rec.writeHook,
				Flush:       rec.flushHook,
			}), req)

			rec.dump()
		})
	}
}

func dumpRequest(logger *zerolog.Logger, req *http.Request) {
	// bodies of streamed content types are potentially unbounded
	contentType := req.Header.Get("Content-Type")
	withBody := req.ContentLength != 0 &&
		!strings.Contains(contentType, "stream") &&
		!strings.Contains(contentType, "application/x-ndjson")

	if out, err := httputil.DumpRequest(req, withBody); err == nil {
		logger.Trace().Msgf("Request: %s\n", stringx.ToString(out))
	} else {
		logger.Trace().Err(err).Msg("Failed dumping request")
	}
}

// recorder reassembles the status line, the header and the payload of a
// response while these are written and reproduces them in the log afterwards.
type recorder struct {
	logger   *zerolog.Logger
	rw       http.ResponseWriter
	proto    string
	buffer   bytes.Buffer
	started  bool
	hijacked bool
	flushed  bool
}

func (r *recorder) start(code int) {
	var scratch [3]byte

	r.buffer.WriteString(r.proto)
	r.buffer.WriteByte(' ')

	if text := http.StatusText(code); len(text) != 0 {
		r.buffer.Write(strconv.AppendInt(scratch[:0], int64(code), 10)) //nolint:mnd
		r.buffer.WriteByte(' ')
		r.buffer.WriteString(text)
		r.buffer.Write(crlf)
	} else {
		fmt.Fprintf(&r.buffer, "%03d status code %d\r\n", code, code)
	}

	r.rw.Header().Write(&r.buffer) //nolint:errcheck

	if len(r.rw.Header().Get("Content-Length")) != 0 {
		r.buffer.Write(crlf)
	}

	r.started = true
}

func (r *recorder) writeHeaderHook(writeHeader httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
	return func(code int) {
		if !r.started {
			r.start(code)
		}

		writeHeader(code)
	}
}

func (r *recorder) writeHook(write httpsnoop.WriteFunc) httpsnoop.WriteFunc {
	return func(data []byte) (int, error) {
		if !r.started {
			// payload write without a preceding WriteHeader call
			r.start(http.StatusOK)
			r.rw.WriteHeader(http.StatusOK)
		}

		r.buffer.Write(data)

		return write(data)
	}
}

func (r *recorder) hijackHook(hijack httpsnoop.HijackFunc) httpsnoop.HijackFunc {
	return func() (net.Conn, *bufio.ReadWriter, error) {
		r.hijacked = true
		r.buffer.Reset()

		con, _, err := hijack()
		if err != nil {
			return nil, nil, err
		}

		// the returned writer sees the upgrade response only. Everything
		// else is transmitted using the connection directly.
		return con, bufio.NewReadWriter(
			bufio.NewReader(con),
			bufio.NewWriter(io.MultiWriter(con, &upgradeTracer{logger: r.logger})),
		), nil
	}
}

func (r *recorder) flushHook(flush httpsnoop.FlushFunc) httpsnoop.FlushFunc {
	return func() {
		if !r.flushed {
			r.logger.Trace().Msgf("Response: %s\n", stringx.ToString(r.buffer.Bytes()))
			r.flushed = true

			r.buffer.Reset()
		}

		flush()
	}
}

func (r *recorder) dump() {
	if r.hijacked || r.flushed {
		return
	}

	r.logger.Trace().Msgf("Response: %s\n", stringx.ToString(r.buffer.Bytes()))
}

// upgradeTracer logs the first chunk written through the buffered writer
// handed out on connection hijacking, which is the upgrade response.
type upgradeTracer struct {
	logger *zerolog.Logger
	done   bool
}

func (t *upgradeTracer) Write(data []byte) (int, error) {
	if t.done {
		return len(data), nil
	}

	t.logger.Trace().Msgf("Response: %s\n", stringx.ToString(data))
	t.done = true

	return len(data), nil
}
