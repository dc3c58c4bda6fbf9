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

package loggeradapter

import (
	"bytes"
	"log"

	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/x/stringx"
)

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

// NewStdLogger adapts the given zerolog logger to a *log.Logger, as
// expected e.g. by http.Server for its ErrorLog.
func NewStdLogger(logger zerolog.Logger) *log.Logger {
	return log.New(writerFunc(func(data []byte) (int, error) {
		logger.Error().Msg(stringx.ToString(bytes.TrimRight(data, "\n")))

		return len(data), nil
	}), "", 0)
}
