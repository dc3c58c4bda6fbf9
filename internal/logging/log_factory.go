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

package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/config"
)

// NewLogger creates either a human readable console logger or a GELF style
// JSON logger, depending on the configured format.
func NewLogger(conf config.LoggingConfig) zerolog.Logger {
	if conf.Format == config.LogTextFormat {
		return newTextLogger(conf.Level)
	}

	return newGelfLogger(conf.Level)
}

func newTextLogger(level zerolog.Level) zerolog.Logger {
	out := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.TimeFormat = time.RFC3339
	})

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// newGelfLogger renames the standard zerolog fields to the names GELF
// consumers expect. The renaming is process wide.
func newGelfLogger(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.TimestampFieldName = "timestamp"
	zerolog.LevelFieldName = "_level_name"
	zerolog.MessageFieldName = "short_message"
	zerolog.ErrorFieldName = "_error" //nolint:reassign
	zerolog.CallerFieldName = "_caller"
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
		return strings.ToUpper(l.String())
	}

	return zerolog.New(os.Stdout).Level(level).With().
		Str("version", "1.1").
		Str("host", hostname()).
		Timestamp().
		Logger().
		Hook(zerolog.HookFunc(func(e *zerolog.Event, lvl zerolog.Level, _ string) {
			if lvl != zerolog.NoLevel {
				e.Int8("level", int8(toSyslogLevel(lvl)))
			}
		}))
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}

	return name
}
