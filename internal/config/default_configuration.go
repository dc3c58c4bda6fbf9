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
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
)

const (
	defaultReadTimeout  = time.Second * 5
	defaultWriteTimeout = time.Second * 10
	defaultIdleTimeout  = time.Second * 120

	defaultBufferLimit = 4 * bytesize.KB

	defaultServicePort    = 4458
	defaultManagementPort = 4459
)

// nolint: gochecknoglobals
var defaultConfiguration = Configuration{
	Serve: ServeConfig{
		Port: defaultServicePort,
		Timeout: Timeout{
			Read:  defaultReadTimeout,
			Write: defaultWriteTimeout,
			Idle:  defaultIdleTimeout,
		},
		BufferLimit: BufferLimit{
			Read:  defaultBufferLimit,
			Write: defaultBufferLimit,
		},
	},
	Management: ManagementConfig{
		Port: defaultManagementPort,
		Timeout: Timeout{
			Read:  defaultReadTimeout,
			Write: defaultWriteTimeout,
			Idle:  defaultIdleTimeout,
		},
		BufferLimit: BufferLimit{
			Read:  defaultBufferLimit,
			Write: defaultBufferLimit,
		},
	},
	Metrics: MetricsConfig{
		Enabled: true,
	},
	Log: LoggingConfig{
		Level:  zerolog.ErrorLevel,
		Format: LogTextFormat,
	},
	Cache: CacheConfig{
		Type: "in-memory",
	},
	Gjallar: AppConfig{
		ErrorHandler: ErrorHandlerConfig{
			Template404: "404",
		},
	},
}
