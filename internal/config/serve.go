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
	"fmt"
	"time"

	"github.com/inhies/go-bytesize"
)

// ServeConfig configures the listener of the fallback service.
type ServeConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"            validate:"gt=0,lte=65535"`
	Timeout        Timeout       `koanf:"timeout"`
	BufferLimit    BufferLimit   `koanf:"buffer_limit"`
	CORS           *CORS         `koanf:"cors,omitempty"`
	TLS            *TLS          `koanf:"tls,omitempty"   validate:"enforced"`
	TrustedProxies []string      `koanf:"trusted_proxies"`
	Respond        RespondConfig `koanf:"respond"`
}

func (c ServeConfig) Address() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

type Timeout struct {
	Read  time.Duration `koanf:"read,string"  mapstructure:"read"`
	Write time.Duration `koanf:"write,string" mapstructure:"write"`
	Idle  time.Duration `koanf:"idle,string"  mapstructure:"idle"`
}

type BufferLimit struct {
	Read  bytesize.ByteSize `koanf:"read"  mapstructure:"read"`
	Write bytesize.ByteSize `koanf:"write" mapstructure:"write"`
}

type CORS struct {
	AllowedOrigins   []string      `koanf:"allowed_origins"`
	AllowedMethods   []string      `koanf:"allowed_methods"`
	AllowedHeaders   []string      `koanf:"allowed_headers"`
	ExposedHeaders   []string      `koanf:"exposed_headers"`
	AllowCredentials bool          `koanf:"allow_credentials"`
	MaxAge           time.Duration `koanf:"max_age,string"`
}

// RespondConfig shapes the responses sent for failed requests. Zero override
// codes mean the built-in defaults apply.
type RespondConfig struct {
	Verbose bool              `koanf:"verbose"`
	With    ResponseOverrides `koanf:"with"`
}

type ResponseOverrides struct {
	ArgumentError      ResponseOverride `koanf:"argument_error"`
	CommunicationError ResponseOverride `koanf:"communication_error"`
	InternalError      ResponseOverride `koanf:"internal_error"`
	MethodError        ResponseOverride `koanf:"method_error"`
	NotFoundError      ResponseOverride `koanf:"not_found_error"`
}

type ResponseOverride struct {
	Code int `koanf:"code" validate:"omitempty,gte=300,lt=600"`
}
