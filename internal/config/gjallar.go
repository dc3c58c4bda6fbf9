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

package config

import "time"

// AppConfig holds the gjallar specific settings, available in the
// configuration under the top level "gjallar" key.
type AppConfig struct {
	ErrorHandler ErrorHandlerConfig `koanf:"error_handler"`
}

type ErrorHandlerConfig struct {
	Template404 string           `koanf:"template_404"`
	Layout      string           `koanf:"layout"`
	CacheTTL    time.Duration    `koanf:"cache_ttl,string" mapstructure:"cache_ttl" validate:"gte=0"`
	Overrides   []OverrideConfig `koanf:"overrides"        validate:"omitempty,dive"`
}

type OverrideConfig struct {
	Paths       []string `koanf:"paths"        validate:"required,min=1"`
	ContentType string   `koanf:"content_type"`
	Code        int      `koanf:"code"         validate:"omitempty,gte=200,lt=600"`
	Template    string   `koanf:"template"`
}
