// Copyright 2022-2025 Dimitrij Drus <dadrus@gmx.de>
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
	"os"

	"github.com/go-viper/mapstructure/v2"

	"github.com/dadrus/gjallar/internal/config/parser"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/validation"
	"github.com/dadrus/gjallar/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Configuration struct {
	Serve      ServeConfig      `koanf:"serve"`
	Management ManagementConfig `koanf:"management"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Log        LoggingConfig    `koanf:"log"`
	Cache      CacheConfig      `koanf:"cache"`
	Templates  TemplatesConfig  `koanf:"templates"`
	Gjallar    AppConfig        `koanf:"gjallar"`
}

func NewConfiguration(
	envPrefix EnvVarPrefix,
	configPath ConfigurationPath,
	validator validation.Validator,
) (*Configuration, error) {
	// copy defaults
	conf := defaultConfiguration

	err := parser.New(
		parser.WithDefaultConfigFilename("gjallar.yaml"),
		parser.WithConfigFile(string(configPath)),
		parser.WithConfigLookupDir("."),
		parser.WithConfigLookupDir("/etc/gjallar"),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithDecodeHookFunc(mapstructure.StringToTimeDurationHookFunc()),
		parser.WithDecodeHookFunc(mapstructure.StringToSliceHookFunc(",")),
		parser.WithDecodeHookFunc(mapstructure.TextUnmarshallerHookFunc()),
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(DecodeTLSMinVersionHookFunc),
		parser.WithDecodeHookFunc(DecodeTLSCipherSuiteHookFunc),
		parser.WithConfigValidator(parser.ConfigValidator(validateConfigFile)),
	).Load(&conf)
	if err != nil {
		return nil, errorchain.NewWithMessage(gjallar.ErrConfiguration,
			"failed loading configuration").CausedBy(err)
	}

	if err = validator.ValidateStruct(conf); err != nil {
		return nil, err
	}

	return &conf, nil
}

func validateConfigFile(configFile string) error {
	file, err := os.Open(configFile)
	if err != nil {
		return errorchain.NewWithMessagef(gjallar.ErrConfiguration,
			"failed opening config file %s", configFile).CausedBy(err)
	}

	defer file.Close()

	return ValidateConfigSchema(file)
}
