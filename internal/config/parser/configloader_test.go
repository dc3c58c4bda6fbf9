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

package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestConfigLoaderLoad(t *testing.T) {
	type pageConfig struct {
		Name   string `koanf:"name"`
		Code   int    `koanf:"code"`
		Cached bool   `koanf:"cached"`
	}

	type serviceConfig struct {
		Host    string       `koanf:"host"`
		Port    int          `koanf:"port"`
		Verbose bool         `koanf:"log_verbose"`
		Default pageConfig   `koanf:"default_page"`
		Pages   []pageConfig `koanf:"error_pages"`
	}

	// struct values act as defaults
	config := serviceConfig{
		Host: "127.0.0.1",
		Port: 9999,
		Pages: []pageConfig{
			{Cached: true},
		},
	}

	// the yaml file overrides parts of the defaults
	configFile := writeConfigFile(t, `
host: gjallar.internal
port: 4460
default_page:
  cached: true
error_pages:
  - name: "from yaml"
`)

	// env variables override parts of the defaults and the yaml values
	for key, value := range map[string]string{
		"LOADERTEST_PORT":                  "4458",
		"LOADERTEST_LOG__VERBOSE":          "true",
		"LOADERTEST_DEFAULT__PAGE_NAME":    "from env",
		"LOADERTEST_DEFAULT__PAGE_CODE":    "404",
		"LOADERTEST_ERROR__PAGES_0_CODE":   "410",
		"LOADERTEST_ERROR__PAGES_1_NAME":   "from env as well",
		"LOADERTEST_ERROR__PAGES_1_CODE":   "503",
		"LOADERTEST_ERROR__PAGES_1_CACHED": "true",
	} {
		t.Setenv(key, value)
	}

	// WHEN
	err := New(
		WithConfigFile(configFile),
		WithEnvPrefix("LOADERTEST_"),
	).Load(&config)

	// THEN
	require.NoError(t, err)

	assert.Equal(t, "gjallar.internal", config.Host) // yaml override
	assert.Equal(t, 4458, config.Port)               // env wins over yaml
	assert.True(t, config.Verbose)                   // set by env only

	assert.Equal(t, "from env", config.Default.Name)
	assert.Equal(t, 404, config.Default.Code)
	assert.True(t, config.Default.Cached) // set by yaml

	assert.Equal(t, "from yaml", config.Pages[0].Name)
	assert.Equal(t, 410, config.Pages[0].Code) // set by env
	assert.True(t, config.Pages[0].Cached)     // struct default survives both merges

	// the second entry exists due to env variables only
	assert.Equal(t, "from env as well", config.Pages[1].Name)
	assert.Equal(t, 503, config.Pages[1].Code)
	assert.True(t, config.Pages[1].Cached)
}

func TestConfigLoaderLoadWithMissingConfigFile(t *testing.T) {
	type serviceConfig struct {
		Host string `koanf:"host"`
	}

	var config serviceConfig

	err := New(WithConfigFile("there/is/no/such/file.yaml")).Load(&config)

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigLoaderLoadWithValidator(t *testing.T) {
	type serviceConfig struct {
		Host string `koanf:"host"`
	}

	configFile := writeConfigFile(t, "host: gjallar.internal")

	var (
		config        serviceConfig
		validatedPath string
	)

	err := New(
		WithConfigFile(configFile),
		WithConfigValidator(func(configPath string) error {
			validatedPath = configPath

			return nil
		}),
	).Load(&config)

	require.NoError(t, err)
	assert.Equal(t, configFile, validatedPath)
	assert.Equal(t, "gjallar.internal", config.Host)
}

func TestConfigLoaderFindsConfigInLookupDir(t *testing.T) {
	type serviceConfig struct {
		Host string `koanf:"host"`
	}

	confDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(confDir, "gjallar.yaml"), []byte("host: discovered"), 0o600))

	var config serviceConfig

	err := New(
		WithConfigLookupDir("there/is/no/such/dir"),
		WithConfigLookupDir(confDir),
		WithDefaultConfigFilename("gjallar.yaml"),
	).Load(&config)

	require.NoError(t, err)
	assert.Equal(t, "discovered", config.Host)
}
