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
	"bytes"
	"io"

	"github.com/knadh/koanf/maps"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/x/errorchain"
	"github.com/dadrus/gjallar/schema"
)

// ValidateConfigSchema checks the yaml document available via src against the
// embedded configuration schema.
func ValidateConfigSchema(src io.Reader) error {
	var conf map[string]any

	if err := yaml.NewDecoder(src).Decode(&conf); err != nil {
		return errorchain.NewWithMessage(gjallar.ErrConfiguration,
			"failed to parse config").CausedBy(err)
	}

	validator, err := newConfigSchema()
	if err != nil {
		return errorchain.NewWithMessage(gjallar.ErrConfiguration,
			"failed to compile JSON schema").CausedBy(err)
	}

	maps.IntfaceKeysToStrings(conf)

	if err = validator.Validate(conf); err != nil {
		return errorchain.New(gjallar.ErrConfiguration).CausedBy(err)
	}

	return nil
}

func newConfigSchema() (*jsonschema.Schema, error) {
	const resource = "config.schema.json"

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema.ConfigSchema))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(resource, doc); err != nil {
		return nil, err
	}

	return compiler.Compile(resource)
}
