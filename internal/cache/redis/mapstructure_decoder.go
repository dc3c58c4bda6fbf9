// Copyright 2024 Dimitrij Drus <dadrus@gmx.de>
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

package redis

import (
	"reflect"
)

// nolint: gochecknoglobals
var credentialsType = reflect.TypeOf((*credentials)(nil)).Elem()

// decodeCredentialsHookFunc converts a credentials config map either into a
// fileCredentials instance, if a path is configured, or into a
// staticCredentials instance otherwise.
func decodeCredentialsHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Map || !credentialsType.AssignableTo(to) {
		return data, nil
	}

	vals, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}

	if path, found := vals["path"]; found {
		creds := &fileCredentials{Path: path.(string)} // nolint: forcetypeassert
		if err := creds.load(); err != nil {
			return nil, err
		}

		return creds, nil
	}

	creds := &staticCredentials{}

	if val, found := vals["username"]; found {
		creds.Username = val.(string) // nolint: forcetypeassert
	}

	if val, found := vals["password"]; found {
		creds.Password = val.(string) // nolint: forcetypeassert
	}

	return creds, nil
}
