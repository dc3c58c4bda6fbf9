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

package responder

import "strings"

// Getter is the read interface of an indexable configuration object.
// *koanf.Koanf implements it.
type Getter interface {
	Get(path string) any
	Exists(path string) bool
}

// lookupString reads the string value at the given dot separated path from
// the given configuration, which can either be a (nested) map[string]any,
// or any value implementing the Getter interface. Everything else, as well
// as missing path segments, non-map intermediate values, non-string leaf
// values and explicitly set nil values yield the given default. The lookup
// never fails.
func lookupString(conf any, path, def string) string {
	value, found := lookup(conf, path)
	if !found || value == nil {
		return def
	}

	if str, ok := value.(string); ok {
		return str
	}

	return def
}

func lookup(conf any, path string) (any, bool) {
	switch source := conf.(type) {
	case Getter:
		if !source.Exists(path) {
			return nil, false
		}

		return source.Get(path), true
	case map[string]any:
		return lookupMap(source, strings.Split(path, "."))
	default:
		return nil, false
	}
}

func lookupMap(conf map[string]any, segments []string) (any, bool) {
	value, ok := conf[segments[0]]
	if !ok {
		return nil, false
	}

	if len(segments) == 1 {
		return value, true
	}

	next, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}

	return lookupMap(next, segments[1:])
}
