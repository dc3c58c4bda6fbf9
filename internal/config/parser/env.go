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
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/x/errorchain"
	"github.com/dadrus/gjallar/internal/x/stringx"
)

var indexRegex = regexp.MustCompile(`^\d+$`)

// digest disambiguates the keys resulting from different raw environment
// entries, so that the merge function below can tell values apart, which
// would otherwise collide while the flat key set is folded.
func digest(val, seed string) string {
	sum := sha256.New()
	sum.Write(stringx.ToBytes(val))
	sum.Write(stringx.ToBytes(seed))

	return hex.EncodeToString(sum.Sum(nil))
}

// typedValue lets the yaml parser guess the type of the given value and
// convert it accordingly. Not the fastest way, but ok for now.
func typedValue(val string) any {
	var parsed map[string]any

	yaml.Unmarshal(stringx.ToBytes("val: "+val), &parsed) // nolint: errcheck

	return parsed["val"]
}

func indexedPart(parts []string) (int, int) {
	for idx, part := range parts {
		if indexRegex.MatchString(part) {
			pos, _ := strconv.Atoi(part)

			return idx, pos
		}
	}

	return -1, -1
}

// explode converts a flat key with numeric path elements into nested slices,
// e.g. foo.1.bar=x becomes foo: [nil, {bar: x}].
func explode(key, val, seed string) (string, any, string) {
	parts := strings.Split(key, ".")

	idx, pos := indexedPart(parts)
	if idx == -1 {
		return key, typedValue(val), digest(val, seed)
	}

	prefix := strings.Join(parts[:idx], ".")
	postfix := strings.Join(parts[idx+1:], ".")

	slice := make([]any, pos+1)

	nestedKey, nestedVal, sum := explode(postfix, val, digest(val, seed))
	if len(nestedKey) != 0 {
		slice[pos] = map[string]any{nestedKey: nestedVal}
	} else {
		slice[pos] = nestedVal
	}

	return prefix, slice, sum
}

func stripDigests(val any) any {
	nested, ok := val.(map[string]any)
	if !ok {
		return val
	}

	result := make(map[string]any, len(nested))

	for k, v := range nested {
		name, _, _ := strings.Cut(k, "#")
		result[name] = stripDigests(v)
	}

	return result
}

// normalizeKey converts FOO_BAR style env variable names into flat config
// paths. Double underscores keep a literal underscore in the resulting
// path element.
func normalizeKey(key, prefix string) string {
	tmp := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "__", `\:\`)
	tmp = strings.ReplaceAll(tmp, "_", ".")

	return strings.ReplaceAll(tmp, `\:\`, "_")
}

func koanfFromEnv(prefix string) (*koanf.Koanf, error) {
	konf := koanf.New(".")

	provider := env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			normalized := normalizeKey(key, prefix)

			newKey, newVal, sum := explode(normalized, val, normalized)

			return newKey + "#" + sum, newVal
		},
	})

	err := konf.Load(provider,
		nil,
		koanf.WithMergeFunc(func(src, dest map[string]any) error {
			for key, val := range src {
				name, _, _ := strings.Cut(key, "#")

				dest[name] = merge(dest[name], val)
			}

			return nil
		}),
	)
	if err != nil {
		return nil, errorchain.NewWithMessage(gjallar.ErrConfiguration,
			"failed to parse environment variables to config").CausedBy(err)
	}

	return konf, nil
}
