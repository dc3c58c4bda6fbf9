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

import "fmt"

func merge(dest, src any) any {
	if dest == nil {
		return stripDigests(src)
	}

	// explicit null in the config means "not set", so the available value wins
	if src == nil {
		return dest
	}

	switch typedDest := dest.(type) {
	case map[string]any:
		typedSrc, ok := src.(map[string]any)
		if !ok {
			panic(fmt.Sprintf("Cannot merge %s and %s. Types are different: %T - %T", dest, src, dest, src))
		}

		return mergeMaps(typedDest, typedSrc)
	case []any:
		typedSrc, ok := src.([]any)
		if !ok {
			panic(fmt.Sprintf("Cannot merge %s and %s. Types are different: %T - %T", dest, src, dest, src))
		}

		return mergeSlices(typedDest, typedSrc)
	default:
		// primitive values override each other
		return src
	}
}

func mergeSlices(dest, src []any) []any {
	if len(dest) < len(src) {
		grown := make([]any, len(src))
		copy(grown, dest)

		dest = grown
	}

	for idx, val := range src {
		switch {
		case dest[idx] == nil:
			dest[idx] = val
		case val != nil:
			dest[idx] = merge(dest[idx], val)
		}
	}

	return dest
}

func mergeMaps(dest, src map[string]any) map[string]any {
	for key, val := range src {
		if dest[key] == nil {
			dest[key] = val
		} else {
			dest[key] = merge(dest[key], val)
		}
	}

	return dest
}
