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

package testsupport

import (
	"os"
	"testing"

	"github.com/undefinedlabs/go-mpatch"
)

// PatchedOSExit records invocations of the patched os.Exit.
type PatchedOSExit struct {
	Called bool
	Code   int

	patch *mpatch.Patch
}

// PatchOSExit replaces os.Exit with fn until the test completes. The returned
// recorder captures the code of the last invocation.
func PatchOSExit(t *testing.T, fn func(int)) (*PatchedOSExit, error) {
	t.Helper()

	recorder := &PatchedOSExit{}

	patch, err := mpatch.PatchMethod(os.Exit, func(code int) {
		recorder.Called = true
		recorder.Code = code

		fn(code)
	})
	if err != nil {
		return nil, err
	}

	recorder.patch = patch

	t.Cleanup(func() { _ = recorder.patch.Unpatch() })

	return recorder, nil
}
