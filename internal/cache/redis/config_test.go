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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/watcher/mocks"
)

func TestFileCredentialsReload(t *testing.T) {
	t.Parallel()

	// GIVEN
	testDir := t.TempDir()

	writeCredentials := func(t *testing.T, name, content string) string {
		t.Helper()

		path := filepath.Join(testDir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	initial := writeCredentials(t, "credentials1.yaml", "username: oof\npassword: rab\n")
	updated := writeCredentials(t, "credentials2.yaml", "username: foo\npassword: bar\n")
	broken := writeCredentials(t, "credentials3.yaml", "foo: bar\nbar: foo\n")

	fc := &fileCredentials{Path: initial}

	// WHEN
	err := fc.load()

	// THEN
	require.NoError(t, err)

	assert.Equal(t, "oof", fc.actual.Username)
	assert.Equal(t, "rab", fc.actual.Password)

	// WHEN
	fc.Path = updated
	fc.OnChanged(log.Logger)

	// THEN
	assert.Equal(t, "foo", fc.actual.Username)
	assert.Equal(t, "bar", fc.actual.Password)

	// WHEN
	fc.Path = broken
	fc.OnChanged(log.Logger)

	// THEN the so far available credentials are preserved
	assert.Equal(t, "foo", fc.actual.Username)
	assert.Equal(t, "bar", fc.actual.Password)
}

func TestFileCredentialsRegister(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		addErr error
		assert func(t *testing.T, err error)
	}{
		"successful registration": {
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		"failed registration": {
			addErr: errors.New("test error"),
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, gjallar.ErrInternal)
				require.ErrorContains(t, err, "failed registering client credentials watcher")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			fc := &fileCredentials{Path: "/some/path.yaml"}

			wm := mocks.NewWatcherMock(t)
			wm.EXPECT().Add("/some/path.yaml", fc).Return(tc.addErr)

			// WHEN
			err := fc.register(wm)

			// THEN
			tc.assert(t, err)
		})
	}
}
