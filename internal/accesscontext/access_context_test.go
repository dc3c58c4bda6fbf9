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

package accesscontext

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

func TestAccessContextUsage(t *testing.T) {
	t.Parallel()

	// GIVEN
	ctx := New(context.Background())

	// WHEN
	SetError(ctx, errTest)
	SetRequestID(ctx, "foo")

	// THEN
	require.ErrorIs(t, Error(ctx), errTest)
	assert.Equal(t, "foo", RequestID(ctx))
}

func TestAccessContextNotAvailable(t *testing.T) {
	t.Parallel()

	// GIVEN
	ctx := context.Background()

	// WHEN
	SetError(ctx, errTest)
	SetRequestID(ctx, "foo")

	// THEN
	require.NoError(t, Error(ctx))
	assert.Empty(t, RequestID(ctx))
}
