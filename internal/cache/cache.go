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

package cache

import (
	"context"
	"time"
)

//go:generate mockery --name Cache --structname CacheMock

// Cache describes the interface satisfied by all cache implementations.
type Cache interface {
	// Start starts the cache.
	Start(ctx context.Context) error

	// Stop stops the cache.
	Stop(ctx context.Context) error

	// Get returns the value cached for the given key, or an error if there
	// is no entry, the entry expired, or the cache cannot be reached.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set caches the value for the given key for the given ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
