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

package memory

import (
	"context"
	"errors"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/jellydator/ttlcache/v3"

	"github.com/dadrus/gjallar/internal/app"
	"github.com/dadrus/gjallar/internal/cache"
)

const defaultMaxMemory = 128 * bytesize.MB

var ErrNoCacheEntry = errors.New("no cache entry")

// by intention. Used only during application bootstrap.
func init() { // nolint: gochecknoinits
	cache.Register("in-memory", cache.FactoryFunc(NewCache))
}

type limits struct {
	MaxEntries uint64             `mapstructure:"max_entries"`
	MaxMemory  *bytesize.ByteSize `mapstructure:"max_memory"`
}

func (l limits) maxMemory() uint64 {
	if l.MaxMemory == nil {
		return uint64(defaultMaxMemory)
	}

	return uint64(*l.MaxMemory)
}

// Next to the key and value bytes, each entry costs roughly 184 bytes: 16 for
// the string header, 24 for the slice header and about 144 on average for the
// internal bookkeeping structures.
const entryOverhead = 184

func entryCost(item ttlcache.CostItem[string, []byte]) uint64 {
	return uint64(len(item.Key) + len(item.Value) + entryOverhead) //nolint:gosec
}

func NewCache(_ app.Context, conf map[string]any) (cache.Cache, error) {
	var cfg limits

	if len(conf) != 0 {
		if err := decodeConfig(conf, &cfg); err != nil {
			return nil, err
		}
	}

	return &Cache{
		store: ttlcache.New[string, []byte](
			ttlcache.WithDisableTouchOnHit[string, []byte](),
			ttlcache.WithCapacity[string, []byte](cfg.MaxEntries),
			ttlcache.WithMaxCost[string, []byte](cfg.maxMemory(), entryCost),
		),
	}, nil
}

type Cache struct {
	store *ttlcache.Cache[string, []byte]
}

func (c *Cache) Start(_ context.Context) error {
	go c.store.Start()

	return nil
}

func (c *Cache) Stop(_ context.Context) error {
	c.store.Stop()

	return nil
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	item := c.store.Get(key)
	if item == nil || item.IsExpired() {
		return nil, ErrNoCacheEntry
	}

	return item.Value(), nil
}

func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.store.Set(key, value, ttl)

	return nil
}
