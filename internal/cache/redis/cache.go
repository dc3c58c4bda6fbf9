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
	"context"
	"crypto/tls"
	"crypto/x509"
	"time"

	"github.com/redis/rueidis"

	"github.com/dadrus/gjallar/internal/app"
	"github.com/dadrus/gjallar/internal/cache"
	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/x/errorchain"
	"github.com/dadrus/gjallar/internal/x/stringx"
)

const defaultClientCacheTTL = 5 * time.Minute

// for test purposes only.
var rootCertPool *x509.CertPool //nolint:gochecknoglobals

// by intention. Used only during application bootstrap.
func init() { // nolint: gochecknoinits
	cache.Register("redis", cache.FactoryFunc(NewCache))
}

func NewCache(app app.Context, conf map[string]any) (cache.Cache, error) {
	type Config struct {
		Address       string             `mapstructure:"address" validate:"required"`
		DB            int                `mapstructure:"db"`
		Credentials   credentials        `mapstructure:"credentials"`
		ClientCache   clientCache        `mapstructure:"client_cache"`
		BufferLimit   config.BufferLimit `mapstructure:"buffer_limit"`
		Timeout       config.Timeout     `mapstructure:"timeout"`
		MaxFlushDelay time.Duration      `mapstructure:"max_flush_delay"`
		TLS           tlsConfig          `mapstructure:"tls"`
	}

	cfg := Config{ClientCache: clientCache{TTL: defaultClientCacheTTL}}

	if err := decodeConfig(conf, &cfg); err != nil {
		return nil, err
	}

	if err := app.Validator().ValidateStruct(&cfg); err != nil {
		return nil, errorchain.NewWithMessage(gjallar.ErrConfiguration,
			"failed validating redis cache config").CausedBy(err)
	}

	if cfg.Credentials != nil {
		if err := cfg.Credentials.register(app.Watcher()); err != nil {
			return nil, err
		}
	}

	opts := rueidis.ClientOption{
		ClientName:          "gjallar",
		InitAddress:         []string{cfg.Address},
		SelectDB:            cfg.DB,
		DisableCache:        cfg.ClientCache.Disabled,
		CacheSizeEachConn:   int(cfg.ClientCache.SizePerConnection),
		WriteBufferEachConn: int(cfg.BufferLimit.Write),
		ReadBufferEachConn:  int(cfg.BufferLimit.Read),
		ConnWriteTimeout:    cfg.Timeout.Write,
		MaxFlushDelay:       cfg.MaxFlushDelay,

		AuthCredentialsFn: func(_ rueidis.AuthCredentialsContext) (rueidis.AuthCredentials, error) {
			if cfg.Credentials != nil {
				return cfg.Credentials.get(), nil
			}

			return rueidis.AuthCredentials{}, nil
		},
	}

	if !cfg.TLS.Disabled {
		// rootCertPool is nil outside of tests, which makes the host's pool being used.
		opts.TLSConfig = &tls.Config{
			MinVersion:   cfg.TLS.MinVersion.OrDefault(),
			CipherSuites: cfg.TLS.CipherSuites.OrDefault(),
			RootCAs:      rootCertPool,
		}
	}

	client, err := rueidis.NewClient(opts)
	if err != nil {
		return nil, errorchain.NewWithMessage(gjallar.ErrInternal,
			"failed creating redis client").CausedBy(err)
	}

	return &Cache{c: client, ttl: cfg.ClientCache.TTL}, nil
}

type Cache struct {
	c   rueidis.Client
	ttl time.Duration
}

func (c *Cache) Start(_ context.Context) error {
	// not used for Redis.
	return nil
}

func (c *Cache) Stop(_ context.Context) error {
	c.c.Close()

	return nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.c.DoCache(ctx, c.c.B().Get().Key(key).Cache(), c.ttl).ToString()
	if err != nil {
		return nil, err
	}

	return stringx.ToBytes(val), nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.c.Do(ctx, c.c.B().Set().Key(key).Value(stringx.ToString(value)).Px(ttl).Build()).Error()
}
