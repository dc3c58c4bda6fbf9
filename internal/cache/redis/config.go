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
	"os"
	"sync"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/redis/rueidis"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/watcher"
	"github.com/dadrus/gjallar/internal/x/errorchain"
)

type clientCache struct {
	Disabled          bool              `mapstructure:"disabled"`
	TTL               time.Duration     `mapstructure:"ttl"`
	SizePerConnection bytesize.ByteSize `mapstructure:"size_per_connection"`
}

type tlsConfig struct {
	Disabled     bool                   `mapstructure:"disabled"`
	MinVersion   config.TLSMinVersion   `mapstructure:"min_version"`
	CipherSuites config.TLSCipherSuites `mapstructure:"cipher_suites"`
}

// credentials supply the authentication data for the redis connection, either
// statically from the configuration, or from a watched file.
type credentials interface {
	register(cw watcher.Watcher) error
	get() rueidis.AuthCredentials
}

type staticCredentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

func (c *staticCredentials) register(_ watcher.Watcher) error { return nil }

func (c *staticCredentials) get() rueidis.AuthCredentials {
	return rueidis.AuthCredentials{Username: c.Username, Password: c.Password}
}

type fileCredentials struct {
	Path string

	mu     sync.Mutex
	actual *staticCredentials
}

func (c *fileCredentials) load() error {
	cf, err := os.Open(c.Path)
	if err != nil {
		return err
	}

	defer cf.Close()

	var loaded staticCredentials

	dec := yaml.NewDecoder(cf)
	dec.KnownFields(true)

	if err = dec.Decode(&loaded); err != nil {
		return err
	}

	c.mu.Lock()
	c.actual = &loaded
	c.mu.Unlock()

	return nil
}

func (c *fileCredentials) get() rueidis.AuthCredentials {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.actual.get()
}

func (c *fileCredentials) register(cw watcher.Watcher) error {
	if err := cw.Add(c.Path, c); err != nil {
		return errorchain.NewWithMessagef(gjallar.ErrInternal,
			"failed registering client credentials watcher on %s for redis client", c.Path).CausedBy(err)
	}

	return nil
}

func (c *fileCredentials) OnChanged(log zerolog.Logger) {
	err := c.load()
	if err != nil {
		log.Warn().Err(err).
			Str("_source", "redis-cache").
			Str("_file", c.Path).
			Msg("Credentials reload failed")

		return
	}

	log.Info().
		Str("_source", "redis-cache").
		Str("_file", c.Path).
		Msg("Credentials reloaded")
}
