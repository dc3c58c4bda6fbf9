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

package listener

import (
	"crypto/tls"
	"net"

	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/watcher"
	"github.com/dadrus/gjallar/internal/x/errorchain"
)

func New(network, serviceName, address string, tlsConf *config.TLS, cw watcher.Watcher) (net.Listener, error) {
	ln, err := net.Listen(network, address)
	if err != nil {
		return nil, errorchain.NewWithMessage(gjallar.ErrInternal, "failed creating listener").
			CausedBy(err)
	}

	if tlsConf != nil {
		return newTLSListener(serviceName, tlsConf, cw, ln)
	}

	return ln, nil
}

func newTLSListener(
	serviceName string, tlsConf *config.TLS, cw watcher.Watcher, ln net.Listener,
) (net.Listener, error) {
	supplier, err := newCertificateSupplier(serviceName, tlsConf)
	if err != nil {
		return nil, err
	}

	if cw == nil {
		cw = watcher.NoopWatcher{}
	}

	for _, path := range []string{tlsConf.CertFile, tlsConf.KeyFile} {
		if err = cw.Add(path, supplier); err != nil {
			return nil, errorchain.NewWithMessagef(gjallar.ErrInternal,
				"failed registering watcher for %s", path).CausedBy(err)
		}
	}

	tlsVersion := tlsConf.MinVersion.OrDefault()

	// nolint:gosec
	// configuration ensures, TLS versions below 1.2 are not possible
	cfg := &tls.Config{
		MinVersion:     tlsVersion,
		NextProtos:     []string{"h2", "http/1.1"},
		GetCertificate: supplier.certificate,
	}

	if tlsVersion != tls.VersionTLS13 {
		cfg.CipherSuites = tlsConf.CipherSuites.OrDefault()
	}

	return tls.NewListener(ln, cfg), nil
}
