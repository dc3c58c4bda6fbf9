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

package config

import (
	"crypto/tls"
)

// TLS holds the server side TLS settings of a service. Certificate and key
// are expected in separate PEM files.
type TLS struct {
	CertFile     string          `koanf:"cert"          mapstructure:"cert"          validate:"required,file"`
	KeyFile      string          `koanf:"key"           mapstructure:"key"           validate:"required,file"`
	CipherSuites TLSCipherSuites `koanf:"cipher_suites" mapstructure:"cipher_suites"`
	MinVersion   TLSMinVersion   `koanf:"min_version"   mapstructure:"min_version"`
}

type TLSMinVersion uint16

func (v TLSMinVersion) OrDefault() uint16 {
	if v == 0 {
		return tls.VersionTLS13
	}

	return uint16(v)
}

type TLSCipherSuites []uint16

// defaultCipherSuites apply if none are configured. Relevant for TLS 1.2
// only, the suites of TLS 1.3 are not configurable.
//
//nolint:gochecknoglobals
var defaultCipherSuites = TLSCipherSuites{
	tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
	tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
}

func (s TLSCipherSuites) OrDefault() []uint16 {
	if len(s) == 0 {
		return defaultCipherSuites
	}

	return s
}
