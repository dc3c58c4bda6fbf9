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

package pemx

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
)

// EntryOption produces a single PEM block for BuildPEM.
type EntryOption func() (*pem.Block, error)

func WithX509Certificate(cert *x509.Certificate) EntryOption {
	return func() (*pem.Block, error) {
		return &pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw}, nil
	}
}

func WithECDSAPrivateKey(key *ecdsa.PrivateKey) EntryOption {
	return func() (*pem.Block, error) {
		raw, err := x509.MarshalECPrivateKey(key)
		if err != nil {
			return nil, err
		}

		return &pem.Block{Type: "EC PRIVATE KEY", Bytes: raw}, nil
	}
}

func BuildPEM(opts ...EntryOption) ([]byte, error) {
	var buf bytes.Buffer

	for _, opt := range opts {
		block, err := opt()
		if err != nil {
			return nil, err
		}

		if err = pem.Encode(&buf, block); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
