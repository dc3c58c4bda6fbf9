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

package responder

import "github.com/dadrus/gjallar/internal/gjallar"

// ResponseSupplier produces a fresh response value on each call.
type ResponseSupplier func() *gjallar.Response

// ResponseFactory is the capability the catch-all handler uses to create
// the response it operates on.
type ResponseFactory interface {
	CreateResponse() *gjallar.Response
}

// SupplierResponseFactory adapts a ResponseSupplier to the ResponseFactory
// interface. It is a pure adapter without own state.
type SupplierResponseFactory struct {
	supplier ResponseSupplier
}

func NewSupplierResponseFactory(supplier ResponseSupplier) *SupplierResponseFactory {
	return &SupplierResponseFactory{supplier: supplier}
}

func (f *SupplierResponseFactory) CreateResponse() *gjallar.Response {
	return f.supplier()
}

// Supplier returns the wrapped supplier.
func (f *SupplierResponseFactory) Supplier() ResponseSupplier {
	return f.supplier
}
