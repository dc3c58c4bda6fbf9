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

package responder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/responder"
)

func TestSupplierResponseFactory(t *testing.T) {
	t.Parallel()

	// GIVEN
	response := gjallar.NewResponse()
	supplier := responder.ResponseSupplier(func() *gjallar.Response { return response })

	// WHEN
	factory := responder.NewSupplierResponseFactory(supplier)

	// THEN
	assert.Same(t, response, factory.CreateResponse())
	assert.Same(t, response, factory.Supplier()())
}
