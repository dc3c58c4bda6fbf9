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

package config

import (
	"reflect"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// EnforcementSettings drive the validation of those configuration
// properties, which are secure by default and can only be relaxed
// via the corresponding CLI flags.
type EnforcementSettings struct {
	EnforceIngressTLS bool
}

func (s EnforcementSettings) Tag() string { return "enforced" }

// AlwaysValidate is there to have the tagged properties validated
// even if these are not set.
func (s EnforcementSettings) AlwaysValidate() bool { return true }

func (s EnforcementSettings) Validate(fl validator.FieldLevel) bool {
	if !s.EnforceIngressTLS {
		return true
	}

	field := fl.Field()

	return field.Kind() != reflect.Ptr || !field.IsNil()
}

func (s EnforcementSettings) MessageTemplate() string { return "{0} must be configured" }

func (s EnforcementSettings) Translate(trans ut.Translator, fe validator.FieldError) string {
	msg, err := trans.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}

	return msg
}
