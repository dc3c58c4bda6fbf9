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

package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

//go:generate mockery --name Validator --structname ValidatorMock

type Validator interface {
	ValidateStruct(s any) error
}

type structValidator struct {
	v *validator.Validate
	t ut.Translator
}

func (v *structValidator) ValidateStruct(s any) error { return wrapError(v.v.Struct(s), v.t) }

func NewValidator(opts ...Option) (Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	translate, err := newEnglishTranslator(validate)
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err = opt.apply(validate, translate); err != nil {
			return nil, err
		}
	}

	return &structValidator{v: validate, t: translate}, nil
}

func newEnglishTranslator(validate *validator.Validate) (ut.Translator, error) {
	locale := en.New()
	translate, _ := ut.New(locale, locale).GetTranslator("en")

	if err := entranslations.RegisterDefaultTranslations(validate, translate); err != nil {
		return nil, err
	}

	if err := registerTranslations(validate, translate); err != nil {
		return nil, err
	}

	return translate, nil
}

// tagPriority lists the struct tags consulted for the name a field is
// reported with, most specific first.
var tagPriority = []string{"mapstructure", "json", "yaml", "koanf"} //nolint:gochecknoglobals

func fieldName(fld reflect.StructField) string {
	name := fld.Name

	for _, tag := range tagPriority {
		if val, found := fld.Tag.Lookup(tag); found && len(val) != 0 {
			name = val

			break
		}
	}

	return "'" + strings.SplitN(name, ",", 2)[0] + "'" //nolint:mnd
}
