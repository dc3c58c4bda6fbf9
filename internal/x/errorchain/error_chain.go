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

package errorchain

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

type entry struct {
	err error
	msg string
}

func (e entry) String() string {
	if len(e.msg) == 0 {
		return e.err.Error()
	}

	return e.err.Error() + ": " + e.msg
}

type message struct { //nolint:musttag
	XMLName xml.Name `json:"-"`
	Code    string   `json:"code"              xml:"code"`
	Message string   `json:"message,omitempty" xml:"message,omitempty"`
}

// ErrorChain ties an error to a contextual message and to further causes,
// with the first entry defining the identity of the entire chain.
type ErrorChain struct { // nolint: errname
	entries []entry
}

func New(err error) *ErrorChain {
	return (&ErrorChain{}).attach(err, "")
}

func NewWithMessage(err error, message string) *ErrorChain {
	return (&ErrorChain{}).attach(err, message)
}

func NewWithMessagef(err error, format string, a ...any) *ErrorChain {
	return (&ErrorChain{}).attach(err, fmt.Sprintf(format, a...))
}

func (ec *ErrorChain) attach(err error, msg string) *ErrorChain {
	ec.entries = append(ec.entries, entry{err: err, msg: msg})

	return ec
}

func (ec *ErrorChain) CausedBy(err error) *ErrorChain {
	return ec.attach(err, "")
}

func (ec *ErrorChain) Error() string {
	parts := make([]string, len(ec.entries))

	for idx, item := range ec.entries {
		parts[idx] = item.String()
	}

	return strings.Join(parts, ": ")
}

func (ec *ErrorChain) Unwrap() error {
	if len(ec.entries) < 2 { //nolint:mnd
		return nil
	}

	return &ErrorChain{entries: ec.entries[1:]}
}

func (ec *ErrorChain) Is(target error) bool {
	if len(ec.entries) == 0 {
		return false
	}

	return errors.Is(ec.entries[0].err, target)
}

func (ec *ErrorChain) As(target any) bool {
	if len(ec.entries) == 0 {
		return false
	}

	return errors.As(ec.entries[0].err, target)
}

func (ec *ErrorChain) Errors() []error {
	errs := make([]error, len(ec.entries))

	for idx, item := range ec.entries {
		errs[idx] = item.err
	}

	return errs
}

func (ec *ErrorChain) MarshalJSON() ([]byte, error) {
	return json.Marshal(
		message{
			Code:    strcase.ToLowerCamel(ec.entries[0].err.Error()),
			Message: ec.entries[0].msg,
		})
}

func (ec *ErrorChain) MarshalXML(encoder *xml.Encoder, _ xml.StartElement) error {
	return encoder.Encode(
		message{ //nolint:musttag
			XMLName: xml.Name{Local: "error"},
			Code:    strcase.ToLowerCamel(ec.entries[0].err.Error()),
			Message: ec.entries[0].msg,
		})
}

func (ec *ErrorChain) String() string {
	return ec.entries[0].err.Error() + ": " + ec.entries[0].msg
}
