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

package gjallar

import "net/http"

// Response is a buffered HTTP response. It is assembled by the fallback
// handler before anything is sent on the wire, so headers and the status
// code can still be changed after the body has been rendered.
type Response struct {
	Code   int
	Header http.Header
	Body   []byte
}

func NewResponse() *Response {
	return &Response{
		Code:   http.StatusOK,
		Header: make(http.Header),
	}
}

func (r *Response) WithStatus(code int) *Response {
	r.Code = code

	return r
}

func (r *Response) WithHeader(name, value string) *Response {
	r.Header.Set(name, value)

	return r
}

func (r *Response) WithBody(body []byte) *Response {
	r.Body = body

	return r
}

// Write emits the buffered response. The status line is sent last, after
// all collected headers have been copied to the writer.
func (r *Response) Write(rw http.ResponseWriter) error {
	for name, values := range r.Header {
		for _, value := range values {
			rw.Header().Add(name, value)
		}
	}

	rw.WriteHeader(r.Code)

	if len(r.Body) != 0 {
		if _, err := rw.Write(r.Body); err != nil {
			return err
		}
	}

	return nil
}
