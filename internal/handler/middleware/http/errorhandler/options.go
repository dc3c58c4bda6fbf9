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

package errorhandler

type Option func(*errorHandler)

// WithVerboseErrors enables negotiated error bodies. Without it only the
// status code is sent.
func WithVerboseErrors(flag bool) Option {
	return func(h *errorHandler) {
		h.verboseErrors = flag
	}
}

// WithArgumentErrorCode overrides the status code used for malformed
// requests. A zero value leaves the default untouched, which is true for all
// code related options.
func WithArgumentErrorCode(code int) Option {
	return func(h *errorHandler) {
		if code != 0 {
			h.argumentCode = code
		}
	}
}

func WithCommunicationErrorCode(code int) Option {
	return func(h *errorHandler) {
		if code != 0 {
			h.communicationCode = code
		}
	}
}

func WithMethodErrorCode(code int) Option {
	return func(h *errorHandler) {
		if code != 0 {
			h.methodCode = code
		}
	}
}

func WithNotFoundErrorCode(code int) Option {
	return func(h *errorHandler) {
		if code != 0 {
			h.notFoundCode = code
		}
	}
}

func WithInternalServerErrorCode(code int) Option {
	return func(h *errorHandler) {
		if code != 0 {
			h.internalCode = code
		}
	}
}
