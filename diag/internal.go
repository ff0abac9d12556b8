// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package diag

import (
	"errors"
	"fmt"

	"fillmore-labs.com/basescript/ast"
)

// ErrInternal is matched by every [*InternalError].
var ErrInternal = errors.New("internal error")

// InternalError signals a bug in a pass or its host rather than an issue in the user's source.
type InternalError struct {
	Span    ast.Span
	Message string
}

// Internalf creates an [*InternalError] without source position.
func Internalf(format string, args ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

func (e *InternalError) Error() string {
	if !e.Span.Start.IsValid() {
		return "Internal error: " + e.Message
	}

	return "Internal error at " + e.Span.Start.String() + ": " + e.Message
}

// Is reports whether target is [ErrInternal].
func (e *InternalError) Is(target error) bool {
	return target == ErrInternal
}
