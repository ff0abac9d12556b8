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

package ast

import "strconv"

// Position is a location in source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
}

// IsValid reports whether the position refers to source code.
func (p Position) IsValid() bool { return p.Line > 0 }

// String returns "line:column", or "-" for an invalid position.
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}

	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Span is a range in source code.
type Span struct {
	Start Position
	End   Position
}

// String returns "line:column-line:column".
func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}
