// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package astutil provides helpers shared by syntax tree passes.
package astutil

import (
	"fmt"
	"strings"

	"fillmore-labs.com/basescript/ast"
	"fillmore-labs.com/basescript/diag"
)

// InternalError returns an internal error located at node.
// These errors indicate bugs in the transformation logic or its host rather than issues in the user's code.
func InternalError(node ast.Node, format string, args ...any) *diag.InternalError {
	err := diag.Internalf(format, args...)
	if node != nil {
		err.Span = node.Span()
	}

	return err
}

// DescribeNodes formats the dynamic types of nodes, like "[*ast.AnnotationNode, *ast.ClassNode]".
func DescribeNodes(nodes []ast.Node) string {
	var b strings.Builder

	b.WriteByte('[') // ignore error

	for i, n := range nodes {
		if i > 0 {
			b.WriteString(", ") // ignore error
		}

		if n == nil {
			b.WriteString("<nil>") // ignore error

			continue
		}

		fmt.Fprintf(&b, "%T", n) // ignore error
	}

	b.WriteByte(']') // ignore error

	return b.String()
}
