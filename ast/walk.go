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

import "fmt"

// Inspect traverses the tree rooted at node in depth-first order. It calls f(node);
// when f returns true, Inspect visits the children of node.
//
// The declaring class of a [DeclarationExpr] and the classes referenced by types
// are not children.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *ClassNode:
		inspectAnnotations(n.Annotations, f)

		for _, fld := range n.Fields {
			Inspect(fld, f)
		}

		for _, m := range n.methods {
			Inspect(m, f)
		}

	case *MethodNode:
		inspectAnnotations(n.Annotations, f)

		if n.Body != nil {
			Inspect(n.Body, f)
		}

	case *FieldNode:
		inspectAnnotations(n.Annotations, f)

	case *AnnotationNode:
		for _, v := range n.Members {
			Inspect(v, f)
		}

	// Statements
	case *BlockStmt:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}

	case *ExprStmt:
		Inspect(n.X, f)

	case *ReturnStmt:
		if n.Value != nil {
			Inspect(n.Value, f)
		}

	// Expressions
	case *DeclarationExpr:
		inspectAnnotations(n.Annotations, f)
		Inspect(n.Left, f)

		if n.Right != nil {
			Inspect(n.Right, f)
		}

	case *TupleExpr:
		for _, e := range n.Elements {
			Inspect(e, f)
		}

	case *MethodCallExpr:
		if n.Receiver != nil {
			Inspect(n.Receiver, f)
		}

		for _, a := range n.Args {
			Inspect(a, f)
		}

	case *VariableExpr, *EmptyExpr, *ThisExpr, *ConstantExpr:
		// leaves

	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected node type %T", n))
	}
}

func inspectAnnotations(annotations []*AnnotationNode, f func(Node) bool) {
	for _, a := range annotations {
		Inspect(a, f)
	}
}

// Inspect traverses all classes of the module, see [Inspect].
func (m *Module) Inspect(f func(Node) bool) {
	for _, c := range m.Classes {
		Inspect(c, f)
	}
}
