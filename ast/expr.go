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

import "iter"

// VariableExpr is a variable reference or declaration target.
// A nil Type declares a dynamically typed variable.
type VariableExpr struct {
	SpanVal Span
	Name    string
	Type    *Type
}

func (n *VariableExpr) Span() Span { return n.SpanVal }
func (n *VariableExpr) node()      {}
func (n *VariableExpr) expr()      {}

// TupleExpr is the left-hand side of a multiple assignment, like (a, b).
type TupleExpr struct {
	SpanVal  Span
	Elements []Expr
}

func (n *TupleExpr) Span() Span { return n.SpanVal }
func (n *TupleExpr) node()      {}
func (n *TupleExpr) expr()      {}

// EmptyExpr is the missing initializer of a declaration.
type EmptyExpr struct {
	SpanVal Span
}

func (n *EmptyExpr) Span() Span { return n.SpanVal }
func (n *EmptyExpr) node()      {}
func (n *EmptyExpr) expr()      {}

// ThisExpr refers to the running instance.
type ThisExpr struct {
	SpanVal Span
}

func (n *ThisExpr) Span() Span { return n.SpanVal }
func (n *ThisExpr) node()      {}
func (n *ThisExpr) expr()      {}

// ConstantExpr is a literal value.
type ConstantExpr struct {
	SpanVal Span
	Value   any
}

func (n *ConstantExpr) Span() Span { return n.SpanVal }
func (n *ConstantExpr) node()      {}
func (n *ConstantExpr) expr()      {}

// MethodCallExpr is a method call. A nil Receiver calls on the implicit instance.
type MethodCallExpr struct {
	SpanVal  Span
	Receiver Expr
	Method   string
	Args     []Expr
}

func (n *MethodCallExpr) Span() Span { return n.SpanVal }
func (n *MethodCallExpr) node()      {}
func (n *MethodCallExpr) expr()      {}

// DeclarationExpr is a local variable declaration like "MyBase base = expr".
// Left is a [*VariableExpr], or a [*TupleExpr] for multiple assignments.
// Right is an [*EmptyExpr] when there is no initializer.
type DeclarationExpr struct {
	SpanVal        Span
	Left           Expr
	Right          Expr
	Annotations    []*AnnotationNode
	DeclaringClass *ClassNode
}

func (n *DeclarationExpr) Span() Span                        { return n.SpanVal }
func (n *DeclarationExpr) node()                             {}
func (n *DeclarationExpr) expr()                             {}
func (n *DeclarationExpr) annotated()                        {}
func (n *DeclarationExpr) AnnotationList() []*AnnotationNode { return n.Annotations }

// IsMultipleAssignment reports whether this declaration uses the (a, b) = ... form.
func (n *DeclarationExpr) IsMultipleAssignment() bool {
	_, ok := n.Left.(*TupleExpr)

	return ok
}

// Variable returns the declared variable of a simple declaration.
func (n *DeclarationExpr) Variable() (*VariableExpr, bool) {
	v, ok := n.Left.(*VariableExpr)

	return v, ok
}

// HasInitializer reports whether a value is assigned in this declaration.
func (n *DeclarationExpr) HasInitializer() bool {
	switch n.Right.(type) {
	case nil, *EmptyExpr:
		return false

	default:
		return true
	}
}

// Names yields all declared variable names.
func (n *DeclarationExpr) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		switch left := n.Left.(type) {
		case *VariableExpr:
			yield(left.Name)

		case *TupleExpr:
			for _, e := range left.Elements {
				v, ok := e.(*VariableExpr)
				if !ok || v.Name == "_" {
					continue
				}

				if !yield(v.Name) {
					return
				}
			}
		}
	}
}
