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

import "strings"

// MethodNode is a method declaration. Abstract methods have no body.
type MethodNode struct {
	SpanVal     Span
	Name        string
	Modifiers   Modifiers
	ReturnType  *Type
	Parameters  []*Parameter
	Exceptions  []*Type
	Body        Stmt
	Annotations []*AnnotationNode

	// Owner is the declaring class, set by [ClassNode.AddMethod].
	Owner *ClassNode
}

func (n *MethodNode) Span() Span                        { return n.SpanVal }
func (n *MethodNode) node()                             {}
func (n *MethodNode) annotated()                        {}
func (n *MethodNode) AnnotationList() []*AnnotationNode { return n.Annotations }

// IsAbstract reports whether the method is declared abstract.
func (n *MethodNode) IsAbstract() bool {
	return n.Modifiers.Has(Abstract)
}

// Signature returns the method name with its erased parameter types, like "execute(java.lang.String)".
func (n *MethodNode) Signature() string {
	return Signature(n.Name, n.Parameters)
}

// Signature builds the lookup key of a method with the given name and parameters.
func Signature(name string, params []*Parameter) string {
	var b strings.Builder

	b.WriteString(name) // ignore error
	b.WriteByte('(')    // ignore error

	for i, p := range params {
		if i > 0 {
			b.WriteByte(',') // ignore error
		}

		b.WriteString(p.Type.Name()) // ignore error
	}

	b.WriteByte(')') // ignore error

	return b.String()
}

// Parameter is a method parameter. A nil Type declares a dynamically typed parameter.
type Parameter struct {
	SpanVal Span
	Name    string
	Type    *Type
}

// FieldNode is a field declaration.
type FieldNode struct {
	SpanVal     Span
	Name        string
	Modifiers   Modifiers
	Type        *Type
	Annotations []*AnnotationNode

	Owner *ClassNode
}

func (n *FieldNode) Span() Span                        { return n.SpanVal }
func (n *FieldNode) node()                             {}
func (n *FieldNode) annotated()                        {}
func (n *FieldNode) AnnotationList() []*AnnotationNode { return n.Annotations }
