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

// Node is implemented by all syntax tree nodes.
type Node interface {
	Span() Span
	node()
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	expr()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmt()
}

// Annotated is implemented by nodes annotations can be attached to.
type Annotated interface {
	Node
	AnnotationList() []*AnnotationNode
	annotated()
}

// AnnotationNode is an annotation usage like @BaseScript.
type AnnotationNode struct {
	SpanVal Span
	Type    *Type
	Members map[string]Expr
}

func (n *AnnotationNode) Span() Span { return n.SpanVal }
func (n *AnnotationNode) node()      {}

// TypeName returns the fully qualified name of the annotation type.
func (n *AnnotationNode) TypeName() string {
	if n.Type == nil {
		return ""
	}

	return n.Type.Name()
}
