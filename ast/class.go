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

import (
	"iter"
	"slices"
	"strings"
)

// DynamicTypeName is the type of untyped variables and parameters.
const DynamicTypeName = "java.lang.Object"

// ClassNode is a class declaration. Script classes are synthesized by the compiler
// for the top-level statements of a source file.
type ClassNode struct {
	SpanVal     Span
	Name        string // fully qualified name
	Modifiers   Modifiers
	Script      bool
	Superclass  *Type
	Fields      []*FieldNode
	Annotations []*AnnotationNode

	methods    []*MethodNode
	signatures map[string]*MethodNode
}

// NewClass creates a class with the given fully qualified name.
func NewClass(name string) *ClassNode {
	return &ClassNode{Name: name}
}

func (n *ClassNode) Span() Span                        { return n.SpanVal }
func (n *ClassNode) node()                             {}
func (n *ClassNode) annotated()                        {}
func (n *ClassNode) AnnotationList() []*AnnotationNode { return n.Annotations }

// SimpleName returns the class name without its package.
func (n *ClassNode) SimpleName() string {
	return SimpleName(n.Name)
}

// Methods returns the declared methods in declaration order.
// The result must not be modified.
func (n *ClassNode) Methods() []*MethodNode {
	return n.methods
}

// AbstractMethods yields the declared abstract methods in declaration order.
func (n *ClassNode) AbstractMethods() iter.Seq[*MethodNode] {
	return func(yield func(*MethodNode) bool) {
		for _, m := range n.methods {
			if !m.IsAbstract() {
				continue
			}

			if !yield(m) {
				return
			}
		}
	}
}

// AddMethod declares m on this class and sets its owner.
// A method already declared with the same signature is shadowed in lookups
// by [ClassNode.DeclaredMethod], but stays in [ClassNode.Methods].
func (n *ClassNode) AddMethod(m *MethodNode) {
	if n.signatures == nil {
		n.signatures = make(map[string]*MethodNode)
	}

	m.Owner = n
	n.methods = append(n.methods, m)
	n.signatures[m.Signature()] = m
}

// RemoveMethod removes m from this class and reports whether it was declared here.
func (n *ClassNode) RemoveMethod(m *MethodNode) bool {
	i := slices.Index(n.methods, m)
	if i < 0 {
		return false
	}

	n.methods = slices.Delete(n.methods, i, i+1)

	sig := m.Signature()
	if n.signatures[sig] == m {
		delete(n.signatures, sig)

		// restore a shadowed method with the same signature
		for _, o := range slices.Backward(n.methods) {
			if o.Signature() == sig {
				n.signatures[sig] = o

				break
			}
		}
	}

	return true
}

// DeclaredMethod returns the method declared on this class with the given name and
// parameter types, or nil.
func (n *ClassNode) DeclaredMethod(name string, params []*Parameter) *MethodNode {
	return n.signatures[Signature(name, params)]
}

// DerivesFrom reports whether this class is the class named name, or extends it.
func (n *ClassNode) DerivesFrom(name string) bool {
	seen := make(map[*ClassNode]struct{})

	for c := n; c != nil; c = c.superclass() {
		if c.Name == name {
			return true
		}

		if _, ok := seen[c]; ok {
			return false // cyclic hierarchy
		}

		seen[c] = struct{}{}
	}

	return false
}

// IsScript reports whether this class is a script or can serve as the superclass of one,
// scriptType being the fully qualified name of the runtime script class.
func (n *ClassNode) IsScript(scriptType string) bool {
	return n.Script || n.DerivesFrom(scriptType)
}

func (n *ClassNode) superclass() *ClassNode {
	if n.Superclass == nil {
		return nil
	}

	return n.Superclass.Class
}

// SimpleName returns a qualified name without its package.
func SimpleName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}

	return name
}

// Module is the syntax tree of one compilation unit.
type Module struct {
	Name    string
	Classes []*ClassNode
}

// ScriptClass returns the first script class of the module, or nil.
func (m *Module) ScriptClass() *ClassNode {
	for _, c := range m.Classes {
		if c.Script {
			return c
		}
	}

	return nil
}

// Class returns the class declared in this module with the given name, or nil.
func (m *Module) Class(name string) *ClassNode {
	for _, c := range m.Classes {
		if c.Name == name {
			return c
		}
	}

	return nil
}
