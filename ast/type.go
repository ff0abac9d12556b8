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

// Type is a reference to a class, possibly with generic arguments.
type Type struct {
	Class *ClassNode
	Args  []*Type
}

// NewType returns a reference to class c.
func NewType(c *ClassNode, args ...*Type) *Type {
	return &Type{Class: c, Args: args}
}

// Name returns the fully qualified name of the referenced class.
func (t *Type) Name() string {
	if t == nil || t.Class == nil {
		return DynamicTypeName
	}

	return t.Class.Name
}

// PlainReference returns a reference to the same class without generic arguments.
func (t *Type) PlainReference() *Type {
	return &Type{Class: t.Class}
}

// IsGeneric reports whether the reference has generic arguments.
func (t *Type) IsGeneric() bool {
	return len(t.Args) > 0
}

// String returns the type in source form, like "java.util.Map<K, V>".
func (t *Type) String() string {
	var b strings.Builder
	t.write(&b)

	return b.String()
}

func (t *Type) write(b *strings.Builder) {
	b.WriteString(t.Name()) // ignore error

	if t == nil || len(t.Args) == 0 {
		return
	}

	b.WriteByte('<') // ignore error

	for i, a := range t.Args {
		if i > 0 {
			b.WriteString(", ") // ignore error
		}

		a.write(b)
	}

	b.WriteByte('>') // ignore error
}
