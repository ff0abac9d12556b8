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

package ast_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/basescript/ast"
)

func method(name string, mods Modifiers, params ...*Type) *MethodNode {
	m := &MethodNode{Name: name, Modifiers: mods}
	for i, p := range params {
		m.Parameters = append(m.Parameters, &Parameter{Name: string(rune('a' + i)), Type: p})
	}

	return m
}

func TestDerivesFrom(t *testing.T) {
	t.Parallel()

	script := NewClass("groovy.lang.Script")
	base := NewClass("com.example.Base")
	base.Superclass = NewType(script)
	derived := NewClass("com.example.Derived")
	derived.Superclass = NewType(base)

	a, b := NewClass("A"), NewClass("B")
	a.Superclass, b.Superclass = NewType(b), NewType(a)

	tests := []struct {
		name  string
		class *ClassNode
		want  bool
	}{
		{"self", script, true},
		{"direct", base, true},
		{"indirect", derived, true},
		{"unrelated", NewClass("java.util.ArrayList"), false},
		{"cycle", a, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.class.DerivesFrom("groovy.lang.Script"); got != tt.want {
				t.Errorf("%s.DerivesFrom(Script) = %v, want %v", tt.class.Name, got, tt.want)
			}
		})
	}

	s := NewClass("deploy")
	s.Script = true

	if !s.IsScript("groovy.lang.Script") {
		t.Error("Expected script class to be a script")
	}
}

func TestMethods(t *testing.T) {
	t.Parallel()

	str := NewType(NewClass("java.lang.String"))

	c := NewClass("com.example.Base")
	run := method("run", Public)
	execute := method("execute", Public|Abstract, str)
	cleanup := method("cleanup", Protected|Abstract)

	c.AddMethod(run)
	c.AddMethod(execute)
	c.AddMethod(cleanup)

	if got, want := execute.Signature(), "execute(java.lang.String)"; got != want {
		t.Errorf("Got signature %s, want %s", got, want)
	}

	if got, want := method("any", 0, nil, str).Signature(), "any(java.lang.Object,java.lang.String)"; got != want {
		t.Errorf("Got signature %s, want %s", got, want)
	}

	if execute.Owner != c {
		t.Errorf("Got owner %v, want %s", execute.Owner, c.Name)
	}

	if got := c.DeclaredMethod("execute", []*Parameter{{Type: str}}); got != execute {
		t.Errorf("Got method %v, want execute", got)
	}

	if got := c.DeclaredMethod("execute", nil); got != nil {
		t.Errorf("Got method %s, want none", got.Signature())
	}

	if got, want := slices.Collect(c.AbstractMethods()), []*MethodNode{execute, cleanup}; !slices.Equal(got, want) {
		t.Errorf("Got abstract methods %v, want %v", got, want)
	}

	shadow := method("run", Public|Final)
	c.AddMethod(shadow)

	if got := c.DeclaredMethod("run", nil); got != shadow {
		t.Errorf("Got method %v, want shadowing run", got)
	}

	if !c.RemoveMethod(shadow) {
		t.Fatal("Can't remove method")
	}

	if got := c.DeclaredMethod("run", nil); got != run {
		t.Errorf("Got method %v, want restored run", got)
	}

	if c.RemoveMethod(shadow) {
		t.Error("Removed method twice")
	}

	if got, want := c.Methods(), []*MethodNode{run, execute, cleanup}; !slices.Equal(got, want) {
		t.Errorf("Got methods %v, want %v", got, want)
	}
}

func TestType(t *testing.T) {
	t.Parallel()

	base := NewClass("com.example.Base")
	list := NewType(NewClass("java.util.List"), NewType(NewClass("java.lang.String")))
	generic := NewType(base, list, nil)

	if got, want := generic.String(), "com.example.Base<java.util.List<java.lang.String>, java.lang.Object>"; got != want {
		t.Errorf("Got %s, want %s", got, want)
	}

	if !generic.IsGeneric() {
		t.Error("Expected generic type")
	}

	plain := generic.PlainReference()
	if plain.IsGeneric() || plain.Class != base {
		t.Errorf("Got plain reference %s, want %s", plain, base.Name)
	}

	if len(generic.Args) != 2 {
		t.Error("PlainReference modified the original type")
	}

	var dynamic *Type
	if got := dynamic.Name(); got != DynamicTypeName {
		t.Errorf("Got %s, want %s", got, DynamicTypeName)
	}

	if got, want := base.SimpleName(), "Base"; got != want {
		t.Errorf("Got simple name %s, want %s", got, want)
	}

	if got, want := SimpleName("Base"), "Base"; got != want {
		t.Errorf("Got simple name %s, want %s", got, want)
	}
}

func TestModifiers(t *testing.T) {
	t.Parallel()

	m := Public | Abstract | Static

	if got, want := m.String(), "public static abstract"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if !m.Has(Public|Abstract) || m.Has(Final) {
		t.Errorf("Wrong modifier set %s", m)
	}

	var parsed Modifiers
	for _, name := range m.Names() {
		p, err := ParseModifier(name)
		if err != nil {
			t.Fatalf("ParseModifier(%q) failed: %v", name, err)
		}

		parsed |= p
	}

	if parsed != m {
		t.Errorf("Got %s, want %s", parsed, m)
	}

	if _, err := ParseModifier("sealed"); err == nil {
		t.Error("Expected error for unknown modifier")
	}
}
