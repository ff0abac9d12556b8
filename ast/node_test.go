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

func TestDeclaration(t *testing.T) {
	t.Parallel()

	v := func(name string) *VariableExpr { return &VariableExpr{Name: name} }

	tests := []struct {
		name        string
		decl        *DeclarationExpr
		multiple    bool
		initializer bool
		names       []string
	}{
		{"bare", &DeclarationExpr{Left: v("b"), Right: &EmptyExpr{}}, false, false, []string{"b"}},
		{"nil right", &DeclarationExpr{Left: v("b")}, false, false, []string{"b"}},
		{"initializer", &DeclarationExpr{Left: v("b"), Right: &ConstantExpr{Value: 1}}, false, true, []string{"b"}},
		{"this", &DeclarationExpr{Left: v("b"), Right: &ThisExpr{}}, false, true, []string{"b"}},
		{
			"tuple",
			&DeclarationExpr{Left: &TupleExpr{Elements: []Expr{v("a"), v("_"), v("c")}}, Right: &EmptyExpr{}},
			true, false, []string{"a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.decl.IsMultipleAssignment(); got != tt.multiple {
				t.Errorf("IsMultipleAssignment() = %v, want %v", got, tt.multiple)
			}

			if got := tt.decl.HasInitializer(); got != tt.initializer {
				t.Errorf("HasInitializer() = %v, want %v", got, tt.initializer)
			}

			if _, ok := tt.decl.Variable(); ok == tt.multiple {
				t.Errorf("Variable() ok = %v, want %v", ok, !tt.multiple)
			}

			if got := slices.Collect(tt.decl.Names()); !slices.Equal(got, tt.names) {
				t.Errorf("Names() = %q, want %q", got, tt.names)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	script := NewClass("deploy")
	script.Script = true

	annotation := &AnnotationNode{
		Type:    NewType(NewClass("org.ifcx.gondor.BaseScript")),
		Members: map[string]Expr{"value": &ConstantExpr{Value: "x"}},
	}

	decl := &DeclarationExpr{
		Left:           &VariableExpr{Name: "b"},
		Right:          &EmptyExpr{},
		Annotations:    []*AnnotationNode{annotation},
		DeclaringClass: script,
	}

	script.AddMethod(&MethodNode{
		Name: "run",
		Body: &BlockStmt{Stmts: []Stmt{
			&ExprStmt{X: decl},
			&ReturnStmt{Value: &MethodCallExpr{Method: "go", Args: []Expr{&TupleExpr{Elements: []Expr{&ThisExpr{}}}}}},
			&ReturnStmt{},
		}},
	})
	script.Fields = append(script.Fields, &FieldNode{Name: "f"})

	m := &Module{Name: "deploy.groovy", Classes: []*ClassNode{script}}

	var kinds []string
	m.Inspect(func(n Node) bool {
		switch n.(type) {
		case *ClassNode:
			kinds = append(kinds, "class")

		case *FieldNode:
			kinds = append(kinds, "field")

		case *MethodNode:
			kinds = append(kinds, "method")

		case *AnnotationNode:
			kinds = append(kinds, "annotation")

		case Stmt:
			kinds = append(kinds, "stmt")

		case Expr:
			kinds = append(kinds, "expr")
		}

		return true
	})

	want := []string{
		"class", "field", "method", "stmt",
		"stmt", "expr", "annotation", "expr", "expr", "expr",
		"stmt", "expr", "expr", "expr",
		"stmt",
	}

	if !slices.Equal(kinds, want) {
		t.Errorf("Got %q, want %q", kinds, want)
	}

	var count int
	Inspect(decl, func(Node) bool {
		count++

		return false
	})

	if count != 1 {
		t.Errorf("Got %d visits when pruning, want 1", count)
	}

	if got, want := m.ScriptClass(), script; got != want {
		t.Errorf("Got script class %v, want %s", got, want.Name)
	}

	if m.Class("missing") != nil {
		t.Error("Found missing class")
	}
}
