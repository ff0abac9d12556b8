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

package codec

import (
	"fmt"

	"fillmore-labs.com/basescript/ast"
)

// decoder converts a [unitDoc] into a syntax tree.
type decoder struct {
	classes map[string]*ast.ClassNode
	stubs   map[string]*ast.ClassNode
}

func decodeUnit(doc *unitDoc) (*ast.Module, error) {
	d := decoder{
		classes: make(map[string]*ast.ClassNode, len(doc.Classes)),
		stubs:   make(map[string]*ast.ClassNode),
	}

	m := &ast.Module{Name: doc.Name, Classes: make([]*ast.ClassNode, 0, len(doc.Classes))}

	// declare all classes first, so that types can refer to classes declared later
	for i := range doc.Classes {
		cd := &doc.Classes[i]
		if _, ok := d.classes[cd.Name]; ok {
			return nil, fmt.Errorf("class %s: %w", cd.Name, ErrDuplicateClass)
		}

		c := ast.NewClass(cd.Name)
		d.classes[cd.Name] = c
		m.Classes = append(m.Classes, c)
	}

	for i, c := range m.Classes {
		if err := d.class(c, &doc.Classes[i]); err != nil {
			return nil, fmt.Errorf("class %s: %w", c.Name, err)
		}
	}

	return m, nil
}

// lookup returns the class with the given name. Unknown classes are external
// and represented by a shared stub without members.
func (d *decoder) lookup(name string) *ast.ClassNode {
	if c, ok := d.classes[name]; ok {
		return c
	}

	if c, ok := d.stubs[name]; ok {
		return c
	}

	c := ast.NewClass(name)
	d.stubs[name] = c

	return c
}

func (d *decoder) class(c *ast.ClassNode, cd *classDoc) error {
	var err error

	c.Script = cd.Script
	c.SpanVal = cd.Span.span()

	if c.Modifiers, err = modifiers(cd.Modifiers); err != nil {
		return err
	}

	if c.Superclass, err = d.typ(cd.Superclass); err != nil {
		return err
	}

	if c.Annotations, err = d.annotations(cd.Annotations, c); err != nil {
		return err
	}

	for _, fd := range cd.Fields {
		f, err := d.field(&fd, c)
		if err != nil {
			return fmt.Errorf("field %s: %w", fd.Name, err)
		}

		c.Fields = append(c.Fields, f)
	}

	for _, md := range cd.Methods {
		m, err := d.method(&md, c)
		if err != nil {
			return fmt.Errorf("method %s: %w", md.Name, err)
		}

		c.AddMethod(m)
	}

	return nil
}

func (d *decoder) field(fd *fieldDoc, c *ast.ClassNode) (*ast.FieldNode, error) {
	f := &ast.FieldNode{SpanVal: fd.Span.span(), Name: fd.Name, Owner: c}

	var err error
	if f.Modifiers, err = modifiers(fd.Modifiers); err != nil {
		return nil, err
	}

	if f.Type, err = d.typ(fd.Type); err != nil {
		return nil, err
	}

	if f.Annotations, err = d.annotations(fd.Annotations, c); err != nil {
		return nil, err
	}

	return f, nil
}

func (d *decoder) method(md *methodDoc, c *ast.ClassNode) (*ast.MethodNode, error) {
	m := &ast.MethodNode{SpanVal: md.Span.span(), Name: md.Name}

	var err error
	if m.Modifiers, err = modifiers(md.Modifiers); err != nil {
		return nil, err
	}

	if m.ReturnType, err = d.typ(md.Returns); err != nil {
		return nil, err
	}

	for _, pd := range md.Params {
		t, err := d.typ(pd.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", pd.Name, err)
		}

		m.Parameters = append(m.Parameters, &ast.Parameter{Name: pd.Name, Type: t})
	}

	for _, name := range md.Throws {
		t, err := d.typ(name)
		if err != nil {
			return nil, err
		}

		m.Exceptions = append(m.Exceptions, t)
	}

	if m.Annotations, err = d.annotations(md.Annotations, c); err != nil {
		return nil, err
	}

	if m.IsAbstract() && len(md.Body) == 0 {
		return m, nil
	}

	body := &ast.BlockStmt{}
	if body.Stmts, err = d.stmts(md.Body, c); err != nil {
		return nil, err
	}

	m.Body = body

	return m, nil
}

func (d *decoder) annotations(ads []annotationDoc, c *ast.ClassNode) ([]*ast.AnnotationNode, error) {
	if len(ads) == 0 {
		return nil, nil
	}

	as := make([]*ast.AnnotationNode, 0, len(ads))
	for _, ad := range ads {
		t, err := d.typ(ad.Type)
		if err != nil {
			return nil, err
		}

		a := &ast.AnnotationNode{SpanVal: ad.Span.span(), Type: t}

		if len(ad.Members) > 0 {
			a.Members = make(map[string]ast.Expr, len(ad.Members))
			for k, ed := range ad.Members {
				if a.Members[k], err = d.expr(&ed, c); err != nil {
					return nil, fmt.Errorf("annotation %s member %s: %w", ad.Type, k, err)
				}
			}
		}

		as = append(as, a)
	}

	return as, nil
}

func (d *decoder) stmts(sds []stmtDoc, c *ast.ClassNode) ([]ast.Stmt, error) {
	stmts := make([]ast.Stmt, 0, len(sds))

	for i := range sds {
		s, err := d.stmt(&sds[i], c)
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, s)
	}

	return stmts, nil
}

func (d *decoder) stmt(sd *stmtDoc, c *ast.ClassNode) (ast.Stmt, error) {
	span := sd.Span.span()

	switch sd.Kind {
	case kindBlock:
		stmts, err := d.stmts(sd.Stmts, c)
		if err != nil {
			return nil, err
		}

		return &ast.BlockStmt{SpanVal: span, Stmts: stmts}, nil

	case kindExpr:
		x, err := d.optExpr(sd.Expr, c)
		if err != nil {
			return nil, err
		}

		if x == nil {
			return nil, fmt.Errorf("expression statement: %w", ErrMissingExpr)
		}

		return &ast.ExprStmt{SpanVal: span, X: x}, nil

	case kindReturn:
		x, err := d.optExpr(sd.Expr, c)
		if err != nil {
			return nil, err
		}

		return &ast.ReturnStmt{SpanVal: span, Value: x}, nil

	default:
		return nil, fmt.Errorf("statement %q: %w", sd.Kind, ErrUnknownKind)
	}
}

func (d *decoder) optExpr(ed *exprDoc, c *ast.ClassNode) (ast.Expr, error) {
	if ed == nil {
		return nil, nil
	}

	return d.expr(ed, c)
}

func (d *decoder) exprs(eds []exprDoc, c *ast.ClassNode) ([]ast.Expr, error) {
	if len(eds) == 0 {
		return nil, nil
	}

	xs := make([]ast.Expr, 0, len(eds))

	for i := range eds {
		x, err := d.expr(&eds[i], c)
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
	}

	return xs, nil
}

func (d *decoder) expr(ed *exprDoc, c *ast.ClassNode) (ast.Expr, error) {
	span := ed.Span.span()

	switch ed.Kind {
	case kindVar:
		t, err := d.typ(ed.Type)
		if err != nil {
			return nil, err
		}

		return &ast.VariableExpr{SpanVal: span, Name: ed.Name, Type: t}, nil

	case kindTuple:
		elements, err := d.exprs(ed.Elements, c)
		if err != nil {
			return nil, err
		}

		return &ast.TupleExpr{SpanVal: span, Elements: elements}, nil

	case kindEmpty:
		return &ast.EmptyExpr{SpanVal: span}, nil

	case kindThis:
		return &ast.ThisExpr{SpanVal: span}, nil

	case kindConst:
		return &ast.ConstantExpr{SpanVal: span, Value: ed.Value}, nil

	case kindCall:
		receiver, err := d.optExpr(ed.Receiver, c)
		if err != nil {
			return nil, err
		}

		args, err := d.exprs(ed.Args, c)
		if err != nil {
			return nil, err
		}

		return &ast.MethodCallExpr{SpanVal: span, Receiver: receiver, Method: ed.Method, Args: args}, nil

	case kindDecl:
		return d.decl(ed, c)

	default:
		return nil, fmt.Errorf("expression %q: %w", ed.Kind, ErrUnknownKind)
	}
}

func (d *decoder) decl(ed *exprDoc, c *ast.ClassNode) (*ast.DeclarationExpr, error) {
	if ed.Left == nil {
		return nil, fmt.Errorf("declaration: %w", ErrMissingExpr)
	}

	left, err := d.expr(ed.Left, c)
	if err != nil {
		return nil, err
	}

	var right ast.Expr = &ast.EmptyExpr{}
	if ed.Right != nil {
		if right, err = d.expr(ed.Right, c); err != nil {
			return nil, err
		}
	}

	annotations, err := d.annotations(ed.Annotations, c)
	if err != nil {
		return nil, err
	}

	return &ast.DeclarationExpr{
		SpanVal:        ed.Span.span(),
		Left:           left,
		Right:          right,
		Annotations:    annotations,
		DeclaringClass: c,
	}, nil
}

func modifiers(names []string) (ast.Modifiers, error) {
	var mods ast.Modifiers

	for _, name := range names {
		m, err := ast.ParseModifier(name)
		if err != nil {
			return 0, err
		}

		mods |= m
	}

	return mods, nil
}

func (s *spanDoc) span() ast.Span {
	if s == nil {
		return ast.Span{}
	}

	return ast.Span{
		Start: ast.Position{Line: s.Line, Column: s.Col},
		End:   ast.Position{Line: s.EndLine, Column: s.EndColumn},
	}
}
