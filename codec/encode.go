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

func encodeUnit(m *ast.Module) *unitDoc {
	doc := &unitDoc{Name: m.Name, Classes: make([]classDoc, 0, len(m.Classes))}

	for _, c := range m.Classes {
		doc.Classes = append(doc.Classes, encodeClass(c))
	}

	return doc
}

func encodeClass(c *ast.ClassNode) classDoc {
	cd := classDoc{
		Name:        c.Name,
		Script:      c.Script,
		Modifiers:   c.Modifiers.Names(),
		Superclass:  typeName(c.Superclass),
		Annotations: encodeAnnotations(c.Annotations),
		Span:        encodeSpan(c.SpanVal),
	}

	for _, f := range c.Fields {
		cd.Fields = append(cd.Fields, fieldDoc{
			Name:        f.Name,
			Modifiers:   f.Modifiers.Names(),
			Type:        typeName(f.Type),
			Annotations: encodeAnnotations(f.Annotations),
			Span:        encodeSpan(f.SpanVal),
		})
	}

	for _, m := range c.Methods() {
		cd.Methods = append(cd.Methods, encodeMethod(m))
	}

	return cd
}

func encodeMethod(m *ast.MethodNode) methodDoc {
	md := methodDoc{
		Name:        m.Name,
		Modifiers:   m.Modifiers.Names(),
		Returns:     typeName(m.ReturnType),
		Annotations: encodeAnnotations(m.Annotations),
		Span:        encodeSpan(m.SpanVal),
	}

	for _, p := range m.Parameters {
		md.Params = append(md.Params, paramDoc{Name: p.Name, Type: typeName(p.Type)})
	}

	for _, t := range m.Exceptions {
		md.Throws = append(md.Throws, typeName(t))
	}

	switch body := m.Body.(type) {
	case nil:

	case *ast.BlockStmt:
		md.Body = encodeStmts(body.Stmts)

	default:
		md.Body = encodeStmts([]ast.Stmt{body})
	}

	return md
}

func encodeAnnotations(as []*ast.AnnotationNode) []annotationDoc {
	if len(as) == 0 {
		return nil
	}

	ads := make([]annotationDoc, 0, len(as))
	for _, a := range as {
		ad := annotationDoc{Type: typeName(a.Type), Span: encodeSpan(a.SpanVal)}

		if len(a.Members) > 0 {
			ad.Members = make(map[string]exprDoc, len(a.Members))
			for k, v := range a.Members {
				ad.Members[k] = *encodeExpr(v)
			}
		}

		ads = append(ads, ad)
	}

	return ads
}

func encodeStmts(stmts []ast.Stmt) []stmtDoc {
	sds := make([]stmtDoc, 0, len(stmts))
	for _, s := range stmts {
		sds = append(sds, encodeStmt(s))
	}

	return sds
}

func encodeStmt(s ast.Stmt) stmtDoc {
	switch s := s.(type) {
	case *ast.BlockStmt:
		return stmtDoc{Kind: kindBlock, Stmts: encodeStmts(s.Stmts), Span: encodeSpan(s.SpanVal)}

	case *ast.ExprStmt:
		return stmtDoc{Kind: kindExpr, Expr: encodeExpr(s.X), Span: encodeSpan(s.SpanVal)}

	case *ast.ReturnStmt:
		return stmtDoc{Kind: kindReturn, Expr: encodeExpr(s.Value), Span: encodeSpan(s.SpanVal)}

	default:
		panic(fmt.Sprintf("codec: unexpected statement %T", s))
	}
}

func encodeExprs(xs []ast.Expr) []exprDoc {
	if len(xs) == 0 {
		return nil
	}

	eds := make([]exprDoc, 0, len(xs))
	for _, x := range xs {
		eds = append(eds, *encodeExpr(x))
	}

	return eds
}

// encodeExpr returns nil for a nil expression.
func encodeExpr(x ast.Expr) *exprDoc {
	switch x := x.(type) {
	case nil:
		return nil

	case *ast.VariableExpr:
		return &exprDoc{Kind: kindVar, Name: x.Name, Type: typeName(x.Type), Span: encodeSpan(x.SpanVal)}

	case *ast.TupleExpr:
		return &exprDoc{Kind: kindTuple, Elements: encodeExprs(x.Elements), Span: encodeSpan(x.SpanVal)}

	case *ast.EmptyExpr:
		return &exprDoc{Kind: kindEmpty, Span: encodeSpan(x.SpanVal)}

	case *ast.ThisExpr:
		return &exprDoc{Kind: kindThis, Span: encodeSpan(x.SpanVal)}

	case *ast.ConstantExpr:
		return &exprDoc{Kind: kindConst, Value: x.Value, Span: encodeSpan(x.SpanVal)}

	case *ast.MethodCallExpr:
		return &exprDoc{
			Kind:     kindCall,
			Receiver: encodeExpr(x.Receiver),
			Method:   x.Method,
			Args:     encodeExprs(x.Args),
			Span:     encodeSpan(x.SpanVal),
		}

	case *ast.DeclarationExpr:
		return &exprDoc{
			Kind:        kindDecl,
			Left:        encodeExpr(x.Left),
			Right:       encodeExpr(x.Right),
			Annotations: encodeAnnotations(x.Annotations),
			Span:        encodeSpan(x.SpanVal),
		}

	default:
		panic(fmt.Sprintf("codec: unexpected expression %T", x))
	}
}

// typeName returns the source form of t, or the empty string for the dynamic type.
func typeName(t *ast.Type) string {
	if t == nil || t.Class == nil {
		return ""
	}

	return t.String()
}

func encodeSpan(s ast.Span) *spanDoc {
	if !s.Start.IsValid() {
		return nil
	}

	return &spanDoc{Line: s.Start.Line, Col: s.Start.Column, EndLine: s.End.Line, EndColumn: s.End.Column}
}
