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

package rewrite

import (
	"fmt"

	"fillmore-labs.com/basescript/ast"
	"fillmore-labs.com/basescript/diag"
	"fillmore-labs.com/basescript/internal/astutil"
	"fillmore-labs.com/basescript/internal/config"
)

// validate checks the preconditions of the rewrite in order. The first failure is
// reported and a nil site returned.
func (r *Rewriter) validate(annotated ast.Annotated, rep Reporter) (*site, error) {
	report := func(format string, args ...any) (*site, error) {
		rep.Report(diag.Diagnostic{
			Kind:    diag.SyntaxError,
			Span:    annotated.Span(),
			Message: fmt.Sprintf(format, args...),
		})

		return nil, nil
	}

	decl, ok := annotated.(*ast.DeclarationExpr)
	if !ok {
		return report("Annotation %s can only be used on a variable declaration.", r.displayName())
	}

	script := decl.DeclaringClass
	if script == nil {
		return nil, astutil.InternalError(decl, "declaration without declaring class")
	}

	if !script.IsScript(r.names.ScriptType) {
		return report("Annotation %s can only be used within a Script.", r.displayName())
	}

	if decl.IsMultipleAssignment() {
		return report("Annotation %s not supported with multiple assignment notation.", r.displayName())
	}

	if decl.HasInitializer() {
		return report("Annotation %s not supported with variable assignment.", r.displayName())
	}

	v, ok := decl.Variable()
	if !ok {
		return nil, astutil.InternalError(decl, "declaration of %T", decl.Left)
	}

	if v.Type == nil || v.Type.Class == nil {
		return report("Declared type %s does not extend %s class!", ast.DynamicTypeName, r.names.ScriptType)
	}

	base := v.Type.PlainReference()
	if !base.Class.IsScript(r.names.ScriptType) {
		return report("Declared type %s does not extend %s class!", base, r.names.ScriptType)
	}

	s := &site{decl: decl, script: script, base: base}

	if !r.behavior.Enabled(config.RetargetEntryPoint) {
		return s, nil
	}

	abstract := firstAbstractMethod(base.Class)
	if abstract == nil {
		return s, nil
	}

	entryPoint := script.DeclaredMethod(r.names.EntryPoint, nil)
	if entryPoint == nil {
		return nil, astutil.InternalError(script, "script %s without %s() method", script.Name, r.names.EntryPoint)
	}

	sig := abstract.Signature()
	if sig == entryPoint.Signature() {
		return s, nil // the entry point already implements it
	}

	if script.DeclaredMethod(abstract.Name, abstract.Parameters) != nil {
		return report("Script already declares method %s.", sig)
	}

	s.abstract, s.entryPoint = abstract, entryPoint

	return s, nil
}

// firstAbstractMethod returns the first abstract method declared on c in declaration order, or nil.
func firstAbstractMethod(c *ast.ClassNode) *ast.MethodNode {
	for m := range c.AbstractMethods() {
		return m
	}

	return nil
}

// displayName is the annotation as written in source, like "@BaseScript".
func (r *Rewriter) displayName() string {
	return "@" + ast.SimpleName(r.names.AnnotationType)
}
