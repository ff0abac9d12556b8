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

// Package rewrite attaches a custom base class and entry point to a script class.
//
// Besides the checks on the annotated declaration, a script that already declares
// the base class's abstract method is rejected with "Script already declares method
// <sig>." before the tree is changed.
//
// When the abstract method has the entry point's own signature, like an abstract
// run(), the existing entry point already implements it and no method is added.
package rewrite

import (
	"context"
	"log/slog"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/basescript/ast"
	"fillmore-labs.com/basescript/diag"
	"fillmore-labs.com/basescript/internal/config"
)

// Reporter receives recoverable diagnostics.
type Reporter interface {
	Report(d diag.Diagnostic)
}

// Rewriter validates base script annotations and rewrites the annotated scripts.
type Rewriter struct {
	names    config.Names
	behavior config.BitMask[config.Behavior]
	logger   *slog.Logger
}

// New creates a [Rewriter]. A nil logger discards log output.
func New(names config.Names, behavior config.BitMask[config.Behavior], logger *slog.Logger) *Rewriter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Rewriter{names: names, behavior: behavior, logger: logger}
}

// Process handles one annotation usage.
//
// Annotations of other types are ignored. Problems in the user's source are sent to
// rep and leave the tree untouched. The returned error is an [*diag.InternalError]
// and indicates a tree the host should never have produced.
func (r *Rewriter) Process(ctx context.Context, annotation *ast.AnnotationNode, annotated ast.Annotated, rep Reporter) error {
	defer trace.StartRegion(ctx, "BaseScript").End()

	if annotation.TypeName() != r.names.AnnotationType {
		return nil
	}

	s, err := r.validate(annotated, rep)
	if s == nil || err != nil {
		return err
	}

	r.rewrite(ctx, s)

	return nil
}

// site is a validated annotation usage.
type site struct {
	decl   *ast.DeclarationExpr
	script *ast.ClassNode
	base   *ast.Type

	// abstract is the base class method the script has to implement, nil if none.
	abstract *ast.MethodNode

	// entryPoint is the script body method, only set with abstract.
	entryPoint *ast.MethodNode
}

// rewrite mutates the tree. All checks have been done by [Rewriter.validate].
func (r *Rewriter) rewrite(ctx context.Context, s *site) {
	var rhs ast.Span
	if s.decl.Right != nil {
		rhs = s.decl.Right.Span()
	}

	s.script.Superclass = s.base
	s.decl.Right = &ast.ThisExpr{SpanVal: rhs}

	attrs := []slog.Attr{
		slog.String("script", s.script.Name),
		slog.String("base", s.base.Name()),
	}

	if s.abstract != nil {
		m := &ast.MethodNode{
			SpanVal:    s.entryPoint.SpanVal,
			Name:       s.abstract.Name,
			Modifiers:  s.abstract.Modifiers &^ ast.Abstract,
			ReturnType: s.abstract.ReturnType,
			Parameters: slices.Clone(s.abstract.Parameters),
			Exceptions: slices.Clone(s.abstract.Exceptions),
			Body:       s.entryPoint.Body,
		}

		s.script.AddMethod(m)

		if r.behavior.Enabled(config.ReplaceEntryPoint) {
			s.script.RemoveMethod(s.entryPoint)
		}

		attrs = append(attrs, slog.String("entryPoint", m.Signature()))
	}

	r.logger.LogAttrs(ctx, slog.LevelDebug, "Rewrote base script", attrs...)
}
