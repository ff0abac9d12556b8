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

package host

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/basescript/ast"
)

// Transformation is an annotation-driven pass.
type Transformation interface {
	// Phase is the compiler phase the transformation runs in.
	Phase() Phase

	// AnnotationType is the fully qualified name of the annotation triggering the transformation.
	AnnotationType() string

	// Visit is called with the annotation and the annotated node.
	// Problems in the user's source are reported to unit.Errors; a returned error aborts compilation.
	Visit(ctx context.Context, nodes []ast.Node, unit *SourceUnit) error
}

// Usage is an annotation together with the node it annotates.
type Usage struct {
	Annotation *ast.AnnotationNode
	Target     ast.Annotated
}

// Pipeline invokes registered transformations for the annotation usages of a unit.
type Pipeline struct {
	transformations []Transformation
	logger          *slog.Logger
}

// NewPipeline creates a [Pipeline]. A nil logger discards log output.
func NewPipeline(logger *slog.Logger, ts ...Transformation) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Pipeline{transformations: ts, logger: logger}
}

// Register adds a transformation.
func (p *Pipeline) Register(t Transformation) {
	p.transformations = append(p.transformations, t)
}

// Run executes the registered transformations phase by phase, in registration order
// within a phase and source order within a transformation.
//
// It returns the first transformation error, or a [*diag.ErrorList] when errors have
// been reported to the unit.
func (p *Pipeline) Run(ctx context.Context, unit *SourceUnit) error {
	ctx, task := trace.NewTask(ctx, "Compile")
	defer task.End()

	trace.Log(ctx, "unit", unit.Name)

	usages := Usages(unit.Module)

	for phase := Initialization; phase <= Finalization; phase++ {
		for _, t := range p.transformations {
			if t.Phase() != phase {
				continue
			}

			if err := p.apply(ctx, t, usages, unit); err != nil {
				return fmt.Errorf("%s: %s: %w", unit.Name, phase, err)
			}
		}
	}

	return unit.Errors.Err()
}

func (p *Pipeline) apply(ctx context.Context, t Transformation, usages []Usage, unit *SourceUnit) error {
	defer trace.StartRegion(ctx, t.AnnotationType()).End()

	for _, u := range usages {
		if u.Annotation.TypeName() != t.AnnotationType() {
			continue
		}

		p.logger.LogAttrs(ctx, slog.LevelDebug, "Visiting annotation",
			slog.String("unit", unit.Name),
			slog.String("annotation", t.AnnotationType()),
			slog.String("span", u.Annotation.Span().String()),
		)

		if err := t.Visit(ctx, []ast.Node{u.Annotation, u.Target}, unit); err != nil {
			return err
		}
	}

	return nil
}

// Usages collects all annotation usages of a module in source order.
func Usages(m *ast.Module) []Usage {
	var usages []Usage

	m.Inspect(func(n ast.Node) bool {
		a, ok := n.(ast.Annotated)
		if !ok {
			return true
		}

		for _, an := range a.AnnotationList() {
			usages = append(usages, Usage{Annotation: an, Target: a})
		}

		return true
	})

	return usages
}
