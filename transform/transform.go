// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package transform

import (
	"context"
	"flag"

	"fillmore-labs.com/basescript/ast"
	"fillmore-labs.com/basescript/diag"
	"fillmore-labs.com/basescript/host"
	"fillmore-labs.com/basescript/internal/astutil"
	"fillmore-labs.com/basescript/internal/rewrite"
)

// Public API constants for the base script transformation.
const (
	name = "basescript"
	doc  = `basescript makes the type of an annotated declaration the superclass of a script`
)

// Transformation is the base script transformation as a [host.Transformation].
type Transformation struct {
	// Name of the transformation.
	Name string

	// Doc is the documentation of the transformation.
	Doc string

	// Flags defines any flags accepted by the transformation.
	Flags flag.FlagSet

	opts *runOptions
}

// New creates a new instance of the base script transformation.
// It allows for programmatic configuration using [Option], which is useful
// for embedding the transformation into other tools. For command-line use, the
// pre-configured [Default] variable is typically sufficient.
func New(opts ...Option) *Transformation {
	r := makeRunOptions(opts)

	t := &Transformation{
		Name: name,
		Doc:  doc,
		opts: r,
	}

	registerFlags(&t.Flags, r)

	return t
}

// Default is a pre-configured [*Transformation] for the standard runtime.
var Default = New()

// Phase implements [host.Transformation].
func (t *Transformation) Phase() host.Phase {
	return host.SemanticAnalysis
}

// AnnotationType implements [host.Transformation].
func (t *Transformation) AnnotationType() string {
	return t.opts.names.AnnotationType
}

// Visit implements [host.Transformation]. nodes must be an annotation followed by the annotated node.
func (t *Transformation) Visit(ctx context.Context, nodes []ast.Node, unit *host.SourceUnit) error {
	if len(nodes) != 2 {
		return invalidNodes(nodes)
	}

	annotation, ok := nodes[0].(*ast.AnnotationNode)
	if !ok || annotation == nil {
		return invalidNodes(nodes)
	}

	annotated, ok := nodes[1].(ast.Annotated)
	if !ok {
		return invalidNodes(nodes)
	}

	if unit == nil || unit.Errors == nil {
		return astutil.InternalError(annotation, "%s invoked without source unit", t.Name)
	}

	r := rewrite.New(t.opts.names, t.opts.behavior, t.opts.logger)

	return r.Process(ctx, annotation, annotated, unit.Errors)
}

func invalidNodes(nodes []ast.Node) *diag.InternalError {
	return diag.Internalf("expecting [AnnotationNode, AnnotatedNode] but got: %s", astutil.DescribeNodes(nodes))
}
