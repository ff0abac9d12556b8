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

// Package host runs annotation-driven transformations over a compilation unit.
//
// It is the minimal compiler host a transformation is embedded in: it discovers
// annotation usages, invokes the transformations registered for them at their
// phase and aggregates the recorded diagnostics.
package host

import (
	"fillmore-labs.com/basescript/ast"
	"fillmore-labs.com/basescript/diag"
)

// Phase is a compiler phase.
type Phase uint8

//go:generate go tool stringer -type Phase -linecomment
const (
	Initialization       Phase = iota // initialization
	Parsing                           // parsing
	Conversion                        // conversion
	SemanticAnalysis                  // semantic analysis
	Canonicalization                  // canonicalization
	InstructionSelection              // instruction selection
	ClassGeneration                   // class generation
	Output                            // output
	Finalization                      // finalization
)

// SourceUnit is a compilation unit: its syntax tree and its error collector.
type SourceUnit struct {
	Name   string
	Module *ast.Module
	Errors *diag.Collector
}

// NewSourceUnit creates a [SourceUnit] with a fresh error collector.
func NewSourceUnit(name string, module *ast.Module) *SourceUnit {
	return &SourceUnit{
		Name:   name,
		Module: module,
		Errors: diag.NewCollector(name),
	}
}
