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

// Package ast declares the syntax tree a script compilation unit is represented by.
//
// # Overview
//
// A [Module] holds the classes of one compilation unit. The compiler synthesizes
// a script class (a [ClassNode] with Script set) for the top-level statements of
// a source file, whose entry point is a parameterless method named run:
//
//	// deploy script
//	@BaseScript MyBase base
//	println "deploying"
//
// is represented as
//
//	class deploy extends Script {
//	    Object run() {
//	        MyBase base       // DeclarationExpr annotated with @BaseScript
//	        println "deploying"
//	    }
//	}
//
// # Node kinds
//
// The node kinds form closed sets: [Expr] and [Stmt] can only be implemented by the
// types declared in this package, so type switches over them are exhaustive.
// Nodes carrying annotations implement [Annotated].
//
// The tree is owned by the compilation unit. Passes mutate it in place while they
// have exclusive access.
package ast
