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

// Package transform implements the base script transformation.
//
// # Overview
//
// A script declares a custom base class by annotating a variable declaration
// with the type of that class:
//
//	@BaseScript MyBase base
//
//	println "running"
//
// The transformation makes MyBase the superclass of the script class and turns the
// declaration into "MyBase base = this", giving the script a typed handle on itself.
//
// When MyBase declares an abstract method, for example
//
//	abstract class MyBase extends Script {
//	    abstract void execute()
//	}
//
// the script class gets an implementation of execute() whose body is the script body.
// The default run() entry point stays in place unless configured with
// [WithRetarget]([level.RetargetReplace]). An abstract run() is implemented by the
// entry point itself, so nothing is added for it.
//
// # Diagnostics
//
// Misuse of the annotation is reported to the error collector of the compilation unit:
//
//   - the annotation is not attached to a variable declaration
//   - the declaration is not inside a script
//   - the declaration uses multiple assignment notation, like (a, b)
//   - a value is assigned in the declaration
//   - the declared type does not extend the runtime script class
//   - the script already declares the method to implement
//
// Being invoked with anything other than an annotation and an annotated node is a
// bug in the host and returns an error matching [diag.ErrInternal].
package transform
