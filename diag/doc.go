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

// Package diag collects the diagnostics of a compilation unit.
//
// Problems in the user's source are recoverable: they are reported as [Diagnostic]
// values to a [Collector] and compilation continues. A violated contract between a
// pass and its host is fatal and surfaces as an [*InternalError], which matches
// [ErrInternal] with [errors.Is].
package diag
