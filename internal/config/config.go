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

package config

// Behavior represents switches of the base script transformation.
type Behavior uint8

const (
	// RetargetEntryPoint implements the first abstract method of the base script
	// with the body of the script's entry point.
	RetargetEntryPoint Behavior = 1 << iota

	// ReplaceEntryPoint removes the default entry point after retargeting it.
	ReplaceEntryPoint
)

// DefaultBehavior returns the default behavior switches.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask(RetargetEntryPoint)
}

// Default names of the well-known types.
const (
	DefaultAnnotationType = "org.ifcx.gondor.BaseScript"
	DefaultScriptType     = "groovy.lang.Script"
	DefaultEntryPoint     = "run"
)

// Names configures the declarations the transformation refers to.
type Names struct {
	// AnnotationType is the fully qualified name of the handled annotation.
	AnnotationType string

	// ScriptType is the fully qualified name of the runtime script class
	// every base script must extend.
	ScriptType string

	// EntryPoint is the name of the parameterless script body method.
	EntryPoint string
}

// DefaultNames returns the names used by the standard runtime.
func DefaultNames() Names {
	return Names{
		AnnotationType: DefaultAnnotationType,
		ScriptType:     DefaultScriptType,
		EntryPoint:     DefaultEntryPoint,
	}
}
