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

package plugin

import (
	"fillmore-labs.com/basescript/transform"
	"fillmore-labs.com/basescript/transform/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// AnnotationType is the fully qualified name of the handled annotation.
	AnnotationType *string `json:"annotation-type,omitzero" toml:"annotation-type"`
	// ScriptType is the fully qualified name of the runtime script class.
	ScriptType *string `json:"script-type,omitzero" toml:"script-type"`
	// EntryPoint is the name of the script's entry method.
	EntryPoint *string `json:"entry-point,omitzero" toml:"entry-point"`
	// Retarget controls how the entry point is retargeted to the abstract method.
	Retarget *level.Retarget `json:"retarget,omitzero" toml:"retarget"`
}

// Options converts [Settings] into a list of [transform.Option] for the base script transformation.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []transform.Option {
	var opts []transform.Option

	opts = appendOption(opts, s.AnnotationType, transform.WithAnnotationType)
	opts = appendOption(opts, s.ScriptType, transform.WithScriptType)
	opts = appendOption(opts, s.EntryPoint, transform.WithEntryPoint)
	opts = appendOption(opts, s.Retarget, transform.WithRetarget)

	return opts
}

// appendOption appends a non-nil setting to a [transform.Option] list.
func appendOption[T any](opts []transform.Option, value *T, constructor func(T) transform.Option) []transform.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
