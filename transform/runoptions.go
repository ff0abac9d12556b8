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
	"log/slog"

	"fillmore-labs.com/basescript/internal/config"
	"fillmore-labs.com/basescript/transform/level"
)

// runOptions represent configuration runOptions for the base script transformation.
type runOptions struct {
	// names are the declarations the transformation refers to.
	names config.Names

	// behavior holds the entry point switches.
	behavior config.BitMask[config.Behavior]

	// logger receives debug output, nil discards it.
	logger *slog.Logger
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		names:    config.DefaultNames(),
		behavior: config.DefaultBehavior(),
	}
}

// setRetarget maps a retarget level to the behavior switches.
func (r *runOptions) setRetarget(retarget level.Retarget) {
	r.behavior.Set(config.RetargetEntryPoint, retarget != level.RetargetOff)
	r.behavior.Set(config.ReplaceEntryPoint, retarget == level.RetargetReplace)
}

// retarget returns the retarget level of the behavior switches.
func (r *runOptions) retarget() level.Retarget {
	switch {
	case !r.behavior.Enabled(config.RetargetEntryPoint):
		return level.RetargetOff

	case r.behavior.Enabled(config.ReplaceEntryPoint):
		return level.RetargetReplace

	default:
		return level.RetargetKeep
	}
}
