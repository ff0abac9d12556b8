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

import "fillmore-labs.com/basescript/transform/level"

// retargetValue binds the retarget level to the behavior switches of a [runOptions].
type retargetValue struct {
	r *runOptions
}

// Set implements [flag.Value].
func (f retargetValue) Set(s string) error {
	var retarget level.Retarget
	if err := retarget.UnmarshalText([]byte(s)); err != nil {
		return err
	}

	f.r.setRetarget(retarget)

	return nil
}

// String implements [flag.Value].
func (f retargetValue) String() string {
	if f.r == nil {
		return level.RetargetKeep.String()
	}

	return f.r.retarget().String()
}

// Get implements [flag.Getter].
func (f retargetValue) Get() any {
	if f.r == nil {
		return level.RetargetKeep
	}

	return f.r.retarget()
}

// IsBoolFlag returns true so that a bare -retarget means "keep".
func (f retargetValue) IsBoolFlag() bool { return true }
