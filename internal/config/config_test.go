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

package config_test

import (
	"testing"

	. "fillmore-labs.com/basescript/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()
	if !b.Enabled(RetargetEntryPoint) || b.Enabled(ReplaceEntryPoint) {
		t.Fatalf("Got default behavior %+v", b)
	}

	b.Set(ReplaceEntryPoint, true)
	b.Set(RetargetEntryPoint, false)

	if b.Enabled(RetargetEntryPoint) || !b.Enabled(ReplaceEntryPoint) {
		t.Errorf("Got behavior %+v after Set", b)
	}

	b.Disable(ReplaceEntryPoint)

	if b.Enabled(RetargetEntryPoint) || b.Enabled(ReplaceEntryPoint) {
		t.Errorf("Got behavior %+v, want none", b)
	}

	if all := NewBitMask(RetargetEntryPoint, ReplaceEntryPoint); !all.Enabled(RetargetEntryPoint) || !all.Enabled(ReplaceEntryPoint) {
		t.Errorf("Got %+v, want all enabled", all)
	}
}

func TestDefaultNames(t *testing.T) {
	t.Parallel()

	want := Names{
		AnnotationType: "org.ifcx.gondor.BaseScript",
		ScriptType:     "groovy.lang.Script",
		EntryPoint:     "run",
	}

	if got := DefaultNames(); got != want {
		t.Errorf("Got names %+v, want %+v", got, want)
	}
}
