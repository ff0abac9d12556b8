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

package plugin_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"fillmore-labs.com/basescript/host"
	. "fillmore-labs.com/basescript/plugin"
	"fillmore-labs.com/basescript/transform"
	"fillmore-labs.com/basescript/transform/level"
)

const allSettings = `{
	"annotation-type": "com.example.Base",
	"script-type": "com.example.Script",
	"entry-point": "main",
	"retarget": "replace"
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
		{"retarget", `{"retarget": "off"}`, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), transform.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	p, err := New(map[string]any{
		"annotation-type": "com.example.Base",
		"retarget":        "replace",
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s := p.Settings()
	if s.AnnotationType == nil || *s.AnnotationType != "com.example.Base" {
		t.Errorf("Got annotation type %v, want %q", s.AnnotationType, "com.example.Base")
	}

	if s.Retarget == nil || *s.Retarget != level.RetargetReplace {
		t.Errorf("Got retarget %v, want %s", s.Retarget, level.RetargetReplace)
	}

	if s.ScriptType != nil {
		t.Errorf("Got script type %q, want unset", *s.ScriptType)
	}

	ts := p.Transformations(nil)
	if len(ts) != 1 {
		t.Fatalf("Got %d transformations, want 1", len(ts))
	}

	if got, want := ts[0].AnnotationType(), "com.example.Base"; got != want {
		t.Errorf("Got annotation type %q, want %q", got, want)
	}

	if got, want := ts[0].Phase(), host.SemanticAnalysis; got != want {
		t.Errorf("Got phase %s, want %s", got, want)
	}
}

func TestNewInvalid(t *testing.T) {
	t.Parallel()

	if _, err := New(map[string]any{"retarget": "sometimes"}); err == nil {
		t.Error("Expected error for invalid retarget level")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		content  string
		wantErr  bool
		retarget level.Retarget
	}{
		{
			name:     "all",
			content:  "annotation-type = \"com.example.Base\"\nscript-type = \"com.example.Script\"\nentry-point = \"main\"\nretarget = \"off\"\n",
			retarget: level.RetargetOff,
		},
		{
			name:     "empty",
			content:  "",
			retarget: level.RetargetKeep,
		},
		{
			name:    "unknown",
			content: "retarget = \"keep\"\nconservative = true\n",
			wantErr: true,
		},
		{
			name:    "invalid",
			content: "retarget = \"sometimes\"\n",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "basescript.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("Can't write settings: %v", err)
			}

			p, err := Load(path)
			if tc.wantErr {
				if err == nil {
					t.Error("Expected error")
				}

				return
			}

			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			var got level.Retarget
			if r := p.Settings().Retarget; r != nil {
				got = *r
			}

			if got != tc.retarget {
				t.Errorf("Got retarget %s, want %s", got, tc.retarget)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
