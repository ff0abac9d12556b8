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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fillmore-labs.com/basescript/codec"
)

const script = `name: deploy.groovy
classes:
  - name: deploy
    script: true
    superclass: groovy.lang.Script
    methods:
      - name: run
        returns: java.lang.Object
        body:
          - kind: expr
            expr:
              kind: decl
              annotations:
                - type: org.ifcx.gondor.BaseScript
              left: {kind: var, name: base, type: DeployBase}
              span: {line: 1, col: 1, end-line: 1, end-col: 29}
  - name: DeployBase
    superclass: groovy.lang.Script
    methods:
      - name: execute
        modifiers: [abstract]
        returns: java.lang.Object
`

// withoutEntryPoint has an abstract base class but no run() method.
var withoutEntryPoint = strings.Replace(script, "      - name: run\n", "      - name: main\n", 1)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Can't write %s: %v", name, err)
	}

	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err = execute(t.Context(), root)

	return out.String(), errOut.String(), err
}

func TestRewrite(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "deploy.yaml", script)

	stdout, stderr, err := run(t, "rewrite", path)
	if err != nil {
		t.Fatalf("rewrite failed: %v\n%s", err, stderr)
	}

	m, err := codec.Decode(strings.NewReader(stdout), codec.YAML)
	if err != nil {
		t.Fatalf("Can't decode output: %v", err)
	}

	c := m.ScriptClass()
	if got, want := c.Superclass.Name(), "DeployBase"; got != want {
		t.Errorf("Got superclass %s, want %s", got, want)
	}

	if c.DeclaredMethod("execute", nil) == nil || c.DeclaredMethod("run", nil) == nil {
		t.Errorf("Got methods %v, want run() and execute()", c.Methods())
	}
}

func TestRewriteSettings(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "deploy.yaml", script)
	cfg := writeFile(t, "basescript.toml", "retarget = \"replace\"\n")
	out := filepath.Join(t.TempDir(), "deploy.cbor")

	if _, stderr, err := run(t, "rewrite", "--config", cfg, "--output-format", "cbor", "-o", out, "-v", path); err != nil {
		t.Fatalf("rewrite failed: %v\n%s", err, stderr)
	} else if !strings.Contains(stderr, "Rewrote base script") {
		t.Errorf("Got log %q, want debug output", stderr)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Can't open output: %v", err)
	}
	defer f.Close()

	m, err := codec.Decode(f, codec.CBOR)
	if err != nil {
		t.Fatalf("Can't decode output: %v", err)
	}

	c := m.ScriptClass()
	if c.DeclaredMethod("run", nil) != nil || c.DeclaredMethod("execute", nil) == nil {
		t.Errorf("Got methods %v, want execute() only", c.Methods())
	}
}

func TestRewriteFlagPrecedence(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "deploy.yaml", script)
	cfg := writeFile(t, "basescript.toml", "retarget = \"replace\"\n")

	stdout, stderr, err := run(t, "rewrite", "--config", cfg, "--retarget=off", path)
	if err != nil {
		t.Fatalf("rewrite failed: %v\n%s", err, stderr)
	}

	m, err := codec.Decode(strings.NewReader(stdout), codec.YAML)
	if err != nil {
		t.Fatalf("Can't decode output: %v", err)
	}

	if c := m.ScriptClass(); c.DeclaredMethod("execute", nil) != nil {
		t.Errorf("Got methods %v, want run() only", c.Methods())
	}
}

func TestRewriteDiagnostics(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "deploy.yaml", strings.Replace(script, "type: DeployBase}", "type: DeployBase}\n              right: {kind: const, value: 1}", 1))

	stdout, stderr, err := run(t, "rewrite", path)
	if !errors.Is(err, errCompilation) {
		t.Fatalf("Got error %v, want %v", err, errCompilation)
	}

	const want = "deploy.groovy:1:1: Annotation @BaseScript not supported with variable assignment.\n"
	if stderr != want {
		t.Errorf("Got diagnostics %q, want %q", stderr, want)
	}

	if stdout != "" {
		t.Errorf("Got output %q, want none", stdout)
	}
}

func TestRewriteErrors(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "deploy.yaml", script)

	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{"rewrite"}},
		{"missing file", []string{"rewrite", filepath.Join(t.TempDir(), "missing.yaml")}},
		{"format", []string{"rewrite", "--format", "xml", path}},
		{"output format", []string{"rewrite", "--output-format", "xml", path}},
		{"extension", []string{"rewrite", writeFile(t, "deploy.groovy", script)}},
		{"config", []string{"rewrite", "--config", writeFile(t, "bad.toml", "retarget = 1\n"), path}},
		{"retarget", []string{"rewrite", "--retarget=sometimes", path}},
		{"no entry point", []string{"rewrite", writeFile(t, "norun.yaml", withoutEntryPoint)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, stderr, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("Expected error")
			}

			if !strings.Contains(stderr, err.Error()) {
				t.Errorf("Got stderr %q, want error %q", stderr, err)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}

	if !strings.HasPrefix(stdout, "basescript ") {
		t.Errorf("Got %q, want version output", stdout)
	}
}
