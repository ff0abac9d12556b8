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

// Package testsource provides utilities for loading compilation unit fixtures in tests.
//
// A fixture is a txtar archive holding a unit and its expected transformation result:
//
//	-- input.yaml --
//	name: script.groovy
//	classes: ...
//	-- output.yaml --
//	name: script.groovy
//	classes: ...
//	-- diagnostics --
//	3:5: Annotation @BaseScript not supported with variable assignment.
//
// Archive comment lines starting with "-" are flags for the transformation, other
// lines describe the fixture. output.yaml and diagnostics are optional.
package testsource

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/basescript/ast"
	"fillmore-labs.com/basescript/codec"
)

// Fixture file names.
const (
	InputFile       = "input.yaml"
	OutputFile      = "output.yaml"
	DiagnosticsFile = "diagnostics"
)

// Case is a loaded fixture.
type Case struct {
	// Name of the fixture, derived from the file name.
	Name string

	// Flags for the transformation.
	Flags []string

	// Input is the unit to transform.
	Input *ast.Module

	// Output is the normalized YAML encoding of the expected unit, nil when absent.
	Output []byte

	// Diagnostics are the expected diagnostics in "line:col: message" form.
	Diagnostics []string
}

// Glob loads all fixtures matching pattern.
func Glob(tb testing.TB, pattern string) []Case {
	tb.Helper()

	paths, err := filepath.Glob(pattern)
	if err != nil {
		tb.Fatalf("Invalid pattern %q: %v", pattern, err)
	}

	if len(paths) == 0 {
		tb.Fatalf("No fixtures match %q", pattern)
	}

	cases := make([]Case, 0, len(paths))
	for _, path := range paths {
		cases = append(cases, Load(tb, path))
	}

	return cases
}

// Load parses the fixture at path.
func Load(tb testing.TB, path string) Case {
	tb.Helper()

	ar, err := txtar.ParseFile(path)
	if err != nil {
		tb.Fatalf("Failed to read fixture %s: %v", path, err)
	}

	c := Case{
		Name:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Flags: flags(ar.Comment),
	}

	for _, f := range ar.Files {
		switch f.Name {
		case InputFile:
			c.Input = decode(tb, path, f.Data)

		case OutputFile:
			c.Output = Encode(tb, decode(tb, path, f.Data))

		case DiagnosticsFile:
			c.Diagnostics = lines(f.Data)

		default:
			tb.Fatalf("Unexpected file %q in fixture %s", f.Name, path)
		}
	}

	if c.Input == nil {
		tb.Fatalf("Fixture %s has no %s", path, InputFile)
	}

	return c
}

// Encode returns the YAML encoding of m.
func Encode(tb testing.TB, m *ast.Module) []byte {
	tb.Helper()

	var buf bytes.Buffer
	if err := codec.Encode(&buf, m, codec.YAML); err != nil {
		tb.Fatalf("Failed to encode unit %s: %v", m.Name, err)
	}

	return buf.Bytes()
}

func decode(tb testing.TB, path string, data []byte) *ast.Module {
	tb.Helper()

	m, err := codec.Decode(bytes.NewReader(data), codec.YAML)
	if err != nil {
		tb.Fatalf("Failed to decode fixture %s: %v", path, err)
	}

	return m
}

// flags returns the comment lines starting with a dash.
func flags(comment []byte) []string {
	var result []string

	for _, line := range lines(comment) {
		if strings.HasPrefix(line, "-") {
			result = append(result, line)
		}
	}

	return result
}

// lines returns the non-empty, trimmed lines of data.
func lines(data []byte) []string {
	var result []string

	for s := bufio.NewScanner(bytes.NewReader(data)); s.Scan(); {
		if line := strings.TrimSpace(s.Text()); line != "" {
			result = append(result, line)
		}
	}

	return result
}
