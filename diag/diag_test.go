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

package diag_test

import (
	"errors"
	"testing"

	"fillmore-labs.com/basescript/ast"
	. "fillmore-labs.com/basescript/diag"
)

func at(line, col int) ast.Span {
	return ast.Span{Start: ast.Position{Line: line, Column: col}, End: ast.Position{Line: line, Column: col + 1}}
}

func TestCollector(t *testing.T) {
	t.Parallel()

	c := NewCollector("deploy.groovy")

	if c.HasErrors() || c.Err() != nil {
		t.Fatal("Expected empty collector")
	}

	c.Report(Diagnostic{Kind: Warning, Span: at(1, 1), Message: "unused variable"})

	if c.HasErrors() || c.Err() != nil {
		t.Error("Warnings must not fail the unit")
	}

	c.AddErrorAndContinue("first", at(2, 3))
	c.Report(Diagnostic{Kind: SyntaxError, Message: "second"})

	if got, want := len(c.Diagnostics()), 3; got != want {
		t.Errorf("Got %d diagnostics, want %d", got, want)
	}

	var errs *ErrorList
	if err := c.Err(); !errors.As(err, &errs) {
		t.Fatalf("Got %v, want %T", err, errs)
	}

	const want = "deploy.groovy: 2 errors\ndeploy.groovy:2:3: first\ndeploy.groovy:-: second"
	if got := errs.Error(); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	single := &ErrorList{Source: "a", Errors: errs.Errors[:1]}
	if got, want := single.Error(), "a: 1 error\na:2:3: first"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestInternalError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *InternalError
		want string
	}{
		{"unpositioned", Internalf("bad %s", "nodes"), "Internal error: bad nodes"},
		{"positioned", &InternalError{Span: at(4, 2), Message: "no run"}, "Internal error at 4:2: no run"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}

			if !errors.Is(tt.err, ErrInternal) {
				t.Error("Expected internal error")
			}
		})
	}

	if errors.Is(errors.New("other"), ErrInternal) {
		t.Error("Unexpected internal error")
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if got, want := SyntaxError.String(), "syntax error"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got, want := Warning.String(), "warning"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
