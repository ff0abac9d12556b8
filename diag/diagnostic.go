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

package diag

import (
	"strconv"
	"strings"

	"fillmore-labs.com/basescript/ast"
)

// Kind classifies a [Diagnostic].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// SyntaxError is a recoverable error in the user's source.
	SyntaxError Kind = iota // syntax error

	// Warning does not fail the compilation.
	Warning // warning
)

// Diagnostic is a message associated with a source range.
type Diagnostic struct {
	Kind    Kind
	Span    ast.Span
	Message string
}

// String formats the diagnostic as "line:column: message".
func (d Diagnostic) String() string {
	return d.Span.Start.String() + ": " + d.Message
}

// Collector is the error collector of one compilation unit.
type Collector struct {
	source      string
	diagnostics []Diagnostic
	errors      int
}

// NewCollector creates an empty [Collector] for the named source.
func NewCollector(source string) *Collector {
	return &Collector{source: source}
}

// Report records a diagnostic.
func (c *Collector) Report(d Diagnostic) {
	if d.Kind == SyntaxError {
		c.errors++
	}

	c.diagnostics = append(c.diagnostics, d)
}

// AddErrorAndContinue records a recoverable syntax error at span.
func (c *Collector) AddErrorAndContinue(message string, span ast.Span) {
	c.Report(Diagnostic{Kind: SyntaxError, Span: span, Message: message})
}

// Diagnostics returns the recorded diagnostics in reporting order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diagnostics
}

// HasErrors reports whether any error has been recorded.
func (c *Collector) HasErrors() bool {
	return c.errors > 0
}

// Err returns an [*ErrorList] of all recorded errors, or nil.
func (c *Collector) Err() error {
	if c.errors == 0 {
		return nil
	}

	errs := make([]Diagnostic, 0, c.errors)
	for _, d := range c.diagnostics {
		if d.Kind == SyntaxError {
			errs = append(errs, d)
		}
	}

	return &ErrorList{Source: c.source, Errors: errs}
}

// ErrorList is the error returned for a compilation unit with recorded errors.
type ErrorList struct {
	Source string
	Errors []Diagnostic
}

func (e *ErrorList) Error() string {
	var b strings.Builder

	b.WriteString(e.Source) // ignore error

	switch n := len(e.Errors); n {
	case 1:
		b.WriteString(": 1 error") // ignore error

	default:
		b.WriteString(": ")            // ignore error
		b.WriteString(strconv.Itoa(n)) // ignore error
		b.WriteString(" errors")       // ignore error
	}

	for _, d := range e.Errors {
		b.WriteString("\n")       // ignore error
		b.WriteString(e.Source)   // ignore error
		b.WriteByte(':')          // ignore error
		b.WriteString(d.String()) // ignore error
	}

	return b.String()
}
