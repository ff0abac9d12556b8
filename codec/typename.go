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

package codec

import (
	"fmt"
	"strings"

	"fillmore-labs.com/basescript/ast"
)

// typ parses a type in source form, like "java.util.Map<java.lang.String, MyBase>".
// The empty string is the dynamic type.
func (d *decoder) typ(s string) (*ast.Type, error) {
	if s == "" {
		return nil, nil
	}

	p := typeParser{src: s, lookup: d.lookup}

	t, err := p.parse()
	if err != nil {
		return nil, err
	}

	if p.skipSpace(); p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}

	return t, nil
}

type typeParser struct {
	src    string
	pos    int
	lookup func(name string) *ast.ClassNode
}

func (p *typeParser) parse() (*ast.Type, error) {
	p.skipSpace()

	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}

	if p.pos == start {
		return nil, p.errorf("type name expected")
	}

	t := &ast.Type{Class: p.lookup(p.src[start:p.pos])}

	if p.skipSpace(); !p.consume('<') {
		return t, nil
	}

	for {
		arg, err := p.parse()
		if err != nil {
			return nil, err
		}

		t.Args = append(t.Args, arg)

		p.skipSpace()

		switch {
		case p.consume(','):
			continue

		case p.consume('>'):
			return t, nil

		default:
			return nil, p.errorf("',' or '>' expected")
		}
	}
}

func (p *typeParser) consume(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++

		return true
	}

	return false
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("type %q at offset %d: %s: %w", p.src, p.pos, fmt.Sprintf(format, args...), ErrInvalidType)
}

func isNameByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || strings.IndexByte("_.$[]", c) >= 0
}
