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

// Package codec reads and writes compilation units.
//
// A unit is stored as a document of named classes. Expressions and statements are
// tagged with a kind:
//
//	name: deploy.groovy
//	classes:
//	  - name: deploy
//	    script: true
//	    superclass: groovy.lang.Script
//	    methods:
//	      - name: run
//	        returns: java.lang.Object
//	        body:
//	          - kind: expr
//	            expr:
//	              kind: decl
//	              annotations: [{type: org.ifcx.gondor.BaseScript}]
//	              left: {kind: var, name: base, type: MyBase}
//
// Types are written in source form, like "java.util.List<java.lang.String>". Classes
// not declared in the unit are external and have no members.
//
// YAML documents may also be written as JSON. CBOR is the binary form for hosts
// exchanging trees.
package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/basescript/ast"
)

var (
	// ErrUnknownFormat is returned for unsupported unit formats.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnknownKind is returned for statements and expressions of unknown kind.
	ErrUnknownKind = errors.New("unknown kind")

	// ErrMissingExpr is returned when a required expression is missing.
	ErrMissingExpr = errors.New("missing expression")

	// ErrInvalidType is returned for malformed type names.
	ErrInvalidType = errors.New("invalid type")

	// ErrDuplicateClass is returned when a unit declares a class twice.
	ErrDuplicateClass = errors.New("duplicate class")
)

// Format is the encoding of a unit document.
type Format uint8

//go:generate go tool stringer -type Format -linecomment
const (
	YAML Format = iota // yaml
	CBOR               // cbor
)

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml", "json":
		return YAML, nil

	case "cbor":
		return CBOR, nil

	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// FormatFromPath returns the format for the file name extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%s: no file extension: %w", path, ErrUnknownFormat)
	}

	return ParseFormat(ext)
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("codec: failed to create CBOR enc mode: %v", err))
	}

	cborEncMode = em
}

// Decode reads a unit in format f.
func Decode(r io.Reader, f Format) (*ast.Module, error) {
	var doc unitDoc

	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)

		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("codec: decode yaml: %w", err)
		}

	case CBOR:
		if err := cbor.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("codec: decode cbor: %w", err)
		}

	default:
		return nil, fmt.Errorf("codec: %s: %w", f, ErrUnknownFormat)
	}

	m, err := decodeUnit(&doc)
	if err != nil {
		return nil, fmt.Errorf("codec: unit %s: %w", doc.Name, err)
	}

	return m, nil
}

// Encode writes m in format f.
func Encode(w io.Writer, m *ast.Module, f Format) error {
	doc := encodeUnit(m)

	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("codec: encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("codec: encode yaml: %w", err)
		}

	case CBOR:
		if err := cborEncMode.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("codec: encode cbor: %w", err)
		}

	default:
		return fmt.Errorf("codec: %s: %w", f, ErrUnknownFormat)
	}

	return nil
}
