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

// The document model is the serialized form of an [ast.Module]. Classes reference
// each other by name; expressions and statements carry a kind discriminator.

type unitDoc struct {
	Name    string     `yaml:"name"    cbor:"name"`
	Classes []classDoc `yaml:"classes" cbor:"classes"`
}

type classDoc struct {
	Name        string          `yaml:"name"                  cbor:"name"`
	Script      bool            `yaml:"script,omitempty"      cbor:"script,omitempty"`
	Modifiers   []string        `yaml:"modifiers,omitempty"   cbor:"modifiers,omitempty"`
	Superclass  string          `yaml:"superclass,omitempty"  cbor:"superclass,omitempty"`
	Annotations []annotationDoc `yaml:"annotations,omitempty" cbor:"annotations,omitempty"`
	Fields      []fieldDoc      `yaml:"fields,omitempty"      cbor:"fields,omitempty"`
	Methods     []methodDoc     `yaml:"methods,omitempty"     cbor:"methods,omitempty"`
	Span        *spanDoc        `yaml:"span,omitempty"        cbor:"span,omitempty"`
}

type fieldDoc struct {
	Name        string          `yaml:"name"                  cbor:"name"`
	Modifiers   []string        `yaml:"modifiers,omitempty"   cbor:"modifiers,omitempty"`
	Type        string          `yaml:"type,omitempty"        cbor:"type,omitempty"`
	Annotations []annotationDoc `yaml:"annotations,omitempty" cbor:"annotations,omitempty"`
	Span        *spanDoc        `yaml:"span,omitempty"        cbor:"span,omitempty"`
}

type methodDoc struct {
	Name        string          `yaml:"name"                  cbor:"name"`
	Modifiers   []string        `yaml:"modifiers,omitempty"   cbor:"modifiers,omitempty"`
	Returns     string          `yaml:"returns,omitempty"     cbor:"returns,omitempty"`
	Params      []paramDoc      `yaml:"params,omitempty"      cbor:"params,omitempty"`
	Throws      []string        `yaml:"throws,omitempty"      cbor:"throws,omitempty"`
	Annotations []annotationDoc `yaml:"annotations,omitempty" cbor:"annotations,omitempty"`
	Body        []stmtDoc       `yaml:"body,omitempty"        cbor:"body,omitempty"`
	Span        *spanDoc        `yaml:"span,omitempty"        cbor:"span,omitempty"`
}

type paramDoc struct {
	Name string `yaml:"name"           cbor:"name"`
	Type string `yaml:"type,omitempty" cbor:"type,omitempty"`
}

type annotationDoc struct {
	Type    string             `yaml:"type"              cbor:"type"`
	Members map[string]exprDoc `yaml:"members,omitempty" cbor:"members,omitempty"`
	Span    *spanDoc           `yaml:"span,omitempty"    cbor:"span,omitempty"`
}

// Statement kinds.
const (
	kindBlock  = "block"
	kindExpr   = "expr"
	kindReturn = "return"
)

type stmtDoc struct {
	Kind  string    `yaml:"kind"            cbor:"kind"`
	Expr  *exprDoc  `yaml:"expr,omitempty"  cbor:"expr,omitempty"`
	Stmts []stmtDoc `yaml:"stmts,omitempty" cbor:"stmts,omitempty"`
	Span  *spanDoc  `yaml:"span,omitempty"  cbor:"span,omitempty"`
}

// Expression kinds.
const (
	kindVar   = "var"
	kindTuple = "tuple"
	kindEmpty = "empty"
	kindThis  = "this"
	kindConst = "const"
	kindCall  = "call"
	kindDecl  = "decl"
)

type exprDoc struct {
	Kind        string          `yaml:"kind"                  cbor:"kind"`
	Name        string          `yaml:"name,omitempty"        cbor:"name,omitempty"`
	Type        string          `yaml:"type,omitempty"        cbor:"type,omitempty"`
	Value       any             `yaml:"value,omitempty"       cbor:"value,omitempty"`
	Receiver    *exprDoc        `yaml:"receiver,omitempty"    cbor:"receiver,omitempty"`
	Method      string          `yaml:"method,omitempty"      cbor:"method,omitempty"`
	Args        []exprDoc       `yaml:"args,omitempty"        cbor:"args,omitempty"`
	Elements    []exprDoc       `yaml:"elements,omitempty"    cbor:"elements,omitempty"`
	Left        *exprDoc        `yaml:"left,omitempty"        cbor:"left,omitempty"`
	Right       *exprDoc        `yaml:"right,omitempty"       cbor:"right,omitempty"`
	Annotations []annotationDoc `yaml:"annotations,omitempty" cbor:"annotations,omitempty"`
	Span        *spanDoc        `yaml:"span,omitempty"        cbor:"span,omitempty"`
}

type spanDoc struct {
	Line      int `yaml:"line"               cbor:"line"`
	Col       int `yaml:"col"                cbor:"col"`
	EndLine   int `yaml:"end-line,omitempty" cbor:"end-line,omitempty"`
	EndColumn int `yaml:"end-col,omitempty"  cbor:"end-col,omitempty"`
}
