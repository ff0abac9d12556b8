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

package ast

import (
	"fmt"
	"strings"
)

// Modifiers is a set of declaration modifiers.
type Modifiers uint16

const (
	Public Modifiers = 1 << iota
	Protected
	Private
	Static
	Final
	Abstract
	Synchronized
)

var modifierNames = [...]string{"public", "protected", "private", "static", "final", "abstract", "synchronized"}

// Has reports whether all modifiers in m2 are set.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// String returns the modifiers in source form, like "public abstract".
func (m Modifiers) String() string {
	var b strings.Builder

	for i, name := range modifierNames {
		if m&(1<<i) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte(' ') // ignore error
		}

		b.WriteString(name) // ignore error
	}

	return b.String()
}

// ParseModifier returns the modifier with the given source name.
func ParseModifier(name string) (Modifiers, error) {
	for i, n := range modifierNames {
		if n == name {
			return 1 << i, nil
		}
	}

	return 0, fmt.Errorf("unknown modifier %q", name)
}

// Names returns the source names of the modifiers in m.
func (m Modifiers) Names() []string {
	var names []string

	for i, name := range modifierNames {
		if m&(1<<i) != 0 {
			names = append(names, name)
		}
	}

	return names
}
