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

package level

import (
	"fmt"
	"strings"
)

// Retarget specifies how the script entry point is retargeted to the base script's abstract method.
type Retarget uint8

const (
	// RetargetKeep implements the abstract method with the entry point's body and keeps the entry point.
	RetargetKeep Retarget = iota

	// RetargetReplace implements the abstract method with the entry point's body and removes the entry point.
	RetargetReplace

	// RetargetOff leaves the entry point alone.
	RetargetOff
)

// String returns the text form of the level.
func (o Retarget) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Retarget(%d)", o)
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (o Retarget) MarshalText() ([]byte, error) {
	switch o {
	case RetargetKeep:
		return []byte("keep"), nil

	case RetargetReplace:
		return []byte("replace"), nil

	case RetargetOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown retarget level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Retarget) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "true", "on", "keep":
		*o = RetargetKeep

	case "replace":
		*o = RetargetReplace

	case "off", "false":
		*o = RetargetOff

	default:
		return fmt.Errorf("unknown retarget level %q", string(text))
	}

	return nil
}
