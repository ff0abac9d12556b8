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

// Command basescript applies the base script transformation to compilation units.
//
// Usage:
//
//	basescript rewrite [--config basescript.toml] [--retarget=keep|replace|off] unit.yaml
//
// The rewritten unit is written to standard output, diagnostics to standard error.
package main

import (
	"context"
	"os"
)

func main() {
	if err := execute(context.Background(), newRootCmd(os.Stdout, os.Stderr)); err != nil {
		os.Exit(1)
	}
}
