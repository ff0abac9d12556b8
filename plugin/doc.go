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

/*
Package plugin loads base script transformation settings for compiler hosts.

# Usage

Settings are read from a TOML file:

	annotation-type = "org.ifcx.gondor.BaseScript"
	script-type = "groovy.lang.Script"
	entry-point = "run"
	retarget = "keep"

or decoded from the raw settings a host hands to its plugins:

	p, err := plugin.New(map[string]any{"retarget": "replace"})
	if err != nil {
		return err
	}

	pipeline := host.NewPipeline(logger, p.Transformations(logger)...)

Unset values keep their defaults. retarget accepts "keep", "replace" and "off".
*/
package plugin
