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

package plugin

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/golangci/plugin-module-register/register"

	"fillmore-labs.com/basescript/host"
	"fillmore-labs.com/basescript/transform"
)

// New creates a new [Plugin] instance from raw host settings.
func New(rawSettings any) (*Plugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	return &Plugin{settings: settings}, nil
}

// Load creates a new [Plugin] instance from a TOML settings file.
func Load(path string) (*Plugin, error) {
	var settings Settings

	md, err := toml.DecodeFile(path, &settings)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown settings in %s: %v", path, undecoded)
	}

	return &Plugin{settings: settings}, nil
}

// Plugin is the base script transformation configured for a host.
type Plugin struct {
	settings Settings
}

// Settings returns the decoded settings.
func (p *Plugin) Settings() Settings {
	return p.settings
}

// Transformations returns the [host.Transformation]s for a compilation.
func (p *Plugin) Transformations(logger *slog.Logger) []host.Transformation {
	opts := p.settings.Options()
	if logger != nil {
		opts = append(opts, transform.WithLogger(logger))
	}

	t := transform.New(opts...)

	return []host.Transformation{t}
}
