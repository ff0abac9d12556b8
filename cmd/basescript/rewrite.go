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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fillmore-labs.com/basescript/ast"
	"fillmore-labs.com/basescript/codec"
	"fillmore-labs.com/basescript/diag"
	"fillmore-labs.com/basescript/host"
	"fillmore-labs.com/basescript/plugin"
	"fillmore-labs.com/basescript/transform"
	"fillmore-labs.com/basescript/transform/level"
)

var errCompilation = errors.New("compilation failed")

type rewriteOptions struct {
	*rootOptions

	format       string
	outputFormat string
	out          string
}

func newRewriteCmd(ro *rootOptions) *cobra.Command {
	o := &rewriteOptions{rootOptions: ro}

	t := transform.New(transform.WithLogger(ro.logger))

	cmd := &cobra.Command{
		Use:   "rewrite [flags] unit",
		Short: "Rewrite a compilation unit",
		Long: `rewrite decodes a compilation unit, applies the base script transformation
and writes the resulting unit.

The unit format is taken from the file extension unless --format is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.cfgFile != "" {
				p, err := plugin.Load(o.cfgFile)
				if err != nil {
					return err
				}

				if err := applySettings(cmd.Flags(), p.Settings()); err != nil {
					return err
				}
			}

			return o.run(cmd, t, args[0])
		},
	}

	cmd.Flags().StringVar(&o.format, "format", "", "input format: yaml or cbor")
	cmd.Flags().StringVar(&o.outputFormat, "output-format", "", "output format: yaml or cbor (default input format)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output file (default standard output)")
	cmd.Flags().AddGoFlagSet(&t.Flags)

	return cmd
}

// applySettings sets transformation flags from a settings file. Flags given on the
// command line take precedence.
func applySettings(fs *pflag.FlagSet, s plugin.Settings) error {
	values := []struct {
		name  string
		value fmt.Stringer
	}{
		{"annotation", optString(s.AnnotationType)},
		{"script-type", optString(s.ScriptType)},
		{"entry-point", optString(s.EntryPoint)},
		{"retarget", optRetarget(s.Retarget)},
	}

	for _, v := range values {
		if v.value == nil || fs.Changed(v.name) {
			continue
		}

		if err := fs.Set(v.name, v.value.String()); err != nil {
			return fmt.Errorf("setting %s: %w", v.name, err)
		}
	}

	return nil
}

type stringValue string

func (s stringValue) String() string { return string(s) }

func optString(s *string) fmt.Stringer {
	if s == nil {
		return nil
	}

	return stringValue(*s)
}

func optRetarget(r *level.Retarget) fmt.Stringer {
	if r == nil {
		return nil
	}

	return *r
}

func (o *rewriteOptions) run(cmd *cobra.Command, t *transform.Transformation, path string) error {
	in, err := o.inputFormat(path)
	if err != nil {
		return err
	}

	out := in
	if o.outputFormat != "" {
		if out, err = codec.ParseFormat(o.outputFormat); err != nil {
			return err
		}
	}

	m, err := readUnit(path, in)
	if err != nil {
		return err
	}

	unit := host.NewSourceUnit(m.Name, m)
	if unit.Name == "" {
		unit.Name = path
	}

	err = host.NewPipeline(o.logger, t).Run(cmd.Context(), unit)

	for _, d := range unit.Errors.Diagnostics() {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s:%s\n", unit.Name, d)
	}

	if errList := (*diag.ErrorList)(nil); errors.As(err, &errList) {
		return fmt.Errorf("%s: %d errors: %w", unit.Name, len(errList.Errors), errCompilation)
	}

	if err != nil {
		return err
	}

	return o.writeUnit(cmd.OutOrStdout(), m, out)
}

func (o *rewriteOptions) inputFormat(path string) (codec.Format, error) {
	if o.format != "" {
		return codec.ParseFormat(o.format)
	}

	return codec.FormatFromPath(path)
}

func readUnit(path string, f codec.Format) (*ast.Module, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return codec.Decode(file, f)
}

func (o *rewriteOptions) writeUnit(stdout io.Writer, m *ast.Module, f codec.Format) error {
	var buf bytes.Buffer
	if err := codec.Encode(&buf, m, f); err != nil {
		return err
	}

	if o.out == "" {
		_, err := buf.WriteTo(stdout)

		return err
	}

	return os.WriteFile(o.out, buf.Bytes(), 0o644)
}
