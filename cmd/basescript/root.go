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
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags of all commands.
type rootOptions struct {
	cfgFile string
	verbose bool

	level  slog.LevelVar
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &rootOptions{}
	o.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: &o.level}))

	rootCmd := &cobra.Command{
		Use:   "basescript",
		Short: "Apply custom script base classes",
		Long: `basescript rewrites scripts with a @BaseScript annotated declaration
to extend the declared base class.

The annotated variable becomes a reference to the script itself, and the first
abstract method of the base class is implemented with the script body.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if o.verbose {
				o.level.Set(slog.LevelDebug)
			}
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", "settings file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newRewriteCmd(o), newVersionCmd())

	return rootCmd
}

// execute runs the command and prints errors not already reported as diagnostics.
func execute(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errCompilation) {
		rootCmd.PrintErrln("Error:", err)
	}

	return err
}
