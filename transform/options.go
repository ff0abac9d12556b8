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

package transform

import (
	"log/slog"

	"fillmore-labs.com/basescript/transform/level"
)

// Option configures specific behavior of a [New] base script transformation.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithAnnotationType is an [Option] to configure the fully qualified name of the handled annotation.
func WithAnnotationType(annotationType string) Option {
	return annotationTypeOption{annotationType: annotationType}
}

type annotationTypeOption struct{ annotationType string }

func (o annotationTypeOption) apply(r *runOptions) {
	r.names.AnnotationType = o.annotationType
}

func (o annotationTypeOption) LogAttr() slog.Attr {
	return slog.String("annotation-type", o.annotationType)
}

// WithScriptType is an [Option] to configure the fully qualified name of the runtime script class.
func WithScriptType(scriptType string) Option { return scriptTypeOption{scriptType: scriptType} }

type scriptTypeOption struct{ scriptType string }

func (o scriptTypeOption) apply(r *runOptions) {
	r.names.ScriptType = o.scriptType
}

func (o scriptTypeOption) LogAttr() slog.Attr {
	return slog.String("script-type", o.scriptType)
}

// WithEntryPoint is an [Option] to configure the name of the script body method.
func WithEntryPoint(entryPoint string) Option { return entryPointOption{entryPoint: entryPoint} }

type entryPointOption struct{ entryPoint string }

func (o entryPointOption) apply(r *runOptions) {
	r.names.EntryPoint = o.entryPoint
}

func (o entryPointOption) LogAttr() slog.Attr {
	return slog.String("entry-point", o.entryPoint)
}

// WithRetarget is an [Option] to configure whether the entry point is retargeted to the
// abstract method of the base script.
func WithRetarget(retarget level.Retarget) Option { return retargetOption{retarget: retarget} }

type retargetOption struct{ retarget level.Retarget }

func (o retargetOption) apply(r *runOptions) {
	r.setRetarget(o.retarget)
}

func (o retargetOption) LogAttr() slog.Attr {
	return slog.String("retarget", o.retarget.String())
}

// WithLogger is an [Option] to configure the logger for debug output of rewrites.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
