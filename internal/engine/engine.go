// Copyright 2026 The gpp-go Authors.
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

package engine

import (
	"github.com/gpp-go/gpp/internal/config"
	"github.com/gpp-go/gpp/internal/include"
	"github.com/gpp-go/gpp/internal/macro"
	"github.com/gpp-go/gpp/internal/syntax"
)

// Engine is the explicit value that carries every piece of state the
// original tool kept in process-wide globals (spec.md §9 "Global state"
// design note): the spec stack, the macro table, the conditional stack,
// the resolved configuration, and an optional include-marker formatter.
// A program processes one input by constructing one Engine and calling
// ProcessContext on the root InputContext; nothing else is shared.
type Engine struct {
	Specs         *syntax.Stack
	Macros        *macro.Table
	Cond          *ConditionalStack
	Config        *config.Config
	IncludeMarker *include.MarkerFormat
	Diagnostics   *Diagnostics

	// reentryDepth bounds parse recursion (argument pre-expansion,
	// comment-interior recursion and #include collectively) to StackDepth
	// (spec.md §5 "Bounds").
	reentryDepth int
}

// New constructs an Engine with an initial Spec already pushed on the
// spec stack and an empty macro table.
func New(initial *syntax.Spec, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{
		Specs:       syntax.NewStack(initial),
		Macros:      macro.NewTable(),
		Cond:        &ConditionalStack{},
		Config:      cfg,
		Diagnostics: &Diagnostics{Level: cfg.WarningLevel},
	}
}

// Emitting reports whether the engine is currently inside a taken
// conditional branch (spec.md invariant: no macro expansion while any
// enclosing #if level is false).
func (e *Engine) Emitting() bool { return e.Cond.Emitting() }

// enterRecursion increments the reentry counter, returning an error once
// StackDepth is exceeded; the caller must invoke the returned release
// function (typically via defer) to decrement it again.
func (e *Engine) enterRecursion(loc string) (release func(), err error) {
	if e.reentryDepth+1 >= StackDepth {
		return func() {}, Fatalf(loc, "recursion depth exceeds %d", StackDepth)
	}
	e.reentryDepth++
	return func() { e.reentryDepth-- }, nil
}
