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

package directive

import (
	"github.com/gpp-go/gpp/internal/config"
	"github.com/gpp-go/gpp/internal/include"
	"github.com/gpp-go/gpp/internal/macro"
	"github.com/gpp-go/gpp/internal/syntax"
)

// Host is everything a directive handler needs from the engine that
// invokes it. internal/engine's Engine implements Host; this package
// never imports internal/engine, so the dependency runs one way only
// and handlers stay testable against a lightweight fake.
type Host interface {
	// Spec returns the currently active Spec (the top of the spec
	// stack). Handlers that mutate comment rules, modes, or charsets in
	// place operate directly on this pointer; handlers that snapshot a
	// Spec into a macro definition must Clone it first.
	Spec() *syntax.Spec
	// PushSpec clones the active Spec and makes the clone active
	// (#mode save/push).
	PushSpec() *syntax.Spec
	// PopSpec restores the previously active Spec (#mode restore/pop).
	// It is an error to pop past the initial frame.
	PopSpec() error
	// SpecDepth reports the current spec-stack depth.
	SpecDepth() int

	Macros() *macro.Table

	// PushIf, Elif, Else and Endif drive the conditional stack
	// (spec.md §4.5's ifdef/ifndef/if/ifeq/ifneq, elif, else, endif).
	PushIf(condTrue bool) error
	Elif(condTrue bool) error
	Else() error
	Endif() error
	// Emitting reports whether output is currently enabled by the
	// conditional stack (used by RequiresEmitting-gated directives and
	// by #mode's own bookkeeping).
	Emitting() bool

	Config() *config.Config
	IncludeMarker() *include.MarkerFormat

	// Location formats the current file:line for diagnostics.
	Location() string
	CurrentFile() string
	CurrentLine() int
	// SetLocation overrides the context's reported file and/or line
	// (#line, #file); a zero line leaves the line number unchanged, an
	// empty file leaves the file name unchanged.
	SetLocation(file string, line int)

	Warn(format string, args ...any)
	Fatalf(format string, args ...any) error

	// Expand pre-expands text (macro splicing, argument substitution)
	// under the active Spec, the same call-by-value recursion used for
	// macro actual arguments (spec.md §4.4), returning the fully
	// expanded result. Used for #eval/#if/#ifeq argument text and for
	// #exec's command line.
	Expand(text string) (string, error)

	// ResolveInclude searches for name per spec.md §4.7 relative to the
	// including file's directory.
	ResolveInclude(name string) (path string, err error)
	// ProcessInclude recursively preprocesses the file at path (pushing
	// a fresh Spec chosen by auto-switch rules) and returns its fully
	// expanded output text, to be spliced in place of the #include
	// directive.
	ProcessInclude(path string) (string, error)
}
