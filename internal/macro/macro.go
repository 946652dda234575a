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

// Package macro holds the user-macro table and the recognition logic that
// splices a macro invocation (name plus optional argument list) out of the
// input stream (spec.md §3 "Macro table", §4.4 "Macro expansion").
package macro

import "github.com/gpp-go/gpp/internal/syntax"

// Macro is one user-macro table entry (spec.md §3).
type Macro struct {
	Name string
	// Body is the raw replacement text. For a macro defined with `#define`
	// (not `#defeval`), Body is stored unexpanded; expansion happens at
	// each call site against that call's actual arguments.
	Body string
	// NamedArgs holds the declared formal-parameter names, in order, for a
	// macro defined with the named-parameter form
	// (`#define NAME(arg1, arg2) ...`). Empty when the macro takes only
	// positional #1.. references or no arguments at all.
	NamedArgs []string
	// NNamedArgs records len(NamedArgs) at definition time. Call sites do
	// not check it: a call may pass fewer or more actuals than NamedArgs,
	// and names without an actual are left unsubstituted in Body.
	NNamedArgs int
	// Spec snapshots the mode in effect when the macro was defined, so the
	// macro's own delimiters (used to re-parse ArgRef placeholders and to
	// drive the recursive call-by-value pre-expansion of each actual
	// argument) stay fixed regardless of any later `#mode` change
	// (spec.md §4.4 "macro bodies are scanned with the Spec active at
	// definition time").
	Spec *syntax.Spec
	// DefinedInComment marks a macro defined inside a PARSE_MACROS comment
	// body (spec.md §4.3). No definition path in this module sets it, so it
	// is always false and has no effect on output.
	DefinedInComment bool
	// HasArgList records that the macro was declared with an explicit,
	// possibly-empty parenthesized parameter list (`#define NAME(...) ...`)
	// rather than as a bare replacement. Call-site recognition does not
	// consult it: such a macro named without an argument list still
	// expands, in short form (spec.md §4.4).
	HasArgList bool
}

// TakesArgs reports whether this macro was declared with a parenthesized
// parameter list.
func (m *Macro) TakesArgs() bool { return m.HasArgList }
