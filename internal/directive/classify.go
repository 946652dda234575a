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

// Package directive implements the meta-directive dispatcher of spec.md
// §4.5: classification of the 21 recognized directive names, and the
// per-family handlers (define/undef, conditionals, #mode, line/file/
// error/warning/eval, #date, #exec) that internal/engine's main loop
// invokes once it has matched Meta.mStart + an identifier.
//
// Handlers are written against the Host interface rather than a concrete
// *engine.Engine, so this package has no dependency on internal/engine
// and internal/engine can depend on it instead.
package directive

// Kind identifies one of the 21 directives spec.md §4.5 names.
type Kind int

const (
	Unknown Kind = iota
	Define
	Undef
	Ifdef
	Ifndef
	Else
	Endif
	Include
	Exec
	Defeval
	Ifeq
	Ifneq
	EvalDirective
	If
	Mode
	Line
	File
	Elif
	Error
	Warning
	Date
	Sinclude
)

var byName = map[string]Kind{
	"define":   Define,
	"undef":    Undef,
	"ifdef":    Ifdef,
	"ifndef":   Ifndef,
	"else":     Else,
	"endif":    Endif,
	"include":  Include,
	"exec":     Exec,
	"defeval":  Defeval,
	"ifeq":     Ifeq,
	"ifneq":    Ifneq,
	"eval":     EvalDirective,
	"if":       If,
	"mode":     Mode,
	"line":     Line,
	"file":     File,
	"elif":     Elif,
	"error":    Error,
	"warning":  Warning,
	"date":     Date,
	"sinclude": Sinclude,
}

// Classify maps a directive name (the identifier following Meta.mStart)
// to its Kind, or (Unknown, false) if name is not one of the 21
// recognized directives.
func Classify(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

// AlwaysEmitsLiterally reports whether this directive's own replacement
// text is something other than a blank line: eval/date/exec and #include
// emit real content in place of the directive, and line/file emit nothing
// at all (they only reset the reported line or file name), so the
// "replace with a blank line" rule of spec.md §4.5 does not apply to
// them.
func (k Kind) AlwaysEmitsLiterally() bool {
	switch k {
	case EvalDirective, Line, File, Date, Exec, Include, Sinclude:
		return true
	default:
		return false
	}
}

// RequiresEmitting reports whether this directive only takes effect
// while output is enabled (i.e. not nested inside a false #if branch).
// Conditional directives themselves (ifdef/if/elif/else/endif) must
// always run regardless of the enclosing state so nesting stays
// balanced; everything else is suppressed while skipping.
func (k Kind) RequiresEmitting() bool {
	switch k {
	case Ifdef, Ifndef, If, Elif, Else, Endif, Ifeq, Ifneq:
		return false
	default:
		return true
	}
}
