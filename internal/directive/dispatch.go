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

import "strings"

// Dispatch runs the handler for kind, given its already delimiter-split
// (but not yet macro-expanded) argument words args. It returns the text
// that should be spliced into the output in place of the whole directive
// invocation: empty for directives that never produce output themselves
// (define, undef, the conditionals, mode, and line and file, which only
// reset the reported location), and real content for eval, date, exec,
// include and sinclude (spec.md §4.5).
func Dispatch(h Host, kind Kind, args []string) (string, error) {
	if kind != Unknown && kind.RequiresEmitting() && !h.Emitting() {
		return "", nil
	}
	switch kind {
	case Define:
		return "", handleDefine(h, args, false)
	case Defeval:
		return "", handleDefine(h, args, true)
	case Undef:
		return "", handleUndef(h, args)
	case Ifdef:
		return "", handleIfdefIfndef(h, args, false)
	case Ifndef:
		return "", handleIfdefIfndef(h, args, true)
	case If:
		return "", handleIf(h, rest(args, 0), false)
	case Elif:
		return "", handleIf(h, rest(args, 0), true)
	case Ifeq:
		return "", handleIfeqIfneq(h, args, false)
	case Ifneq:
		return "", handleIfeqIfneq(h, args, true)
	case Else:
		return "", h.Else()
	case Endif:
		return "", h.Endif()
	case EvalDirective:
		return handleEval(h, rest(args, 0))
	case Error:
		return "", handleError(h, rest(args, 0))
	case Warning:
		return "", handleWarning(h, rest(args, 0))
	case Line:
		return "", handleLine(h, args)
	case File:
		return "", handleFile(h, args)
	case Date:
		return handleDate(h, rest(args, 0))
	case Exec:
		return handleExec(h, rest(args, 0))
	case Mode:
		return "", handleMode(h, args)
	case Include:
		return handleInclude(h, args, false)
	case Sinclude:
		return handleInclude(h, args, true)
	default:
		return "", h.Fatalf("unknown directive")
	}
}

// rest re-joins args[from:] with single spaces, reconstructing free-form
// text (an expression, a message, a command line) from the
// whitespace-tokenized word list the engine split the directive's
// argument region into.
func rest(args []string, from int) string {
	if from >= len(args) {
		return ""
	}
	return strings.Join(args[from:], " ")
}

func arg(args []string, i int) string {
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}
