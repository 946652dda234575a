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
	"strings"

	"github.com/gpp-go/gpp/internal/eval"
	"github.com/gpp-go/gpp/internal/macro"
)

func handleIfdefIfndef(h Host, args []string, negate bool) error {
	name := strings.TrimSpace(arg(args, 0))
	defined := h.Macros().Defined(name)
	if negate {
		defined = !defined
	}
	return h.PushIf(defined)
}

func handleIf(h Host, rawExpr string, isElif bool) error {
	substituted := substituteDefined(h.Macros(), rawExpr)
	expanded, err := h.Expand(substituted)
	if err != nil {
		return err
	}
	v, err := eval.Eval(expanded)
	if err != nil {
		return h.Fatalf("invalid #if expression %q: %v", strings.TrimSpace(rawExpr), err)
	}
	cond := truthy(v)
	if isElif {
		return h.Elif(cond)
	}
	return h.PushIf(cond)
}

func handleIfeqIfneq(h Host, args []string, negate bool) error {
	a, b, ok := splitTwoArgs(rest(args, 0))
	if !ok {
		return h.Fatalf("#ifeq/#ifneq requires two comma-separated arguments")
	}
	ea, err := h.Expand(a)
	if err != nil {
		return err
	}
	eb, err := h.Expand(b)
	if err != nil {
		return err
	}
	eq := strings.TrimSpace(ea) == strings.TrimSpace(eb)
	if negate {
		eq = !eq
	}
	return h.PushIf(eq)
}

func truthy(v eval.Value) bool {
	if v.IsNum {
		return v.Num != 0
	}
	s := strings.TrimSpace(v.Text)
	return s != "" && s != "0"
}

// splitTwoArgs splits raw on the first top-level comma (one not nested
// inside parentheses), trimming surrounding blanks from each half.
func splitTwoArgs(raw string) (a, b string, ok bool) {
	depth := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+1:]), true
			}
		}
	}
	return "", "", false
}

// substituteDefined rewrites every `defined(NAME)` or `defined NAME`
// occurrence in text to "1" or "0" before the rest of text is handed to
// the general macro-expansion pass. spec.md §4.4 describes `defined` as
// a phantom macro recognized only while expanding #if/#eval argument
// text; resolving it here, ahead of Expand, keeps internal/eval itself
// free of any notion of identifiers or a macro table.
func substituteDefined(macros *macro.Table, text string) string {
	var out strings.Builder
	i := 0
	for i < len(text) {
		if strings.HasPrefix(text[i:], "defined") && wordBoundaryBefore(text, i) {
			j := i + len("defined")
			k := j
			for k < len(text) && (text[k] == ' ' || text[k] == '\t') {
				k++
			}
			hasParen := k < len(text) && text[k] == '('
			if hasParen {
				k++
				for k < len(text) && (text[k] == ' ' || text[k] == '\t') {
					k++
				}
			}
			nameStart := k
			for k < len(text) && isIdentByte(text[k]) {
				k++
			}
			name := text[nameStart:k]
			if name != "" {
				m := k
				if hasParen {
					for m < len(text) && (text[m] == ' ' || text[m] == '\t') {
						m++
					}
					if m >= len(text) || text[m] != ')' {
						out.WriteByte(text[i])
						i++
						continue
					}
					m++
				}
				if macros.Defined(name) {
					out.WriteByte('1')
				} else {
					out.WriteByte('0')
				}
				i = m
				continue
			}
		}
		out.WriteByte(text[i])
		i++
	}
	return out.String()
}

func wordBoundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	return !isIdentByte(text[i-1])
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
