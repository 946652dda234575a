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

package macro

import (
	"strings"

	"github.com/gpp-go/gpp/internal/charset"
	"github.com/gpp-go/gpp/internal/syntax"
)

// Expander pre-expands a macro call's actual argument text (call-by-value,
// spec.md §4.4) using spec as the active delimiter set, returning the fully
// expanded result.
type Expander func(text string, spec *syntax.Spec) (string, error)

// Call is a successfully recognized macro invocation: where its consumed
// span of the input ends (End, an offset into the scanned buffer) and the
// already-expanded actual arguments (Args[0] unused, Args[1] is #1, etc).
type Call struct {
	Macro     *Macro
	End       int // position just past the consumed input
	Args      []string
	LongForm  bool
	NamedArgs map[string]string
}

// SplitArgs walks raw, splitting on sep at group depth 0 and stopping at
// end, honoring stackChars/unstackChars group-depth tracking (spec.md
// §4.4 "Arguments are delimited by tracking a group depth"). It returns
// the argument texts and the position just past the matched end pattern,
// or ok=false if end was never found before raw was exhausted.
//
// Exported so internal/engine can reuse the identical splitting
// algorithm for Meta-mode directive argument lists, which share the
// same group-depth-aware delimiter model as User-mode macro calls.
func SplitArgs(raw []byte, pos int, sep, end syntax.Pattern, cs *syntax.ClassSets, stackChars, unstackChars string) (args []string, newPos int, ok bool) {
	depth := 0
	argStart := pos
	i := pos
	for i <= len(raw) {
		if depth == 0 {
			p := i
			if syntax.MatchSequence(end, raw, &p, cs) {
				args = append(args, string(raw[argStart:i]))
				return args, p, true
			}
			p = i
			if len(sep) > 0 && syntax.MatchSequence(sep, raw, &p, cs) {
				args = append(args, string(raw[argStart:i]))
				argStart = p
				i = p
				continue
			}
		}
		if i >= len(raw) {
			break
		}
		b := raw[i]
		if strings.IndexByte(stackChars, b) >= 0 {
			depth++
		} else if strings.IndexByte(unstackChars, b) >= 0 {
			depth--
		}
		i++
	}
	return nil, pos, false
}

// SplicePossibleUser attempts to recognize a user-macro call for m
// starting at idstart, where input[idstart:] begins immediately after the
// identifier m.Name was already matched (so only mEnd / long-form
// arguments remain to test). input must carry the mode's quote/comment
// semantics already applied by the caller for determining identifier
// boundaries; this function only handles the post-identifier delimiter
// matching described in spec.md §4.4.
//
// expand pre-expands each actual argument's text before binding, per the
// call-by-value rule.
func SplicePossibleUser(m *Macro, spec *syntax.Spec, input []byte, idstart int, cs *syntax.ClassSets, expand Expander) (*Call, error) {
	mode := &spec.User

	// Short form: mEnd immediately (no argument list). An empty mEnd (the
	// common case: Generic/C/TeX calls need no closing token for a
	// bare, argument-less reference) matches trivially.
	shortEndPos := idstart
	hasShort := syntax.MatchSequence(mode.MacroEnd, input, &shortEndPos, cs)

	// Long form: mArgS (arg mArgSep arg)* mArgE.
	longStart := idstart
	hasLong := !mode.ArgStart.Empty() && syntax.MatchSequence(mode.ArgStart, input, &longStart, cs)

	// "Both forms may coexist; when both match, the long form is
	// preferred" (spec.md §4.4).
	if hasLong {
		rawArgs, end, ok := SplitArgs(input, longStart, mode.ArgSep, mode.ArgEnd, cs, mode.StackChars, mode.UnstackChars)
		if ok {
			expanded := make([]string, len(rawArgs))
			for i, raw := range rawArgs {
				v, err := expand(raw, spec)
				if err != nil {
					return nil, err
				}
				expanded[i] = v
			}
			call := &Call{Macro: m, End: end, LongForm: true}
			call.Args = append([]string{""}, expanded...)
			if len(m.NamedArgs) > 0 {
				call.NamedArgs = make(map[string]string, len(m.NamedArgs))
				for i, name := range m.NamedArgs {
					if i+1 < len(call.Args) {
						call.NamedArgs[name] = call.Args[i+1]
					}
				}
			}
			return call, nil
		}
	}

	if hasShort {
		return &Call{Macro: m, End: shortEndPos, LongForm: false}, nil
	}

	return nil, nil
}

// ExpandBody substitutes every mArgRef-prefixed digit 1..9 in body with
// the corresponding already-expanded actual argument (spec.md §4.4
// "Positional arg reference"). Named parameters are not handled here;
// BindNamedArgs substitutes those.
func ExpandBody(body string, argRef syntax.Pattern, args []string, cs *syntax.ClassSets) string {
	if len(args) == 0 || argRef.Empty() {
		return body
	}
	var out strings.Builder
	raw := []byte(body)
	for i := 0; i < len(raw); {
		pos := i
		if syntax.MatchSequence(argRef, raw, &pos, cs) && pos < len(raw) && raw[pos] >= '1' && raw[pos] <= '9' {
			n := int(raw[pos] - '0')
			pos++
			if n < len(args) {
				out.WriteString(args[n])
			}
			i = pos
			continue
		}
		out.WriteByte(raw[i])
		i++
	}
	return out.String()
}

// BindNamedArgs replaces every maximal identifier run in body that is a
// key of named with its bound value, using idSet to find identifier
// boundaries so a name is never matched as a substring of a longer
// identifier (spec.md §4.4 "named-parameter form"). A named parameter is
// substituted textually, like the positional #1.. form, not looked up
// dynamically, so a macro body can shadow an outer-scope global macro of
// the same name with its own parameter.
func BindNamedArgs(body string, named map[string]string, idSet charset.Set) string {
	if len(named) == 0 {
		return body
	}
	var out strings.Builder
	raw := []byte(body)
	for i := 0; i < len(raw); {
		if idSet.Contains(raw[i]) {
			j := i
			for j < len(raw) && idSet.Contains(raw[j]) {
				j++
			}
			word := string(raw[i:j])
			if v, ok := named[word]; ok {
				out.WriteString(v)
			} else {
				out.WriteString(word)
			}
			i = j
			continue
		}
		out.WriteByte(raw[i])
		i++
	}
	return out.String()
}

// Alias constructs the fresh invocation text used by the aliasing special
// case: a macro whose body contains no positional arg references, called
// in long form under a Spec whose mEnd is empty, re-invokes its own body
// as if it were itself a macro name applied to the same actual arguments
// (spec.md §4.4 "Aliasing special case"), enabling one macro's expansion
// to select and call another by name. Nothing in this module calls Alias:
// the engine expands a long-form call to the macro's own body only.
func Alias(body string, mode *syntax.Mode, rawArgs []string) string {
	var b strings.Builder
	b.WriteString(body)
	b.WriteString(patternLiteral(mode.ArgStart))
	for i, a := range rawArgs {
		if i > 0 {
			b.WriteString(patternLiteral(mode.ArgSep))
		}
		b.WriteString(a)
	}
	b.WriteString(patternLiteral(mode.ArgEnd))
	return b.String()
}

// patternLiteral renders a delimiter pattern back to its most literal
// surface form, used only when splicing synthetic text for the aliasing
// special case (real delimiter patterns used there are always the
// constant literal strings a user mode declares, e.g. "(", ",", ")").
func patternLiteral(pat syntax.Pattern) string {
	var b strings.Builder
	for _, lit := range pat.Literals() {
		b.WriteByte(lit)
	}
	return b.String()
}
