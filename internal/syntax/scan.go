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

package syntax

import "github.com/gpp-go/gpp/internal/charset"

// ClassSets bundles the three charsets a Spec maintains (spec.md §3):
// operator, extended-operator (adds grouping characters) and identifier.
// \i, \o and \O patterns are resolved against these at match time rather
// than baked into the Pattern, so a single compiled Pattern stays valid
// across a `#mode charset` change.
type ClassSets struct {
	Op    charset.Set
	ExtOp charset.Set
	ID    charset.Set
}

func byteAt(input []byte, pos int) (byte, bool) {
	if pos < 0 || pos >= len(input) {
		return 0, false
	}
	return input[pos], true
}

// MatchSequence attempts to match pat against input starting at *pos. On
// success it advances *pos past the match and returns true; on failure *pos
// is left unchanged.
func MatchSequence(pat Pattern, input []byte, pos *int, cs *ClassSets) bool {
	p := *pos
	if matchFrom(pat, input, &p, cs) {
		*pos = p
		return true
	}
	return false
}

func matchFrom(pat Pattern, input []byte, pos *int, cs *ClassSets) bool {
	for _, el := range pat {
		if el.literal {
			b, ok := byteAt(input, *pos)
			if !ok || b != el.lit {
				return false
			}
			*pos++
			continue
		}
		if el.kind.variable() {
			count := 0
			for {
				b, ok := byteAt(input, *pos)
				if !ok {
					break
				}
				member := el.kind.memberOf(b, cs)
				if el.negated {
					member = !member
				}
				if !member {
					break
				}
				*pos++
				count++
			}
			if count < el.kind.minRepeat() {
				return false
			}
			continue
		}
		b, ok := byteAt(input, *pos)
		if !ok {
			return false
		}
		member := el.kind.memberOf(b, cs)
		if el.negated {
			member = !member
		}
		if !member {
			return false
		}
		*pos++
	}
	return true
}

// MatchStartSequence is like MatchSequence, but the pattern's first element
// may additionally test the character immediately preceding *pos instead of
// the character at *pos. This lets a start-of-line-sensitive mStart/mEnd
// (e.g. one whose first class is \n) match at the beginning of a physical
// line without having to re-consume the newline that got it there (spec.md
// §3's "buf[0] sentinel \n" invariant plus this lookback rule is what makes
// every start sequence uniformly testable from position 1 onward).
func MatchStartSequence(pat Pattern, input []byte, pos *int, cs *ClassSets) bool {
	if len(pat) == 0 {
		return true
	}
	first := pat[0]
	if !first.kind.variable() {
		if prev, ok := byteAt(input, *pos-1); ok {
			var member bool
			if first.literal {
				member = prev == first.lit
			} else {
				member = first.kind.memberOf(prev, cs)
				if first.negated {
					member = !member
				}
			}
			if member {
				p := *pos
				if matchFrom(pat[1:], input, &p, cs) {
					*pos = p
					return true
				}
			}
		}
	}
	return MatchSequence(pat, input, pos, cs)
}

// MatchEndSequence matches an end-delimiter pattern, with two special-cased
// allowances used by comment/string termination (spec.md §4.1):
//
//   - End of input matches a pattern that is a single literal '\n' (comments
//     and strings that would otherwise run off the end of the file are
//     allowed to close at EOF rather than forcing a fatal "unterminated"
//     error purely because the file didn't end with a blank line; gpp.c's
//     boundary behavior for this is the literal newline terminator case,
//     not an open-ended EOF pass for every end pattern).
//   - When preserveLF is true and the last character actually consumed by
//     the match was whitespace, *pos is retreated by one so a terminating
//     line feed survives in the output stream instead of being swallowed
//     by the match.
func MatchEndSequence(pat Pattern, input []byte, pos *int, cs *ClassSets, preserveLF bool) bool {
	if *pos >= len(input) && len(pat) == 1 && pat[0].literal && pat[0].lit == '\n' {
		return true
	}
	p := *pos
	lastWasSpace := false
	before := p
	if !matchFrom(pat, input, &p, cs) {
		return false
	}
	if p > before {
		lastWasSpace = input[p-1] == ' ' || input[p-1] == '\t' || input[p-1] == '\n'
	}
	if preserveLF && lastWasSpace {
		p--
	}
	*pos = p
	return true
}

// IdentifierEnd returns the index just past the identifier beginning at
// start, per idSet; returns start if the character at start is not an
// identifier character.
func IdentifierEnd(input []byte, start int, idSet charset.Set) int {
	i := start
	for i < len(input) && idSet.Contains(input[i]) {
		i++
	}
	return i
}
