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

// Package syntax implements the mode-parameterized scanner described by
// spec.md §3/§4.1-§4.3: delimiter patterns built from literal bytes and
// metacharacter classes, the Mode/Spec data model, and the primitives that
// match those patterns against a rewindable input buffer.
//
// Patterns are parsed into a token slice (Literal/Class) rather than kept as
// an in-band escape byte range, per the design note on metacharacter-encoded
// delimiter strings: arbitrary input bytes can never collide with a class
// code because classes live in a separate Go type, not a shared byte range.
package syntax

import "fmt"

// ClassKind identifies one of the metacharacter classes of spec.md §4.1.
type ClassKind byte

const (
	ClassSpaceTab1     ClassKind = iota // \b  one or more spaces/tabs
	ClassSpaceTab0                      // \w  zero or more spaces/tabs
	ClassBlank1                         // \B  one or more spaces/tabs/newlines
	ClassBlank0                         // \W  zero or more spaces/tabs/newlines
	ClassLetter                         // \a  a letter
	ClassLetterOrBlank                  // \A  a letter, space, tab, or newline
	ClassDigit                          // \#  a digit
	ClassIdent                         // \i  an identifier character
	ClassTab                           // \t  literal tab
	ClassNewline                       // \n  literal newline
	ClassOperator                      // \o  an operator
	ClassOperatorExt                   // \O  an operator or grouping char
)

// patternElem is one element of a parsed delimiter pattern.
type patternElem struct {
	literal  bool
	lit      byte
	kind     ClassKind
	negated  bool
}

// Pattern is a parsed delimiter-pattern string: a sequence of literal bytes
// and metacharacter classes.
type Pattern []patternElem

// Empty reports whether the pattern matches only the empty string (used to
// detect e.g. an empty mArgS/mArgE/mEnd, which macro.SplicePossibleUser and
// the aliasing special case of spec.md §4.4 both need to recognize).
func (p Pattern) Empty() bool { return len(p) == 0 }

// Literals renders a pattern built entirely of literal bytes back to its
// surface string, in declaration order. Non-literal class elements are
// skipped; callers use this only for delimiter patterns a user mode
// declares as plain constant strings (e.g. "(", ",", ")"), never for
// patterns containing variable-width classes.
func (p Pattern) Literals() []byte {
	out := make([]byte, 0, len(p))
	for _, el := range p {
		if el.literal {
			out = append(out, el.lit)
		}
	}
	return out
}

// classEscapes maps the two-character escapes accepted when building a
// Pattern from CLI-style mode strings (-U/-M flags, §6) to their class.
var classEscapes = map[byte]ClassKind{
	'b': ClassSpaceTab1,
	'w': ClassSpaceTab0,
	'B': ClassBlank1,
	'W': ClassBlank0,
	'a': ClassLetter,
	'A': ClassLetterOrBlank,
	'#': ClassDigit,
	'i': ClassIdent,
	't': ClassTab,
	'n': ClassNewline,
	'o': ClassOperator,
	'O': ClassOperatorExt,
}

// rawClassCodes maps the literal single-byte codes 0x01..0x0C used by the
// original encoding to their class, for patterns built directly from a byte
// buffer (e.g. a mode cloned from gpp.c-style initializer data) rather than
// from a human-typed -U/-M string.
var rawClassCodes = map[byte]ClassKind{
	0x01: ClassSpaceTab1,
	0x02: ClassSpaceTab0,
	0x03: ClassBlank1,
	0x04: ClassBlank0,
	0x05: ClassLetter,
	0x06: ClassLetterOrBlank,
	0x07: ClassDigit,
	0x08: ClassIdent,
	0x09: ClassTab,
	0x0A: ClassNewline,
	0x0B: ClassOperator,
	0x0C: ClassOperatorExt,
}

// ParsePattern parses a raw delimiter-pattern string into a Pattern. It
// accepts two spellings for a class, so that both CLI-provided (-U, -M,
// +c, +s) strings and patterns built programmatically from presets can share
// one parser:
//
//   - a backslash escape, e.g. `\b`, `\w`, `\a`, `\i`, `\o`, `\O` (the form a
//     user types on a command line)
//   - a literal control byte 0x01..0x0C (the form spec.md's §4.1 table
//     names directly)
//
// A class code with bit 0x80 set (or, in escape form, the escape letter
// uppercased beyond its normal case is not used for this - negation is only
// expressed via the raw 0x80 bit) denotes the negated class.
func ParsePattern(raw string) (Pattern, error) {
	var pat Pattern
	i := 0
	for i < len(raw) {
		c := raw[i]
		switch {
		case c == '\\' && i+1 < len(raw):
			esc := raw[i+1]
			kind, ok := classEscapes[esc]
			if !ok {
				pat = append(pat, patternElem{literal: true, lit: esc})
				i += 2
				continue
			}
			pat = append(pat, patternElem{kind: kind})
			i += 2
		case c >= 0x01 && c <= 0x0C:
			pat = append(pat, patternElem{kind: rawClassCodes[c]})
			i++
		case c&0x80 != 0 && (c&0x7F) >= 0x01 && (c&0x7F) <= 0x0C:
			kind, ok := rawClassCodes[c&0x7F]
			if !ok {
				return nil, fmt.Errorf("syntax: unknown negated class code 0x%02x", c)
			}
			pat = append(pat, patternElem{kind: kind, negated: true})
			i++
		default:
			pat = append(pat, patternElem{literal: true, lit: c})
			i++
		}
	}
	return pat, nil
}

// MustParsePattern is ParsePattern but panics on error; used only for the
// built-in presets in presets.go, where the input is a constant.
func MustParsePattern(raw string) Pattern {
	p, err := ParsePattern(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func (k ClassKind) variable() bool {
	return k == ClassSpaceTab1 || k == ClassSpaceTab0 || k == ClassBlank1 || k == ClassBlank0
}

// minRepeat is the minimum number of characters a variable-width class must
// consume to match ("1" classes require at least one).
func (k ClassKind) minRepeat() int {
	switch k {
	case ClassSpaceTab1, ClassBlank1:
		return 1
	default:
		return 0
	}
}

func (k ClassKind) memberOf(b byte, cs *ClassSets) bool {
	switch k {
	case ClassSpaceTab1, ClassSpaceTab0:
		return b == ' ' || b == '\t'
	case ClassBlank1, ClassBlank0:
		return b == ' ' || b == '\t' || b == '\n'
	case ClassLetter:
		return isLetter(b)
	case ClassLetterOrBlank:
		return isLetter(b) || b == ' ' || b == '\t' || b == '\n'
	case ClassDigit:
		return b >= '0' && b <= '9'
	case ClassIdent:
		return cs.ID.Contains(b)
	case ClassTab:
		return b == '\t'
	case ClassNewline:
		return b == '\n'
	case ClassOperator:
		return cs.Op.Contains(b)
	case ClassOperatorExt:
		return cs.Op.Contains(b) || cs.ExtOp.Contains(b)
	default:
		return false
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
