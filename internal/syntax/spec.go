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

// RuleFlag is a bitmask of per-ambience behaviors for a CommentRule
// (spec.md §3).
type RuleFlag int

const (
	OutputText  RuleFlag = 1 << iota // emit interior text
	OutputDelim                      // emit start/end delimiters literally
	ParseMacros                      // recurse into the interior
	Ignore                           // rule does not apply in this ambience
)

// FlagString and FlagComment are the two common combinations: a string
// (delimiters and interior both pass through, macros are not parsed inside)
// and a comment (nothing is emitted).
const (
	FlagString  = OutputText | OutputDelim
	FlagComment = RuleFlag(0)
)

// Ambience is the lexical context a scan position is in, used to select
// which of a CommentRule's three flags applies.
type Ambience int

const (
	AmbienceMeta Ambience = iota
	AmbienceUser
	AmbienceText
)

// CommentRule describes one comment or string delimiter pair.
type CommentRule struct {
	Start, End Pattern
	Quote      byte // 0 if none: escapes the next byte while scanning for End
	Warn       byte // 0 if none: byte that triggers a warning if seen inside
	Flags      [3]RuleFlag // indexed by Ambience
}

// Clone deep-copies a CommentRule (Patterns are immutable, so this is a
// shallow struct copy, but it is named Clone to keep call sites symmetric
// with Spec.Clone, which does need a real deep copy of the slice it lives
// in).
func (c CommentRule) Clone() CommentRule { return c }

// Spec is the full tuple of active scanner parameters: both Modes, the
// comment/string rule list, the preserve-linefeed flag, and the three
// charsets (spec.md §3).
type Spec struct {
	User, Meta Mode
	Comments   []CommentRule
	PreserveLF bool
	Classes    ClassSets
}

// Clone performs a deep copy of s, in particular of the Comments slice, so
// that each macro definition and each `#mode save`d spec owns an
// independent copy it can mutate (add/remove comment rules, change
// PreserveLF) without disturbing the spec any other macro or stack frame
// captured (spec.md §3 "Ownership").
func (s *Spec) Clone() *Spec {
	clone := *s
	clone.Comments = make([]CommentRule, len(s.Comments))
	copy(clone.Comments, s.Comments)
	return &clone
}

// AddComment appends a new comment/string rule. A later AddComment with the
// same Start does not replace an earlier one: #mode's "add" sub-commands are
// additive, matching gpp.c's add_comment; removal is explicit via
// RemoveComment (#mode nocomment/nostring).
func (s *Spec) AddComment(rule CommentRule) {
	s.Comments = append(s.Comments, rule)
}

// RemoveComment deletes the first rule whose Start matches start, reporting
// whether one was found.
func (s *Spec) RemoveComment(start Pattern) bool {
	for i, r := range s.Comments {
		if patternEqual(r.Start, start) {
			s.Comments = append(s.Comments[:i], s.Comments[i+1:]...)
			return true
		}
	}
	return false
}

func patternEqual(a, b Pattern) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Stack is a pushdown store of Specs (spec.md §3 "Specs form a stack reached
// via stack_next"). It always has at least one element after NewStack.
type Stack struct {
	frames []*Spec
}

// NewStack returns a Stack with a single initial frame.
func NewStack(initial *Spec) *Stack {
	return &Stack{frames: []*Spec{initial}}
}

// Top returns the active Spec.
func (s *Stack) Top() *Spec {
	return s.frames[len(s.frames)-1]
}

// Push clones the active Spec and pushes the clone, making it the new
// active Spec (`#mode save`/`#mode push`).
func (s *Stack) Push() *Spec {
	clone := s.Top().Clone()
	s.frames = append(s.frames, clone)
	return clone
}

// PushSpec pushes an already-constructed Spec (used for `#include`, which
// pushes a fresh context's spec rather than cloning the current one, and
// for entering a comment interior whose ambience briefly needs a distinct
// spec).
func (s *Stack) PushSpec(spec *Spec) {
	s.frames = append(s.frames, spec)
}

// Pop removes the active Spec (`#mode restore`/`#mode pop`, or returning
// from an `#include`). Popping the last remaining frame is a programming
// error (spec.md invariant: the stack returns to depth 1 at program end,
// never 0 while running) and panics rather than silently leaving the stack
// empty.
func (s *Stack) Pop() {
	if len(s.frames) <= 1 {
		panic("syntax: spec stack underflow")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth returns the current stack depth (spec.md invariant 3).
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Default charsets, matching gpp.c's DEFAULT_OP_STRING / PROLOG_OP_STRING /
// DEFAULT_OP_PLUS / DEFAULT_ID_STRING. The "default class" Open Question in
// spec.md §9 is resolved by lifting these literally from the original
// rather than guessing.
func defaultOpSet() charset.Set {
	s, _ := charset.Parse(`+\-*/\\^<>=` + "`" + `~:.?@#&!%|`)
	return s
}

func prologOpSet() charset.Set {
	s, _ := charset.Parse(`+\-*/\\^<>=` + "`" + `~:.?@#&`)
	return s
}

func defaultExtOpSet() charset.Set {
	s, _ := charset.Parse(`()\[\]{}`)
	return s
}

func defaultIDSet() charset.Set {
	s, _ := charset.Parse("a-zA-Z0-9_")
	return s
}
