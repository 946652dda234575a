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

// Package engine implements the rewindable input/output contexts, the
// top-level ParseText/ProcessContext loop, and the Engine value that
// replaces the original tool's process-wide globals (spec.md §3, §4.8, §9
// "Global state").
package engine

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/gpp-go/gpp/internal/syntax"
)

// InputContext is a rewindable lookahead buffer over a file or an in-memory
// string, tracking line number and filename (spec.md §3). It carries no
// macro arguments: a macro's actuals are substituted into its body text
// before that text is scanned.
//
// buf[0] is always the sentinel '\n' prepended so every start-of-line
// sensitive mStart works uniformly from position 1 onward; see
// syntax.MatchStartSequence.
type InputContext struct {
	buf      []byte
	reader   *bufio.Reader
	lineno   int
	filename string
	eof      bool

	Out *OutputContext

	// Ambience selects which of a CommentRule's three Flags applies at
	// this scan position (spec.md §3). Every built-in preset and every
	// #mode comment/string addition gives all three ambience slots the
	// same flags, so this currently has no observable effect on built-in
	// behavior; it exists so a CommentRule carrying genuinely different
	// per-ambience flags (not reachable from any directive today) still
	// has somewhere correct to be read from.
	Ambience syntax.Ambience
}

// NewFileContext creates an input context that reads from r.
func NewFileContext(r io.Reader, filename string, out *OutputContext) *InputContext {
	return &InputContext{
		buf:      []byte{'\n'},
		reader:   bufio.NewReader(r),
		lineno:   1,
		filename: filename,
		Out:      out,
		Ambience: syntax.AmbienceText,
	}
}

// NewStringContext creates an input context over an in-memory string, used
// for macro-argument pre-expansion, comment-interior recursion, and
// defeval's definition-time expansion (spec.md §5 "recursion occurs in
// four places").
func NewStringContext(s string, filename string, out *OutputContext) *InputContext {
	return NewFileContext(bytes.NewReader([]byte(s)), filename, out)
}

// Filename returns the context's associated file name, or a synthetic name
// for in-memory contexts.
func (ic *InputContext) Filename() string { return ic.filename }

// Line returns the current 1-indexed line number (spec.md invariant 1).
func (ic *InputContext) Line() int { return ic.lineno }

// EOF reports whether the context has been fully consumed.
func (ic *InputContext) EOF() bool { return ic.eof && len(ic.buf) <= 1 }

// extendBuf grows buf by reading more bytes from the underlying reader,
// dropping '\r' bytes (spec.md §4.2). Newlines are counted into lineno
// later, by ShiftIn, as the bytes are consumed.
func (ic *InputContext) extendBuf(upto int) {
	for !ic.eof && len(ic.buf) <= upto {
		b, err := ic.reader.ReadByte()
		if err != nil {
			ic.eof = true
			break
		}
		if b == '\r' {
			continue
		}
		ic.buf = append(ic.buf, b)
	}
}

// GetChar returns the byte at pos, growing the buffer on demand. It returns
// 0 (the sentinel EOF byte) once the context is exhausted at that position.
func (ic *InputContext) GetChar(pos int) byte {
	ic.extendBuf(pos)
	if pos < 0 || pos >= len(ic.buf) {
		return 0
	}
	return ic.buf[pos]
}

// Buf returns the buffer contents available without blocking for more
// input; callers that need bytes beyond what's buffered should call
// GetChar first to force a read.
func (ic *InputContext) Buf() []byte { return ic.buf }

// EnsureBuffered reads the remainder of the underlying source into buf
// and returns it. Pattern matching (syntax.MatchSequence and friends)
// operates on a plain byte slice and has no way to ask for "more input"
// mid-match, which variable-width classes (\b, \w, \B, \W) need in
// order not to stop short just because the lookahead window hadn't been
// filled yet; forcing the full remaining input into memory up front is
// the simplest way to give every match the lookahead it needs.
func (ic *InputContext) EnsureBuffered() []byte {
	for !ic.eof {
		b, err := ic.reader.ReadByte()
		if err != nil {
			ic.eof = true
			break
		}
		if b == '\r' {
			continue
		}
		ic.buf = append(ic.buf, b)
	}
	return ic.buf
}

// ShiftIn discards the first l-1 bytes of the buffer, keeping position 0 as
// the sentinel '\n' (spec.md §4.2). Every newline shifted out of the
// window increments lineno; position 0's own sentinel newline does not
// correspond to an input character and is not counted.
func (ic *InputContext) ShiftIn(l int) {
	if l <= 1 {
		return
	}
	if l > len(ic.buf) {
		l = len(ic.buf)
	}
	for _, b := range ic.buf[1:l] {
		if b == '\n' {
			ic.lineno++
		}
	}
	rest := make([]byte, 0, len(ic.buf)-l+1)
	rest = append(rest, '\n')
	rest = append(rest, ic.buf[l:]...)
	ic.buf = rest
}

// Location formats the current file:line pair for diagnostics (spec.md §7).
func (ic *InputContext) Location() string {
	return fmt.Sprintf("%s:%d", ic.filename, ic.lineno)
}

// SetLine overrides the reported line number (#line).
func (ic *InputContext) SetLine(n int) { ic.lineno = n }

// SetFilename overrides the reported file name (#file).
func (ic *InputContext) SetFilename(s string) { ic.filename = s }
