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

package engine

import (
	"bytes"
	"io"
)

// OutputContext emits either to a single writer, to a writer mirrored to a
// second one (the `-O` CLI flag's stdout-mirroring behavior), or captures
// into a growable in-memory buffer, used while an argument or a
// `#mode`-recursed comment interior is being expanded (spec.md §3).
type OutputContext struct {
	w      io.Writer
	mirror io.Writer
	buf    *bytes.Buffer
	crlf   bool
}

// NewFileOutput wraps w as a plain output sink.
func NewFileOutput(w io.Writer, crlf bool) *OutputContext {
	return &OutputContext{w: w, crlf: crlf}
}

// NewMirroredOutput wraps w, duplicating every write to mirror as well (the
// `-O file` flag, which writes to file and to stdout).
func NewMirroredOutput(w, mirror io.Writer, crlf bool) *OutputContext {
	return &OutputContext{w: w, mirror: mirror, crlf: crlf}
}

// NewBufferOutput returns a buffer-backed OutputContext used to capture a
// recursively-expanded macro argument or comment interior.
func NewBufferOutput() *OutputContext {
	return &OutputContext{buf: &bytes.Buffer{}}
}

// String returns the captured text of a buffer-backed OutputContext. It
// panics if called on a non-buffer-backed context, which would indicate a
// programming error (capturing output that was never meant to be captured).
func (o *OutputContext) String() string {
	if o.buf == nil {
		panic("engine: String called on a non-buffer OutputContext")
	}
	return o.buf.String()
}

// WriteByte emits a single byte, translating '\n' to "\r\n" when CRLF mode
// is enabled on a file-backed sink (spec.md §3 "Output context").
func (o *OutputContext) WriteByte(b byte) {
	if o.buf != nil {
		o.buf.WriteByte(b)
		return
	}
	if b == '\n' && o.crlf {
		o.w.Write([]byte{'\r', '\n'})
		if o.mirror != nil {
			o.mirror.Write([]byte{'\r', '\n'})
		}
		return
	}
	o.w.Write([]byte{b})
	if o.mirror != nil {
		o.mirror.Write([]byte{b})
	}
}

// WriteString emits s byte by byte, applying the same CRLF translation as
// WriteByte.
func (o *OutputContext) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		o.WriteByte(s[i])
	}
}
