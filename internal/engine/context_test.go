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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInputContextGetCharGrowsBuffer(t *testing.T) {
	ctx := NewStringContext("abc", "<test>", NewBufferOutput())
	require.Equal(t, byte('a'), ctx.GetChar(1))
	require.Equal(t, byte('b'), ctx.GetChar(2))
	require.Equal(t, byte('c'), ctx.GetChar(3))
	require.Equal(t, byte(0), ctx.GetChar(4))
}

func TestInputContextEOFOnlyOnceFullyConsumed(t *testing.T) {
	ctx := NewStringContext("a", "<test>", NewBufferOutput())
	require.False(t, ctx.EOF())
	ctx.GetChar(1)
	// Force a read attempt past the last byte so eof actually latches;
	// GetChar(1) alone only filled the buffer up to the requested
	// position without probing further.
	ctx.GetChar(2)
	ctx.ShiftIn(2)
	require.True(t, ctx.EOF())
}

func TestInputContextShiftInCountsNewlines(t *testing.T) {
	ctx := NewStringContext("a\nb\nc", "<test>", NewBufferOutput())
	ctx.EnsureBuffered()
	require.Equal(t, 1, ctx.Line())
	ctx.ShiftIn(4) // discard "a\nb" (buf[1:4])
	require.Equal(t, 2, ctx.Line())
}

func TestInputContextShiftInKeepsSentinel(t *testing.T) {
	ctx := NewStringContext("abc", "<test>", NewBufferOutput())
	ctx.EnsureBuffered()
	ctx.ShiftIn(2)
	require.Equal(t, byte('\n'), ctx.Buf()[0])
	require.Equal(t, byte('b'), ctx.Buf()[1])
}

func TestInputContextLocationFormat(t *testing.T) {
	ctx := NewStringContext("x", "foo.c", NewBufferOutput())
	require.Equal(t, "foo.c:1", ctx.Location())
	ctx.SetLine(42)
	ctx.SetFilename("bar.c")
	require.Equal(t, "bar.c:42", ctx.Location())
}

func TestInputContextEnsureBufferedReadsToEOF(t *testing.T) {
	ctx := NewStringContext("abc\ndef", "<test>", NewBufferOutput())
	buf := ctx.EnsureBuffered()
	require.Equal(t, "\nabc\ndef", string(buf))
}

func TestInputContextDropsCarriageReturn(t *testing.T) {
	ctx := NewStringContext("a\r\nb", "<test>", NewBufferOutput())
	buf := ctx.EnsureBuffered()
	require.Equal(t, "\na\nb", string(buf))
}
