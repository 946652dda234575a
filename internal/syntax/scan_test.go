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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testClasses(t *testing.T) *ClassSets {
	t.Helper()
	cs := baseClassSets()
	return &cs
}

func TestMatchSequenceLiteral(t *testing.T) {
	pat := MustParsePattern("#define")
	input := []byte("#define X\n")
	pos := 0
	require.True(t, MatchSequence(pat, input, &pos, testClasses(t)))
	require.Equal(t, len("#define"), pos)
}

func TestMatchSequenceFailureLeavesPos(t *testing.T) {
	pat := MustParsePattern("#define")
	input := []byte("#undef X\n")
	pos := 0
	require.False(t, MatchSequence(pat, input, &pos, testClasses(t)))
	require.Equal(t, 0, pos)
}

func TestMatchSequenceVariableWhitespace(t *testing.T) {
	pat := MustParsePattern("#\\bdefine")
	input := []byte("#   define")
	pos := 0
	require.True(t, MatchSequence(pat, input, &pos, testClasses(t)))
	require.Equal(t, len(input), pos)
}

func TestMatchSequenceVariableWhitespaceRequiresOne(t *testing.T) {
	pat := MustParsePattern("#\\bdefine")
	input := []byte("#define")
	pos := 0
	require.False(t, MatchSequence(pat, input, &pos, testClasses(t)))
}

func TestMatchSequenceZeroOrMore(t *testing.T) {
	pat := MustParsePattern("#\\wdefine")
	input := []byte("#define")
	pos := 0
	require.True(t, MatchSequence(pat, input, &pos, testClasses(t)))
}

func TestMatchEndSequenceAtEOF(t *testing.T) {
	pat := MustParsePattern("\n")
	input := []byte("unterminated comment body")
	pos := len(input)
	require.True(t, MatchEndSequence(pat, input, &pos, testClasses(t), false))
}

func TestIdentifierEnd(t *testing.T) {
	cs := testClasses(t)
	input := []byte("foo_bar123 rest")
	end := IdentifierEnd(input, 0, cs.ID)
	require.Equal(t, "foo_bar123", string(input[:end]))
}

func TestMatchStartSequenceLookback(t *testing.T) {
	// cMetaMode's MacroStart is "\n#\x02" - newline, '#', zero-or-more ws.
	pat := cMetaMode.MacroStart
	input := []byte("\n#  define")
	pos := 1 // positioned right after the sentinel/consumed newline
	require.True(t, MatchStartSequence(pat, input, &pos, testClasses(t)))
}
