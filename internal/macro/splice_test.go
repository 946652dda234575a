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
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/gpp-go/gpp/internal/syntax"
)

func identityExpand(s string, _ *syntax.Spec) (string, error) { return s, nil }

func TestSplicePossibleUserShortForm(t *testing.T) {
	spec := syntax.Generic()
	m := &Macro{Name: "FOO", Body: "bar"}
	input := []byte("FOO rest")
	call, err := SplicePossibleUser(m, spec, input, 3, &syntax.ClassSets{Op: spec.Classes.Op, ExtOp: spec.Classes.ExtOp, ID: spec.Classes.ID}, identityExpand)
	require.NoError(t, err)
	require.NotNil(t, call)
	require.False(t, call.LongForm)
}

func TestSplicePossibleUserLongForm(t *testing.T) {
	spec := syntax.Generic()
	m := &Macro{Name: "ADD", Body: "#1+#2", NamedArgs: []string{"a", "b"}, HasArgList: true}
	input := []byte("ADD(1,2) rest")
	call, err := SplicePossibleUser(m, spec, input, 3, &spec.Classes, identityExpand)
	require.NoError(t, err)
	require.NotNil(t, call)
	require.True(t, call.LongForm)
	require.Equal(t, []string{"", "1", "2"}, call.Args)
	require.Equal(t, "1", call.NamedArgs["a"])
	require.Equal(t, "2", call.NamedArgs["b"])
}

func TestSplitArgsRespectsGroupDepth(t *testing.T) {
	spec := syntax.Generic()
	mode := spec.User
	input := []byte("(1,2),3)")
	args, pos, ok := SplitArgs(input, 0, mode.ArgSep, mode.ArgEnd, &spec.Classes, mode.StackChars, mode.UnstackChars)
	require.True(t, ok)
	require.Equal(t, []string{"(1,2)", "3"}, args)
	require.Equal(t, len(input), pos)
}

func TestExpandBodySubstitutesPositionalRefs(t *testing.T) {
	spec := syntax.Generic()
	out := ExpandBody("#1 plus #2", spec.User.ArgRef, []string{"", "1", "2"}, &spec.Classes)
	require.Equal(t, "1 plus 2", out)
}
