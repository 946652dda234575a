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
)

func TestTableDefineReplacesInPlace(t *testing.T) {
	tbl := NewTable()
	tbl.Define(&Macro{Name: "FOO", Body: "1"})
	tbl.Define(&Macro{Name: "BAR", Body: "2"})
	tbl.Define(&Macro{Name: "FOO", Body: "3"})

	require.Equal(t, 2, tbl.Len())
	m, ok := tbl.Find("FOO")
	require.True(t, ok)
	require.Equal(t, "3", m.Body)
	require.Equal(t, []string{"FOO", "BAR"}, names(tbl))
}

func TestTableUndef(t *testing.T) {
	tbl := NewTable()
	tbl.Define(&Macro{Name: "FOO"})
	tbl.Define(&Macro{Name: "BAR"})
	tbl.Undef("FOO")

	require.False(t, tbl.Defined("FOO"))
	require.True(t, tbl.Defined("BAR"))
	require.Equal(t, 1, tbl.Len())
}

func TestTableUndefUnknownIsNoop(t *testing.T) {
	tbl := NewTable()
	tbl.Undef("NOPE")
	require.Equal(t, 0, tbl.Len())
}

func names(tbl *Table) []string {
	var out []string
	for _, m := range tbl.All() {
		out = append(out, m.Name)
	}
	return out
}
