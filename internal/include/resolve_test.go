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

package include

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func fakeStat(existing ...string) func(string) bool {
	set := make(map[string]bool, len(existing))
	for _, p := range existing {
		set[filepath.Clean(p)] = true
	}
	return func(p string) bool { return set[filepath.Clean(p)] }
}

func TestResolveCurrentDirFirst(t *testing.T) {
	opts := Options{
		IncludeDirs: []string{"/usr/include"},
		Stat:        fakeStat("/src/foo.h", "/usr/include/foo.h"),
	}
	path, err := Resolve("foo.h", opts, "/src")
	require.NoError(t, err)
	require.Equal(t, "/src/foo.h", path)
}

func TestResolveFallsBackToIncludeDirs(t *testing.T) {
	opts := Options{
		IncludeDirs: []string{"/usr/include"},
		Stat:        fakeStat("/usr/include/foo.h"),
	}
	path, err := Resolve("foo.h", opts, "/src")
	require.NoError(t, err)
	require.Equal(t, "/usr/include/foo.h", path)
}

func TestResolveCurDirLast(t *testing.T) {
	opts := Options{
		IncludeDirs:       []string{"/usr/include"},
		CurDirIncludeLast: true,
		Stat:              fakeStat("/src/foo.h", "/usr/include/foo.h"),
	}
	path, err := Resolve("foo.h", opts, "/src")
	require.NoError(t, err)
	require.Equal(t, "/usr/include/foo.h", path)
}

func TestResolveNoCurIncludeSkipsCurrentDir(t *testing.T) {
	opts := Options{
		NoCurInclude: true,
		Stat:         fakeStat("/src/foo.h"),
	}
	_, err := Resolve("foo.h", opts, "/src")
	require.Error(t, err)
}

func TestResolveAbsolute(t *testing.T) {
	opts := Options{Stat: fakeStat("/abs/foo.h")}
	path, err := Resolve("/abs/foo.h", opts, "/src")
	require.NoError(t, err)
	require.Equal(t, "/abs/foo.h", path)
}

func TestAutoSwitchPreset(t *testing.T) {
	require.True(t, AutoSwitchPreset("foo.h"))
	require.True(t, AutoSwitchPreset("foo.c"))
	require.False(t, AutoSwitchPreset("foo.tex"))
}
