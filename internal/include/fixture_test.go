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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// writeArchive materializes a txtar archive's files under dir, creating
// any needed subdirectories, and returns dir for convenience.
func writeArchive(t *testing.T, dir string, data []byte) string {
	t.Helper()
	a := txtar.Parse(data)
	for _, f := range a.Files {
		path := filepath.Join(dir, f.Name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, f.Data, 0o644))
	}
	return dir
}

// TestResolveMultiFileProjectSearchOrder lays out a small project tree
// from a single txtar fixture and confirms a file present in both the
// including file's own directory and a -I root resolves to the local
// copy first, matching the default (non curdirinclast) search order.
func TestResolveMultiFileProjectSearchOrder(t *testing.T) {
	root := writeArchive(t, t.TempDir(), []byte(`
-- src/main.c --
#include "shared.h"
-- src/shared.h --
// local shared.h
-- vendor/shared.h --
// vendor shared.h
-- vendor/vendor_only.h --
// only reachable via -I
`))

	opts := Options{
		IncludeDirs: []string{filepath.Join(root, "vendor")},
		Stat:        func(p string) bool { _, err := os.Stat(p); return err == nil },
	}

	path, err := Resolve("shared.h", opts, filepath.Join(root, "src"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "src", "shared.h"), path)

	path, err = Resolve("vendor_only.h", opts, filepath.Join(root, "src"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "vendor", "vendor_only.h"), path)
}

// TestResolveMultiFileProjectCurDirLast flips CurDirIncludeLast and
// confirms the same fixture now resolves the vendor copy first.
func TestResolveMultiFileProjectCurDirLast(t *testing.T) {
	root := writeArchive(t, t.TempDir(), []byte(`
-- src/shared.h --
// local shared.h
-- vendor/shared.h --
// vendor shared.h
`))

	opts := Options{
		IncludeDirs:       []string{filepath.Join(root, "vendor")},
		CurDirIncludeLast: true,
		Stat:              func(p string) bool { _, err := os.Stat(p); return err == nil },
	}

	path, err := Resolve("shared.h", opts, filepath.Join(root, "src"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "vendor", "shared.h"), path)
}
