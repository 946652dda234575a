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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/gpp-go/gpp/internal/config"
	"github.com/gpp-go/gpp/internal/syntax"
)

// writeArchive materializes a txtar archive's files under dir.
func writeArchive(t *testing.T, dir string, data []byte) {
	t.Helper()
	a := txtar.Parse(data)
	for _, f := range a.Files {
		path := filepath.Join(dir, f.Name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, f.Data, 0o644))
	}
}

// TestProcessContextNestedIncludesAcrossDirs lays out a small multi-file
// project from a single txtar fixture: the main file includes a header
// from its own directory, which in turn includes a second header only
// reachable via an -I search root. Both splices must land in order.
func TestProcessContextNestedIncludesAcrossDirs(t *testing.T) {
	root := t.TempDir()
	writeArchive(t, root, []byte(`
-- src/main.txt --
top
#include "local.h"
bottom
-- src/local.h --
local-before
#include "vendor.h"
local-after
-- vendor/vendor.h --
vendor-content
`))

	cfg := config.Default()
	cfg.IncludeDirs = []string{filepath.Join(root, "vendor")}
	e := New(syntax.Generic(), cfg)
	out := NewBufferOutput()

	f, err := os.Open(filepath.Join(root, "src", "main.txt"))
	require.NoError(t, err)
	defer f.Close()

	ctx := NewFileContext(f, filepath.Join(root, "src", "main.txt"), out)
	require.NoError(t, e.ProcessContext(ctx))

	require.Equal(t, "top\nlocal-before\nvendor-content\nlocal-after\nbottom\n", out.String())
}
