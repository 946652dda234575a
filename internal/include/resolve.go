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

// Package include implements #include/#sinclude path resolution (spec.md
// §4.7) and the --includemarker line-tracking format (§6).
package include

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options bundles the search-path configuration #4.7 needs, independent
// of internal/config's CLI-flag-shaped Config so this package has no
// import-cycle risk and stays trivially unit-testable.
type Options struct {
	IncludeDirs       []string
	NoCurInclude      bool
	CurDirIncludeLast bool
	// Stat reports whether path names an existing, readable file. Tests
	// substitute a fake; production callers pass a thin os.Stat wrapper.
	Stat func(path string) bool
}

func isAbsolute(name string) bool {
	if strings.HasPrefix(name, "/") {
		return true
	}
	if runtime.GOOS == "windows" && len(name) >= 2 && name[1] == ':' {
		return true
	}
	return false
}

// Resolve searches for name per spec.md §4.7's four-step order relative
// to currentDir (the directory containing the including file), returning
// the resolved path. include directories may be doublestar glob roots
// (e.g. "vendor/**"); Resolve expands each to its matching directories
// before testing name within them, in lexical match order.
func Resolve(name string, opts Options, currentDir string) (string, error) {
	if isAbsolute(name) {
		if opts.Stat(name) {
			return name, nil
		}
		return "", fmt.Errorf("include: %s: not found", name)
	}

	tryDirs := func(dirs []string) (string, bool) {
		for _, dir := range dirs {
			for _, root := range expandGlobRoot(dir) {
				candidate := filepath.Join(root, name)
				if opts.Stat(candidate) {
					return candidate, true
				}
			}
		}
		return "", false
	}

	if !opts.NoCurInclude && !opts.CurDirIncludeLast {
		if p, ok := tryDirs([]string{currentDir}); ok {
			return p, nil
		}
	}

	if p, ok := tryDirs(opts.IncludeDirs); ok {
		return p, nil
	}

	if opts.CurDirIncludeLast {
		if p, ok := tryDirs([]string{currentDir}); ok {
			return p, nil
		}
	}

	return "", fmt.Errorf("include: %s: not found", name)
}

// expandGlobRoot expands a doublestar-glob include directory (e.g.
// "vendor/**") into the set of directories it matches; a plain directory
// with no glob metacharacters is returned unchanged.
func expandGlobRoot(dir string) []string {
	if !strings.ContainsAny(dir, "*?[") {
		return []string{dir}
	}
	matches, err := doublestar.FilepathGlob(dir)
	if err != nil || len(matches) == 0 {
		return nil
	}
	return matches
}

// AutoSwitchPreset reports whether name's extension should trigger the
// -m auto-switch-to-C behavior (spec.md §4.7).
func AutoSwitchPreset(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".h" || ext == ".c"
}
