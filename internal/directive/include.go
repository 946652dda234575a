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

package directive

import "strings"

// handleInclude implements both #include (fatal if name can't be
// resolved) and #sinclude (silently skipped instead, spec.md §4.7
// "silent include").
func handleInclude(h Host, args []string, silent bool) (string, error) {
	expanded, err := h.Expand(rest(args, 0))
	if err != nil {
		return "", err
	}
	name := strings.Trim(strings.TrimSpace(expanded), "\"<>")
	if name == "" {
		return "", h.Fatalf("#include requires a file name")
	}
	path, err := h.ResolveInclude(name)
	if err != nil {
		if silent {
			return "", nil
		}
		return "", h.Fatalf("#include: %v", err)
	}
	return h.ProcessInclude(path)
}
