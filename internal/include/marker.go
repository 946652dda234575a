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
	"fmt"
	"strconv"
)

// MarkerFormat is a compiled --includemarker format string: the raw
// `?`/`%`-holed, `@`-escaped, `\`-quoted input is translated once, at
// startup, into a Go fmt verb string with up to three %s holes, filled
// in order with the line number, filename and marker kind, matching
// construct_include_directive_marker's one-time translation (spec.md §6
// "Include marker").
type MarkerFormat struct {
	layout string // a fmt verb string with at most 3 "%s" occurrences
	holes  int    // how many "%s" occurrences layout has
}

// CompileMarkerFormat translates raw (the --includemarker argument) into
// a MarkerFormat. `?` and `%` each become one `%s` hole, in order; `@`
// becomes a literal space; `\` escapes the following character verbatim.
// At most 3 holes are allowed.
func CompileMarkerFormat(raw string) (*MarkerFormat, error) {
	var out []byte
	quoted := false
	holes := 0
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if quoted {
			if ch == '%' {
				out = append(out, '%')
			}
			out = append(out, ch)
			quoted = false
			continue
		}
		switch ch {
		case '\\':
			quoted = true
		case '@':
			out = append(out, ' ')
		case '%', '?':
			holes++
			if holes > 3 {
				return nil, fmt.Errorf("include: only 3 substitutions allowed in --includemarker")
			}
			out = append(out, '%', 's')
		default:
			out = append(out, ch)
		}
	}
	out = append(out, '\n')
	return &MarkerFormat{layout: string(out), holes: holes}, nil
}

// MarkerKind identifies which of the three points the marker is written
// at: EnteringInclude when the included file's content begins, Returning
// when control returns to the includer, and FileStart (empty string, per
// gpp.c) once at the very top of the main input.
type MarkerKind string

const (
	FileStart       MarkerKind = ""
	EnteringInclude MarkerKind = "1"
	Returning       MarkerKind = "2"
)

// Render formats one marker line for lineno/filename/kind.
func (mf *MarkerFormat) Render(lineno int, filename string, kind MarkerKind) string {
	args := []any{strconv.Itoa(lineno), filename, string(kind)}
	return fmt.Sprintf(mf.layout, args[:mf.holes]...)
}
