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

import (
	"strings"
	"time"
)

// handleDate implements #date("FORMAT"): FORMAT is macro-expanded, its
// strftime conversion specifiers are translated to Go's reference-time
// layout, and the current local time is formatted against the result
// (gpp.c's #date delegates directly to the C library's strftime; Go has
// no such function, so the translation happens once, here, per call).
func handleDate(h Host, rawFormat string) (string, error) {
	expanded, err := h.Expand(rawFormat)
	if err != nil {
		return "", err
	}
	format := strings.Trim(strings.TrimSpace(expanded), `"`)
	return time.Now().Format(translateStrftime(format)), nil
}

// translateStrftime maps the common strftime conversion specifiers to
// their Go reference-time ("Mon Jan 2 15:04:05 MST 2006") equivalents.
// An unrecognized specifier is passed through verbatim rather than
// rejected, since a format string may legitimately contain a literal
// '%' the author didn't intend as a conversion.
func translateStrftime(f string) string {
	var b strings.Builder
	for i := 0; i < len(f); i++ {
		if f[i] != '%' || i+1 >= len(f) {
			b.WriteByte(f[i])
			continue
		}
		i++
		switch f[i] {
		case 'Y':
			b.WriteString("2006")
		case 'y':
			b.WriteString("06")
		case 'm':
			b.WriteString("01")
		case 'd':
			b.WriteString("02")
		case 'e':
			b.WriteString("_2")
		case 'H':
			b.WriteString("15")
		case 'I':
			b.WriteString("03")
		case 'M':
			b.WriteString("04")
		case 'S':
			b.WriteString("05")
		case 'p':
			b.WriteString("PM")
		case 'A':
			b.WriteString("Monday")
		case 'a':
			b.WriteString("Mon")
		case 'B':
			b.WriteString("January")
		case 'b', 'h':
			b.WriteString("Jan")
		case 'Z':
			b.WriteString("MST")
		case 'z':
			b.WriteString("-0700")
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(f[i])
		}
	}
	return b.String()
}
