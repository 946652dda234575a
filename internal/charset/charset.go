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

// Package charset provides a compact 256-entry bitset used by the scanner to
// classify bytes as members of the "operator", "extended operator" or
// "identifier" classes. Every mode's charsets are one of these sets.
package charset

import "fmt"

// Set is a bitset over the 256 possible byte values.
type Set [4]uint64

// Empty is the empty set.
var Empty = Set{}

// Add inserts b into the set.
func (s *Set) Add(b byte) {
	s[b/64] |= 1 << (b % 64)
}

// Remove deletes b from the set.
func (s *Set) Remove(b byte) {
	s[b/64] &^= 1 << (b % 64)
}

// Contains reports whether b is a member of the set.
func (s Set) Contains(b byte) bool {
	return s[b/64]&(1<<(b%64)) != 0
}

// Union returns the union of s and other.
func (s Set) Union(other Set) Set {
	var out Set
	for i := range out {
		out[i] = s[i] | other[i]
	}
	return out
}

// AddRange inserts every byte in [lo, hi] into the set.
func (s *Set) AddRange(lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		s.Add(byte(b))
	}
}

// Parse builds a Set from a small DSL of literal characters and `a-z`-style
// ranges, e.g. "a-zA-Z0-9_". A leading '^' negates the resulting set (every
// byte not named becomes a member instead).
//
// Parse is used for the `#mode charset` sub-command and for building the
// default operator/identifier charsets of each built-in preset.
func Parse(spec string) (Set, error) {
	var out Set
	negate := false
	i := 0
	if len(spec) > 0 && spec[0] == '^' {
		negate = true
		i = 1
	}
	for i < len(spec) {
		c := spec[i]
		if c == '\\' && i+1 < len(spec) {
			out.Add(spec[i+1])
			i += 2
			continue
		}
		if i+2 < len(spec) && spec[i+1] == '-' {
			lo, hi := spec[i], spec[i+2]
			if lo > hi {
				return out, fmt.Errorf("charset: invalid range %q-%q", lo, hi)
			}
			out.AddRange(lo, hi)
			i += 3
			continue
		}
		out.Add(c)
		i++
	}
	if negate {
		var full Set
		full.AddRange(0, 255)
		for b := 0; b < 256; b++ {
			if out.Contains(byte(b)) {
				full.Remove(byte(b))
			}
		}
		return full, nil
	}
	return out, nil
}

// IsLetter reports whether b is an ASCII letter, independent of any mode's
// configured charsets; used for the \a / \A scanner classes of §4.1.
func IsLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsDigit reports whether b is an ASCII decimal digit (the \# class).
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsSpaceOrTab reports whether b is a space or tab character (the \b / \w
// classes, before newlines are added for \B / \W).
func IsSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}
