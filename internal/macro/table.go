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

// Table is the ordered user-macro table: an insertion-ordered slice plus a
// name index, so that definitions can be walked in declaration order
// while lookup stays O(1) (spec.md §3
// "Macro table").
type Table struct {
	order []*Macro
	byName map[string]int
}

// NewTable returns an empty macro table.
func NewTable() *Table {
	return &Table{byName: make(map[string]int)}
}

// Define installs m, replacing any prior definition of the same name
// in place (spec.md: "#define of an already-defined name silently
// replaces it").
func (t *Table) Define(m *Macro) {
	if i, ok := t.byName[m.Name]; ok {
		t.order[i] = m
		return
	}
	t.byName[m.Name] = len(t.order)
	t.order = append(t.order, m)
}

// Undef removes name from the table; it is a no-op if name was never
// defined (spec.md: "#undef of an unknown name is not an error").
func (t *Table) Undef(name string) {
	i, ok := t.byName[name]
	if !ok {
		return
	}
	delete(t.byName, name)
	t.order = append(t.order[:i], t.order[i+1:]...)
	for n, idx := range t.byName {
		if idx > i {
			t.byName[n] = idx - 1
		}
	}
}

// Find looks up name, returning (nil, false) if it is not defined.
func (t *Table) Find(name string) (*Macro, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return t.order[i], true
}

// Defined reports whether name has a current definition; this powers both
// `#ifdef`/`#ifndef` and the arithmetic evaluator's `defined(NAME)`
// built-in (spec.md §4.6).
func (t *Table) Defined(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// All returns the macro table in declaration order.
func (t *Table) All() []*Macro {
	return t.order
}

// Len reports how many macros are currently defined.
func (t *Table) Len() int { return len(t.order) }
