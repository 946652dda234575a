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
	"fmt"

	"github.com/gpp-go/gpp/internal/config"
	"github.com/gpp-go/gpp/internal/include"
	"github.com/gpp-go/gpp/internal/macro"
	"github.com/gpp-go/gpp/internal/syntax"
)

// condState mirrors internal/engine.ConditionalStack's three states.
// Reimplemented here, independent of internal/engine, specifically so
// this package's tests don't import the one package that imports
// internal/directive back (host.go's whole point is to let this package
// be tested without engine at all).
type condState int

const (
	stEmitting condState = iota
	stSkipping
	stLatched
)

// fakeHost is a minimal directive.Host good enough to drive every
// handler in this package without a real Engine.
type fakeHost struct {
	spec      *syntax.Spec
	specStack []*syntax.Spec
	macros    *macro.Table
	cfg       *config.Config
	marker    *include.MarkerFormat
	file      string
	line      int
	warnings  []string
	levels    []condState

	expandFn      func(string) (string, error)
	resolveErr    error
	includeBodies map[string]string
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		spec:          syntax.Generic(),
		macros:        macro.NewTable(),
		cfg:           config.Default(),
		file:          "test.in",
		line:          1,
		includeBodies: map[string]string{},
	}
}

func (h *fakeHost) Spec() *syntax.Spec { return h.spec }

func (h *fakeHost) PushSpec() *syntax.Spec {
	clone := h.spec.Clone()
	h.specStack = append(h.specStack, h.spec)
	h.spec = clone
	return clone
}

func (h *fakeHost) PopSpec() error {
	if len(h.specStack) == 0 {
		return fmt.Errorf("spec stack underflow")
	}
	h.spec = h.specStack[len(h.specStack)-1]
	h.specStack = h.specStack[:len(h.specStack)-1]
	return nil
}

func (h *fakeHost) SpecDepth() int { return len(h.specStack) + 1 }

func (h *fakeHost) Macros() *macro.Table { return h.macros }

func (h *fakeHost) PushIf(condTrue bool) error {
	var s condState
	switch {
	case !h.Emitting():
		s = stSkipping
	case condTrue:
		s = stEmitting
	default:
		s = stSkipping
	}
	h.levels = append(h.levels, s)
	return nil
}

func (h *fakeHost) Elif(condTrue bool) error {
	if len(h.levels) == 0 {
		return fmt.Errorf("#elif without matching #if")
	}
	i := len(h.levels) - 1
	switch h.levels[i] {
	case stEmitting:
		h.levels[i] = stLatched
	case stSkipping:
		if condTrue {
			h.levels[i] = stEmitting
		}
	}
	return nil
}

func (h *fakeHost) Else() error {
	if len(h.levels) == 0 {
		return fmt.Errorf("#else without matching #if")
	}
	i := len(h.levels) - 1
	switch h.levels[i] {
	case stEmitting:
		h.levels[i] = stLatched
	case stSkipping:
		h.levels[i] = stEmitting
	}
	return nil
}

func (h *fakeHost) Endif() error {
	if len(h.levels) == 0 {
		return fmt.Errorf("#endif without matching #if")
	}
	h.levels = h.levels[:len(h.levels)-1]
	return nil
}

func (h *fakeHost) Emitting() bool {
	for _, s := range h.levels {
		if s != stEmitting {
			return false
		}
	}
	return true
}

func (h *fakeHost) Config() *config.Config               { return h.cfg }
func (h *fakeHost) IncludeMarker() *include.MarkerFormat { return h.marker }
func (h *fakeHost) Location() string                     { return fmt.Sprintf("%s:%d", h.file, h.line) }
func (h *fakeHost) CurrentFile() string                  { return h.file }
func (h *fakeHost) CurrentLine() int                     { return h.line }

func (h *fakeHost) SetLocation(file string, line int) {
	if file != "" {
		h.file = file
	}
	if line != 0 {
		h.line = line
	}
}

func (h *fakeHost) Warn(format string, args ...any) {
	h.warnings = append(h.warnings, fmt.Sprintf(format, args...))
}

func (h *fakeHost) Fatalf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

func (h *fakeHost) Expand(text string) (string, error) {
	if h.expandFn != nil {
		return h.expandFn(text)
	}
	return text, nil
}

func (h *fakeHost) ResolveInclude(name string) (string, error) {
	if h.resolveErr != nil {
		return "", h.resolveErr
	}
	return name, nil
}

func (h *fakeHost) ProcessInclude(path string) (string, error) {
	return h.includeBodies[path], nil
}
