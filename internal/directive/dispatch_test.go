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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gpp-go/gpp/internal/macro"
)

func TestDispatchDefineAndUndef(t *testing.T) {
	h := newFakeHost()

	_, err := Dispatch(h, Define, []string{"FOO", "bar"})
	require.NoError(t, err)
	m, ok := h.Macros().Find("FOO")
	require.True(t, ok)
	require.Equal(t, "bar", m.Body)

	require.True(t, h.Macros().Defined("FOO"))
	_, err = Dispatch(h, Undef, []string{"FOO"})
	require.NoError(t, err)
	require.False(t, h.Macros().Defined("FOO"))
}

func TestDispatchDefineWithArgs(t *testing.T) {
	h := newFakeHost()
	_, err := Dispatch(h, Define, []string{"ADD(a,b)", "#1", "+", "#2"})
	require.NoError(t, err)
	m, ok := h.Macros().Find("ADD")
	require.True(t, ok)
	require.True(t, m.HasArgList)
	require.Equal(t, []string{"a", "b"}, m.NamedArgs)
}

func TestDispatchDefevalExpandsAtDefinitionTime(t *testing.T) {
	h := newFakeHost()
	h.expandFn = func(s string) (string, error) { return "42", nil }
	_, err := Dispatch(h, Defeval, []string{"X", "1+1"})
	require.NoError(t, err)
	m, ok := h.Macros().Find("X")
	require.True(t, ok)
	require.Equal(t, "42", m.Body)
}

func TestDispatchIfdefIfndef(t *testing.T) {
	h := newFakeHost()
	h.Macros().Define(&macro.Macro{Name: "KNOWN"})

	_, err := Dispatch(h, Ifdef, []string{"KNOWN"})
	require.NoError(t, err)
	require.True(t, h.Emitting())
	require.NoError(t, mustErr(Dispatch(h, Endif, nil)))

	_, err = Dispatch(h, Ifdef, []string{"MISSING"})
	require.NoError(t, err)
	require.False(t, h.Emitting())
	require.NoError(t, mustErr(Dispatch(h, Endif, nil)))

	_, err = Dispatch(h, Ifndef, []string{"MISSING"})
	require.NoError(t, err)
	require.True(t, h.Emitting())
}

func TestDispatchIfElseEndif(t *testing.T) {
	h := newFakeHost()
	_, err := Dispatch(h, If, []string{"1", "==", "2"})
	require.NoError(t, err)
	require.False(t, h.Emitting())

	_, err = Dispatch(h, Else, nil)
	require.NoError(t, err)
	require.True(t, h.Emitting())

	_, err = Dispatch(h, Endif, nil)
	require.NoError(t, err)
	require.True(t, h.Emitting())
}

func TestDispatchIfeqIfneq(t *testing.T) {
	h := newFakeHost()
	_, err := Dispatch(h, Ifeq, []string{"foo,", "foo"})
	require.NoError(t, err)
	require.True(t, h.Emitting())
	require.NoError(t, mustErr(Dispatch(h, Endif, nil)))

	_, err = Dispatch(h, Ifneq, []string{"foo,", "bar"})
	require.NoError(t, err)
	require.True(t, h.Emitting())
}

func TestDispatchEval(t *testing.T) {
	h := newFakeHost()
	out, err := Dispatch(h, EvalDirective, []string{"2", "+", "3"})
	require.NoError(t, err)
	require.Equal(t, "5", out)
}

func TestDispatchEvalNonNumericPassesThrough(t *testing.T) {
	h := newFakeHost()
	out, err := Dispatch(h, EvalDirective, []string{"hello"})
	require.NoError(t, err)
	require.Equal(t, "hello", out)
}

func TestDispatchErrorIsFatal(t *testing.T) {
	h := newFakeHost()
	_, err := Dispatch(h, Error, []string{"boom"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestDispatchWarningRecordsWarning(t *testing.T) {
	h := newFakeHost()
	_, err := Dispatch(h, Warning, []string{"careful"})
	require.NoError(t, err)
	require.Len(t, h.warnings, 1)
	require.Contains(t, h.warnings[0], "careful")
}

func TestDispatchLineAndFile(t *testing.T) {
	h := newFakeHost()
	_, err := Dispatch(h, Line, []string{"99"})
	require.NoError(t, err)
	require.Equal(t, 99, h.CurrentLine())

	_, err = Dispatch(h, File, []string{`"other.c"`})
	require.NoError(t, err)
	require.Equal(t, "other.c", h.CurrentFile())
}

func TestDispatchModeQuoteAndPreserveLF(t *testing.T) {
	h := newFakeHost()
	_, err := Dispatch(h, Mode, []string{"quote", `\`})
	require.NoError(t, err)
	require.Equal(t, byte('\\'), h.Spec().User.QuoteChar)

	_, err = Dispatch(h, Mode, []string{"preservelf", "off"})
	require.NoError(t, err)
	require.False(t, h.Spec().PreserveLF)
}

func TestDispatchModeSaveRestore(t *testing.T) {
	h := newFakeHost()
	orig := h.Spec()
	_, err := Dispatch(h, Mode, []string{"save"})
	require.NoError(t, err)
	require.NotSame(t, orig, h.Spec())
	require.Equal(t, 2, h.SpecDepth())

	_, err = Dispatch(h, Mode, []string{"restore"})
	require.NoError(t, err)
	require.Same(t, orig, h.Spec())
	require.Equal(t, 1, h.SpecDepth())
}

func TestDispatchModeRestoreUnderflowErrors(t *testing.T) {
	h := newFakeHost()
	_, err := Dispatch(h, Mode, []string{"restore"})
	require.Error(t, err)
}

func TestDispatchIncludeResolvesAndProcesses(t *testing.T) {
	h := newFakeHost()
	h.includeBodies["foo.h"] = "FOO CONTENT"

	out, err := Dispatch(h, Include, []string{`"foo.h"`})
	require.NoError(t, err)
	require.Equal(t, "FOO CONTENT", out)
}

func TestDispatchSincludeMissingIsSilent(t *testing.T) {
	h := newFakeHost()
	h.resolveErr = require.AnError

	out, err := Dispatch(h, Sinclude, []string{`"missing.h"`})
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestDispatchIncludeMissingIsFatal(t *testing.T) {
	h := newFakeHost()
	h.resolveErr = require.AnError

	_, err := Dispatch(h, Include, []string{`"missing.h"`})
	require.Error(t, err)
}

func TestDispatchSkipsEmittingDirectivesWhileSkipping(t *testing.T) {
	h := newFakeHost()
	_, err := Dispatch(h, If, []string{"0"})
	require.NoError(t, err)
	require.False(t, h.Emitting())

	out, err := Dispatch(h, EvalDirective, []string{"1", "+", "1"})
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func mustErr(_ string, err error) error { return err }
