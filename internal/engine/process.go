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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gpp-go/gpp/internal/config"
	"github.com/gpp-go/gpp/internal/directive"
	"github.com/gpp-go/gpp/internal/include"
	"github.com/gpp-go/gpp/internal/macro"
	"github.com/gpp-go/gpp/internal/syntax"
)

// ProcessContext is the external entry point for processing one top-level
// file end to end: it writes the --includemarker "file start" marker (if
// configured) and then runs the scan loop to EOF (spec.md §3, §6 "Include
// marker"). Recursive re-entry (macro argument pre-expansion,
// comment-interior recursion, #include) goes through ParseText directly,
// since only a real top-level file gets the FileStart marker.
func (e *Engine) ProcessContext(ctx *InputContext) error {
	if e.IncludeMarker != nil {
		ctx.Out.WriteString(e.IncludeMarker.Render(ctx.Line(), ctx.Filename(), include.FileStart))
	}
	return e.ParseText(ctx)
}

// ParseText runs the main scan loop over ctx until EOF, writing output to
// ctx.Out (spec.md §3). At every position it tries, in order: a
// comment/string rule, a meta-directive, a user-macro call, falling back
// to passing the single next byte through when none match.
func (e *Engine) ParseText(ctx *InputContext) error {
	for {
		consumed, err := e.step(ctx)
		if err != nil {
			return err
		}
		if consumed {
			continue
		}
		if ctx.EOF() {
			return nil
		}
		b := ctx.GetChar(1)
		if e.Emitting() {
			ctx.Out.WriteByte(b)
		}
		ctx.ShiftIn(2)
	}
}

func (e *Engine) step(ctx *InputContext) (bool, error) {
	if consumed, err := e.tryComment(ctx); consumed || err != nil {
		return consumed, err
	}
	if consumed, err := e.tryDirective(ctx); consumed || err != nil {
		return consumed, err
	}
	if consumed, err := e.tryMacro(ctx); consumed || err != nil {
		return consumed, err
	}
	return false, nil
}

// tryDirective recognizes a meta-directive (spec.md §4.5) at the current
// position and runs it through directive.Dispatch. Recognition of the
// directive's name happens unconditionally, even inside a skipped #if
// branch, so the conditional stack stays correctly nested; Dispatch
// itself withholds a handler's side effects and output for directives
// that require emitting (everything except the conditionals).
func (e *Engine) tryDirective(ctx *InputContext) (bool, error) {
	spec := e.Specs.Top()
	cs := &spec.Classes
	buf := ctx.EnsureBuffered()
	mode := &spec.Meta

	pos := 1
	if !syntax.MatchStartSequence(mode.MacroStart, buf, &pos, cs) {
		return false, nil
	}
	nameStart := pos
	nameEnd := syntax.IdentifierEnd(buf, nameStart, spec.Classes.ID)
	if nameEnd == nameStart {
		return false, nil
	}
	name := string(buf[nameStart:nameEnd])
	kind, ok := directive.Classify(name)
	if !ok {
		return false, nil
	}

	end := nameEnd
	var words []string
	argStart := nameEnd
	if !mode.ArgStart.Empty() {
		p := argStart
		if syntax.MatchSequence(mode.ArgStart, buf, &p, cs) {
			raw, newPos, ok := macro.SplitArgs(buf, p, mode.ArgSep, mode.ArgEnd, cs, mode.StackChars, mode.UnstackChars)
			if ok {
				for _, w := range raw {
					if w = strings.TrimSpace(w); w != "" {
						words = append(words, w)
					}
				}
				end = newPos
			}
		}
	}
	if end == nameEnd {
		p := nameEnd
		syntax.MatchSequence(mode.MacroEnd, buf, &p, cs)
		end = p
	}

	replacement, err := directive.Dispatch(&hostAdapter{e: e, ctx: ctx}, kind, words)
	if err != nil {
		return true, err
	}
	// Every directive other than eval/line/file/date/exec/include/sinclude
	// replaces its own text with a blank line, so the line terminator the
	// directive's span consumed still reaches the output and downstream
	// line numbers stay aligned with the original input even though the
	// directive itself produced no content (spec.md §4.5 "Output shape").
	// Dispatch already withholds real output for a literal-emitting
	// directive recognized while skipping, so this only ever fills in the
	// otherwise-empty replacement of the non-literal kinds.
	if replacement == "" && !kind.AlwaysEmitsLiterally() {
		replacement = "\n"
	}
	if replacement != "" {
		ctx.Out.WriteString(replacement)
	}
	ctx.ShiftIn(end)
	return true, nil
}

// tryMacro recognizes a user-macro call (spec.md §4.4) at the current
// position, expands its body against the already-expanded actual
// arguments, recursively re-scans the expansion (so a macro body that
// itself calls other macros keeps expanding), and splices the result.
// Unlike directives, a macro call is only ever looked for while emitting:
// there is no nesting-depth bookkeeping to preserve by recognizing one
// inside a skipped branch.
func (e *Engine) tryMacro(ctx *InputContext) (bool, error) {
	if !e.Emitting() {
		return false, nil
	}
	spec := e.Specs.Top()
	cs := &spec.Classes
	buf := ctx.EnsureBuffered()
	mode := &spec.User

	pos := 1
	if !mode.MacroStart.Empty() {
		if !syntax.MatchStartSequence(mode.MacroStart, buf, &pos, cs) {
			return false, nil
		}
	}
	nameStart := pos
	nameEnd := syntax.IdentifierEnd(buf, nameStart, spec.Classes.ID)
	if nameEnd == nameStart {
		return false, nil
	}
	name := string(buf[nameStart:nameEnd])

	m, ok := e.Macros.Find(name)
	if !ok {
		return false, nil
	}

	// Splicing the argument list and expanding the body both use the
	// Spec captured at the macro's own definition time, not whatever is
	// currently active, so a later #mode change never reinterprets an
	// already-defined macro's call syntax or #1.. references.
	defCS := &m.Spec.Classes
	call, err := macro.SplicePossibleUser(m, m.Spec, buf, nameEnd, defCS, e.expandText)
	if err != nil {
		return true, err
	}
	if call == nil {
		return false, nil
	}

	body := macro.BindNamedArgs(m.Body, call.NamedArgs, m.Spec.Classes.ID)
	body = macro.ExpandBody(body, m.Spec.User.ArgRef, call.Args, defCS)

	expanded, err := e.expandTextAt(body, ctx, m.Spec)
	if err != nil {
		return true, err
	}
	if expanded != "" {
		ctx.Out.WriteString(expanded)
	}
	ctx.ShiftIn(call.End)
	return true, nil
}

// expandText pre-expands text under spec with a fresh <expand> location,
// the shape macro.Expander and directive.Host.Expand both need.
func (e *Engine) expandText(text string, spec *syntax.Spec) (string, error) {
	return e.expandTextAt(text, nil, spec)
}

// expandTextAt is expandText, reporting diagnostics at origin's current
// location when origin is non-nil (a macro call site) rather than the
// synthetic "<expand>" name (an #if/#eval/#exec argument with no single
// originating line).
func (e *Engine) expandTextAt(text string, origin *InputContext, spec *syntax.Spec) (string, error) {
	loc := "<expand>"
	if origin != nil {
		loc = origin.Location()
	}
	release, err := e.enterRecursion(loc)
	if err != nil {
		return "", err
	}
	defer release()
	out := NewBufferOutput()
	sub := NewStringContext(text, loc, out)

	e.Specs.PushSpec(spec.Clone())
	defer e.Specs.Pop()

	if err := e.ParseText(sub); err != nil {
		return "", err
	}
	return out.String(), nil
}

// processIncludeFile opens path, auto-switching to the C preset when
// configured and path looks like a C/C++ header or source file, and
// recursively scans it to completion, returning its fully expanded
// output text (spec.md §4.7). The EnteringInclude marker, when
// configured, is written as the first line of that output; the
// corresponding Returning marker is the caller's responsibility, since
// only the includer's context knows the line to report it against.
func (e *Engine) processIncludeFile(path string) (string, error) {
	release, err := e.enterRecursion(path)
	if err != nil {
		return "", err
	}
	defer release()

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("include: %s: %v", path, err)
	}
	defer f.Close()

	base := e.Specs.Top()
	if e.Config.AutoSwitchC && include.AutoSwitchPreset(path) {
		base = syntax.C()
	}
	e.Specs.PushSpec(base.Clone())
	defer e.Specs.Pop()

	out := NewBufferOutput()
	sub := NewFileContext(f, path, out)
	if e.IncludeMarker != nil {
		out.WriteString(e.IncludeMarker.Render(1, path, include.EnteringInclude))
	}
	if err := e.ParseText(sub); err != nil {
		return "", err
	}
	return out.String(), nil
}

// hostAdapter implements directive.Host against one Engine and the
// InputContext currently being scanned, so directive handlers report
// diagnostics and #line/#file overrides against the right location
// without internal/directive importing internal/engine.
type hostAdapter struct {
	e   *Engine
	ctx *InputContext
}

func (h *hostAdapter) Spec() *syntax.Spec     { return h.e.Specs.Top() }
func (h *hostAdapter) PushSpec() *syntax.Spec { return h.e.Specs.Push() }

func (h *hostAdapter) PopSpec() error {
	if h.e.Specs.Depth() <= 1 {
		return h.Fatalf("#mode restore: no saved mode to restore")
	}
	h.e.Specs.Pop()
	return nil
}

func (h *hostAdapter) SpecDepth() int       { return h.e.Specs.Depth() }
func (h *hostAdapter) Macros() *macro.Table { return h.e.Macros }

func (h *hostAdapter) PushIf(condTrue bool) error {
	if err := h.e.Cond.PushIf(condTrue); err != nil {
		return h.Fatalf("%v", err)
	}
	return nil
}

func (h *hostAdapter) Elif(condTrue bool) error {
	if err := h.e.Cond.Elif(condTrue); err != nil {
		return h.Fatalf("%v", err)
	}
	return nil
}

func (h *hostAdapter) Else() error {
	if err := h.e.Cond.Else(); err != nil {
		return h.Fatalf("%v", err)
	}
	return nil
}

func (h *hostAdapter) Endif() error {
	if err := h.e.Cond.Endif(); err != nil {
		return h.Fatalf("%v", err)
	}
	return nil
}

func (h *hostAdapter) Emitting() bool                       { return h.e.Emitting() }
func (h *hostAdapter) Config() *config.Config               { return h.e.Config }
func (h *hostAdapter) IncludeMarker() *include.MarkerFormat { return h.e.IncludeMarker }
func (h *hostAdapter) Location() string                     { return h.ctx.Location() }
func (h *hostAdapter) CurrentFile() string                  { return h.ctx.Filename() }
func (h *hostAdapter) CurrentLine() int                     { return h.ctx.Line() }

func (h *hostAdapter) SetLocation(file string, line int) {
	if file != "" {
		h.ctx.SetFilename(file)
	}
	if line != 0 {
		h.ctx.SetLine(line)
	}
}

func (h *hostAdapter) Warn(format string, args ...any) {
	h.e.Diagnostics.Warn(h.ctx.Location(), format, args...)
}

func (h *hostAdapter) Fatalf(format string, args ...any) error {
	return Fatalf(h.ctx.Location(), format, args...)
}

func (h *hostAdapter) Expand(text string) (string, error) {
	// Conditional directives run inside skipped branches too (an #elif
	// re-test, or an #if nested under a false condition), so the argument
	// is expanded against an empty conditional stack rather than being
	// suppressed by the enclosing skip state.
	saved := h.e.Cond
	h.e.Cond = &ConditionalStack{}
	defer func() { h.e.Cond = saved }()
	return h.e.expandTextAt(text, h.ctx, h.e.Specs.Top())
}

func (h *hostAdapter) ResolveInclude(name string) (string, error) {
	return include.Resolve(name, include.Options{
		IncludeDirs:       h.e.Config.IncludeDirs,
		NoCurInclude:      h.e.Config.NoCurInclude,
		CurDirIncludeLast: h.e.Config.CurDirIncludeLast,
		Stat: func(p string) bool {
			_, err := os.Stat(p)
			return err == nil
		},
	}, filepath.Dir(h.ctx.Filename()))
}

func (h *hostAdapter) ProcessInclude(path string) (string, error) {
	body, err := h.e.processIncludeFile(path)
	if err != nil {
		return "", h.Fatalf("%v", err)
	}
	if h.e.IncludeMarker != nil {
		body += h.e.IncludeMarker.Render(h.ctx.Line(), h.ctx.Filename(), include.Returning)
	}
	return body, nil
}
