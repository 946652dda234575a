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

import "github.com/gpp-go/gpp/internal/syntax"

// tryComment tests every comment/string rule of the active Spec, in
// declaration order, against the current position (spec.md §4.3). The
// first rule whose Start matches wins; its End is then searched for,
// honoring Quote (escapes the following byte) and Warn (flags a byte
// that shouldn't appear unescaped inside, e.g. a bare newline in a C
// string). Recognition happens unconditionally, even while the engine
// isn't currently emitting: comments and strings must still be scanned
// over (not misread as directives or macro calls) inside a skipped
// #if branch.
func (e *Engine) tryComment(ctx *InputContext) (bool, error) {
	spec := e.Specs.Top()
	cs := &spec.Classes
	buf := ctx.EnsureBuffered()

	for _, rule := range spec.Comments {
		flag := rule.Flags[ctx.Ambience]
		if flag&syntax.Ignore != 0 {
			continue
		}
		pos := 1
		if !syntax.MatchStartSequence(rule.Start, buf, &pos, cs) {
			continue
		}

		interiorStart := pos
		scanPos := pos
		endPos := -1
		for {
			p := scanPos
			if syntax.MatchEndSequence(rule.End, buf, &p, cs, spec.PreserveLF) {
				endPos = p
				break
			}
			if scanPos >= len(buf) {
				break
			}
			if rule.Quote != 0 && buf[scanPos] == rule.Quote && scanPos+1 < len(buf) {
				scanPos += 2
				continue
			}
			if rule.Warn != 0 && buf[scanPos] == rule.Warn {
				e.Diagnostics.Warn(ctx.Location(), "unexpected %q inside delimited text", rule.Warn)
			}
			scanPos++
		}
		if endPos < 0 {
			return true, Fatalf(ctx.Location(), "unterminated comment or string")
		}
		interior := string(buf[interiorStart:scanPos])

		switch {
		case flag&syntax.ParseMacros != 0:
			expanded, err := e.expandText(interior, spec)
			if err != nil {
				return true, err
			}
			e.emitDelimited(ctx, rule, flag, expanded)

		case flag&syntax.OutputText != 0:
			e.emitDelimited(ctx, rule, flag, interior)

		default:
			// Neither OutputText nor ParseMacros: the whole rule body is
			// dropped. When an include marker is configured, a dropped
			// multi-line comment still needs to preserve the includer's
			// line count downstream, so its interior newlines survive as
			// blank lines (spec.md §4.3 "blank-line replacement").
			if e.Emitting() && e.IncludeMarker != nil {
				for i := 0; i < len(interior); i++ {
					if interior[i] == '\n' {
						ctx.Out.WriteByte('\n')
					}
				}
			}
		}

		ctx.ShiftIn(endPos)
		return true, nil
	}
	return false, nil
}

// emitDelimited writes text (either the literal or the macro-expanded
// interior) to ctx.Out, wrapped in rule's literal start/end delimiters
// when flag carries OutputDelim, gated on the engine currently emitting.
func (e *Engine) emitDelimited(ctx *InputContext, rule syntax.CommentRule, flag syntax.RuleFlag, text string) {
	if !e.Emitting() {
		return
	}
	if flag&syntax.OutputDelim != 0 {
		ctx.Out.WriteString(string(rule.Start.Literals()))
	}
	ctx.Out.WriteString(text)
	if flag&syntax.OutputDelim != 0 {
		ctx.Out.WriteString(string(rule.End.Literals()))
	}
}
