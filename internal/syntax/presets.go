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

package syntax

// The built-in Mode literals below are lifted directly from gpp.c's global
// MODE initializers (CUser/CMeta/KUser/KMeta/Tex/Html/XHtml), field order
// {mStart, mEnd, mArgS, mArgSep, mArgE, mArgRef, quotechar, stackchar,
// unstackchar}, rather than re-derived, per the Open Question in spec.md §9
// ("lift this behavior from the scenario corpus rather than guess").
var (
	genericUserMode = MustMode("", "", "(", ",", ")", "#", '\\', "(", ")")
	genericMetaMode = MustMode("#", "\n", "\x01", "\x01", "\n", "#", '\\', "(", ")")

	cUserMode = MustMode("", "", "(", ",", ")", "#", 0, "(", ")")
	cMetaMode = MustMode("\n#\x02", "\n", "\x01", "\x01", "\n", "#", 0, "", "")

	texMode = MustMode("\\", "", "{", "}{", "}", "#", '@', "{", "}")

	htmlMode  = MustMode("<#", ">", "\x03", "|", ">", "#", '\\', "<", ">")
	xhtmlMode = MustMode("<#", "/>", "\x03", "|", "/>", "#", '\\', "<", ">")
)

// MustMode is NewMode but panics on a parse error; used only to build the
// fixed, compile-time-known preset literals above.
func MustMode(mStart, mEnd, argS, argSep, argE, argRef string, quote byte, stack, unstack string) Mode {
	m, err := NewMode(mStart, mEnd, argS, argSep, argE, argRef, quote, stack, unstack)
	if err != nil {
		panic(err)
	}
	return m
}

func baseClassSets() ClassSets {
	return ClassSets{Op: defaultOpSet(), ExtOp: defaultExtOpSet(), ID: defaultIDSet()}
}

// Generic returns the default "no particular host language" preset: the
// macro-call syntax is `name(arg,arg)`, the directive syntax is
// `#name arg1 arg2`, there is no comment or string recognition configured.
func Generic() *Spec {
	return &Spec{
		User:       genericUserMode,
		Meta:       genericMetaMode,
		PreserveLF: false,
		Classes:    baseClassSets(),
	}
}

// C returns the `-C` preset: C/C++-style directives at column 1
// (`#define`/`#if`/...), `/* */` and `//` block/line comments, backslash
// line continuations, and `"..."`/`'...'` string and character literals.
func C() *Spec {
	s := &Spec{
		User:       cUserMode,
		Meta:       cMetaMode,
		PreserveLF: true,
		Classes:    baseClassSets(),
	}
	s.AddComment(CommentRule{
		Start: MustParsePattern("/*"), End: MustParsePattern("*/"),
		Flags: [3]RuleFlag{FlagComment, FlagComment, FlagComment},
	})
	s.AddComment(CommentRule{
		Start: MustParsePattern("//"), End: MustParsePattern("\n"),
		Flags: [3]RuleFlag{FlagComment, FlagComment, FlagComment},
	})
	s.AddComment(CommentRule{
		Start: MustParsePattern("\\\n"), End: MustParsePattern(""),
		Flags: [3]RuleFlag{FlagComment, FlagComment, FlagComment},
	})
	s.AddComment(CommentRule{
		Start: MustParsePattern(`"`), End: MustParsePattern(`"`),
		Quote: '\\', Warn: '\n',
		Flags: [3]RuleFlag{FlagString, FlagString, FlagString},
	})
	s.AddComment(CommentRule{
		Start: MustParsePattern("'"), End: MustParsePattern("'"),
		Quote: '\\', Warn: '\n',
		Flags: [3]RuleFlag{FlagString, FlagString, FlagString},
	})
	return s
}

// Prolog returns the `-P` preset: the generic macro-call syntax with
// Prolog's narrower operator charset, `%` line comments, and quoted-atom
// strings.
func Prolog() *Spec {
	classes := baseClassSets()
	classes.Op = prologOpSet()
	s := &Spec{
		User:       genericUserMode,
		Meta:       genericMetaMode,
		PreserveLF: true,
		Classes:    classes,
	}
	s.AddComment(CommentRule{
		Start: MustParsePattern("/*"), End: MustParsePattern("*/"),
		Flags: [3]RuleFlag{FlagComment, FlagComment, FlagComment},
	})
	s.AddComment(CommentRule{
		Start: MustParsePattern("\\\n"), End: MustParsePattern(""),
		Flags: [3]RuleFlag{FlagComment, FlagComment, FlagComment},
	})
	s.AddComment(CommentRule{
		Start: MustParsePattern("%"), End: MustParsePattern("\n"),
		Flags: [3]RuleFlag{FlagComment, FlagComment, FlagComment},
	})
	s.AddComment(CommentRule{
		Start: MustParsePattern(`"`), End: MustParsePattern(`"`),
		Warn: '\n',
		Flags: [3]RuleFlag{FlagString, FlagString, FlagString},
	})
	s.AddComment(CommentRule{
		Start: MustParsePattern("'"), End: MustParsePattern("'"),
		Warn: '\n',
		Flags: [3]RuleFlag{FlagString, FlagString, FlagString},
	})
	return s
}

// TeX returns the `-T` preset: `\name{arg}{arg}` calls, used for both the
// user and the meta sub-language (TeX has no separate directive syntax).
func TeX() *Spec {
	return &Spec{User: texMode, Meta: texMode, Classes: baseClassSets()}
}

// HTML returns the `-H` preset: `<#name arg|arg>` calls.
func HTML() *Spec {
	return &Spec{User: htmlMode, Meta: htmlMode, Classes: baseClassSets()}
}

// XHTML returns the `-X` preset: like HTML but closed with `/>`.
func XHTML() *Spec {
	return &Spec{User: xhtmlMode, Meta: xhtmlMode, Classes: baseClassSets()}
}

// ByName resolves a preset by the name accepted by `#mode standard <name>`
// and the CLI's `-preset` flag. The CLI has no separate `-C`/`-T`/`-H`/
// `-X`/`-P` flags; those letters are accepted here as preset names.
func ByName(name string) (*Spec, bool) {
	switch name {
	case "c", "cpp", "C":
		return C(), true
	case "tex", "T":
		return TeX(), true
	case "html", "H":
		return HTML(), true
	case "xhtml", "X":
		return XHTML(), true
	case "prolog", "P":
		return Prolog(), true
	case "generic", "":
		return Generic(), true
	default:
		return nil, false
	}
}
