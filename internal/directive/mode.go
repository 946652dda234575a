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

	"github.com/gpp-go/gpp/internal/charset"
	"github.com/gpp-go/gpp/internal/syntax"
)

// handleMode dispatches #mode's twelve sub-commands (spec.md §4.5 "#mode"):
// quote, comment, string, nocomment, nostring, save/push, restore/pop,
// standard, user, meta, preservelf, charset.
func handleMode(h Host, args []string) error {
	sub := arg(args, 0)
	words := args[1:]
	spec := h.Spec()

	switch sub {
	case "quote":
		if len(words) == 0 || words[0] == "" {
			spec.User.QuoteChar = 0
			return nil
		}
		spec.User.QuoteChar = words[0][0]
		return nil

	case "comment":
		return addCommentRule(h, spec, words, "comment", syntax.FlagComment, 0, 0)

	case "string":
		var quote byte
		if len(words) >= 3 && words[2] != "" {
			quote = words[2][0]
		}
		return addCommentRule(h, spec, words[:min(2, len(words))], "string", syntax.FlagString, quote, '\n')

	case "nocomment", "nostring":
		if len(words) == 0 {
			return h.Fatalf("#mode %s requires a start delimiter", sub)
		}
		pat, err := syntax.ParsePattern(words[0])
		if err != nil {
			return h.Fatalf("#mode %s: %v", sub, err)
		}
		spec.RemoveComment(pat)
		return nil

	case "save", "push":
		h.PushSpec()
		return nil

	case "restore", "pop":
		return h.PopSpec()

	case "standard":
		name := arg(words, 0)
		preset, ok := syntax.ByName(name)
		if !ok {
			return h.Fatalf("#mode standard: unknown mode %q", name)
		}
		spec.User = preset.User
		spec.Meta = preset.Meta
		return nil

	case "user":
		m, err := modeFromWords(words)
		if err != nil {
			return h.Fatalf("#mode user: %v", err)
		}
		spec.User = m
		return nil

	case "meta":
		m, err := modeFromWords(words)
		if err != nil {
			return h.Fatalf("#mode meta: %v", err)
		}
		spec.Meta = m
		return nil

	case "preservelf":
		spec.PreserveLF = arg(words, 0) != "off"
		return nil

	case "charset":
		return handleCharset(h, spec, words)

	default:
		return h.Fatalf("#mode: unknown sub-command %q", sub)
	}
}

func addCommentRule(h Host, spec *syntax.Spec, words []string, label string, flag syntax.RuleFlag, quote, warn byte) error {
	if len(words) < 2 {
		return h.Fatalf("#mode %s requires start and end delimiters", label)
	}
	start, err := syntax.ParsePattern(words[0])
	if err != nil {
		return h.Fatalf("#mode %s: %v", label, err)
	}
	end, err := syntax.ParsePattern(words[1])
	if err != nil {
		return h.Fatalf("#mode %s: %v", label, err)
	}
	spec.AddComment(syntax.CommentRule{
		Start: start, End: end,
		Quote: quote, Warn: warn,
		Flags: [3]syntax.RuleFlag{flag, flag, flag},
	})
	return nil
}

// modeFromWords builds a Mode from up to 9 whitespace-tokenized words in
// -U/-M CLI order: mStart mEnd argS argSep argE argRef quote stack
// unstack. Missing trailing words default to empty/zero.
func modeFromWords(words []string) (syntax.Mode, error) {
	get := func(i int) string {
		if i < len(words) {
			return words[i]
		}
		return ""
	}
	var quote byte
	if q := get(6); q != "" && q != "0" && q != "none" {
		quote = q[0]
	}
	return syntax.NewMode(get(0), get(1), get(2), get(3), get(4), get(5), quote, get(7), get(8))
}

func handleCharset(h Host, spec *syntax.Spec, words []string) error {
	which := arg(words, 0)
	raw := strings.Join(words[min(1, len(words)):], " ")
	set, err := charset.Parse(raw)
	if err != nil {
		return h.Fatalf("#mode charset: %v", err)
	}
	switch which {
	case "op":
		spec.Classes.Op = set
	case "ext", "par":
		spec.Classes.ExtOp = set
	case "id":
		spec.Classes.ID = set
	default:
		return h.Fatalf("#mode charset: unknown class %q", which)
	}
	return nil
}
