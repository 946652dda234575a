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

	"github.com/gpp-go/gpp/internal/collections"
	"github.com/gpp-go/gpp/internal/macro"
)

// handleDefine implements both #define (lazy body, expanded at each call
// site) and #defeval (body expanded once, here, at definition time).
// The macro name and optional parenthesized parameter list are parsed
// against the active Spec's own User-mode argument delimiters, so a
// macro defined under `#mode user ...` uses that mode's call syntax for
// its own parameter list too (spec.md §4.4).
func handleDefine(h Host, args []string, eager bool) error {
	full := strings.TrimLeft(rest(args, 0), " \t")
	if full == "" {
		return h.Fatalf("#define requires a macro name")
	}

	spec := h.Spec()
	idSet := spec.Classes.ID
	i := 0
	for i < len(full) && idSet.Contains(full[i]) {
		i++
	}
	if i == 0 {
		return h.Fatalf("#define: %q is not a valid macro name", full)
	}
	name := full[:i]
	rem := full[i:]

	var named []string
	hasArgList := false
	argStart := string(spec.User.ArgStart.Literals())
	if argStart != "" && strings.HasPrefix(rem, argStart) {
		argSep := string(spec.User.ArgSep.Literals())
		argEnd := string(spec.User.ArgEnd.Literals())
		closeIdx := strings.Index(rem, argEnd)
		if closeIdx < 0 {
			return h.Fatalf("#define %s: unterminated parameter list", name)
		}
		paramText := rem[len(argStart):closeIdx]
		rem = rem[closeIdx+len(argEnd):]
		hasArgList = true
		if strings.TrimSpace(paramText) != "" {
			for _, p := range strings.Split(paramText, argSep) {
				named = append(named, strings.TrimSpace(p))
			}
			if dup := collections.FindDuplicates(named); len(dup) > 0 {
				return h.Fatalf("#define %s: duplicate parameter name %q", name, dup[0])
			}
		}
	}
	body := strings.TrimLeft(rem, " \t")

	if eager {
		expanded, err := h.Expand(body)
		if err != nil {
			return err
		}
		body = expanded
	}

	m := &macro.Macro{
		Name:       name,
		Body:       body,
		NamedArgs:  named,
		NNamedArgs: len(named),
		Spec:       spec.Clone(),
		HasArgList: hasArgList,
	}
	h.Macros().Define(m)
	return nil
}

func handleUndef(h Host, args []string) error {
	name := strings.TrimSpace(arg(args, 0))
	if name == "" {
		return h.Fatalf("#undef requires a macro name")
	}
	h.Macros().Undef(name)
	return nil
}
