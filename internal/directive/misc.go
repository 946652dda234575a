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
	"strconv"
	"strings"

	"github.com/gpp-go/gpp/internal/eval"
)

// handleEval implements #eval: the expanded expression is evaluated
// arithmetically and its result (numeric, or the expanded text itself if
// it wasn't a valid expression) is spliced into the output (spec.md
// §4.6).
func handleEval(h Host, rawExpr string) (string, error) {
	substituted := substituteDefined(h.Macros(), rawExpr)
	expanded, err := h.Expand(substituted)
	if err != nil {
		return "", err
	}
	v, err := eval.Eval(expanded)
	if err != nil {
		return expanded, nil
	}
	return v.String(), nil
}

func handleError(h Host, rawMsg string) error {
	expanded, err := h.Expand(rawMsg)
	if err != nil {
		return err
	}
	return h.Fatalf("%s", strings.TrimSpace(expanded))
}

func handleWarning(h Host, rawMsg string) error {
	expanded, err := h.Expand(rawMsg)
	if err != nil {
		return err
	}
	h.Warn("%s", strings.TrimSpace(expanded))
	return nil
}

func handleLine(h Host, args []string) error {
	expanded, err := h.Expand(rest(args, 0))
	if err != nil {
		return err
	}
	n, perr := strconv.Atoi(strings.TrimSpace(expanded))
	if perr != nil {
		return h.Fatalf("#line: %q is not a line number", strings.TrimSpace(expanded))
	}
	h.SetLocation("", n)
	return nil
}

func handleFile(h Host, args []string) error {
	expanded, err := h.Expand(rest(args, 0))
	if err != nil {
		return err
	}
	name := strings.Trim(strings.TrimSpace(expanded), `"`)
	h.SetLocation(name, 0)
	return nil
}
