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

// Package eval implements the arithmetic evaluator of spec.md §4.6: a
// recursive-descent parser that, at every precedence level, scans its
// input right-to-left for the lowest-precedence operator present
// (respecting parenthesis nesting) rather than the usual left-to-right
// token stream, matching gpp.c's ArithmEval. By the time text reaches
// here it has already been macro-expanded (including the phantom
// `defined(x)` macro, spec.md §4.4, which internal/directive substitutes
// before expansion), so this package
// never resolves identifiers itself.
package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Value is either a numeric result or a fallback string, mirroring gpp.c's
// dual int/string comparison result (spec.md §4.6 "falls back to a
// whitespace-trimmed string comparison").
type Value struct {
	Num   int
	IsNum bool
	Text  string
}

// String renders v's canonical textual form: the decimal string of Num
// when numeric, else the original text.
func (v Value) String() string {
	if v.IsNum {
		return strconv.Itoa(v.Num)
	}
	return v.Text
}

func numValue(n int) Value    { return Value{Num: n, IsNum: true, Text: strconv.Itoa(n)} }
func strValue(s string) Value { return Value{Text: s} }

func boolValue(b bool) Value {
	if b {
		return numValue(1)
	}
	return numValue(0)
}

// precedence levels, lowest first; each entry is tried as a whole before
// moving to the next (spec.md §4.6's table, low to high).
var precedenceLevels = [][]string{
	{"||"},
	{"&&"},
	{"|"},
	{"^"},
	{"&"},
	{"!=", "==", "=~"},
	{">=", "<=", ">", "<"},
	{"+", "-"},
	{"*", "/", "%"},
}

// Eval parses and evaluates expr, returning its Value. A malformed
// expression (unbalanced parens, division by zero, an unsupported
// operator) is an error; the caller decides whether a parse/operand
// error should itself fall back to treating expr as inert text (spec.md
// §4.6: "the caller of the evaluator emits either the integer ... or the
// unevaluable expanded text").
func Eval(expr string) (Value, error) {
	p := &parser{s: expr}
	v, err := p.parseLevel(0)
	if err != nil {
		return Value{}, err
	}
	rest := strings.TrimSpace(p.s[p.pos:])
	if rest != "" {
		return Value{}, fmt.Errorf("eval: unexpected trailing input %q", rest)
	}
	return v, nil
}

type parser struct {
	s   string
	pos int
}

// parseLevel evaluates precedenceLevels[level:], delegating to
// parseUnary once every binary level is exhausted.
func (p *parser) parseLevel(level int) (Value, error) {
	if level >= len(precedenceLevels) {
		return p.parseUnary()
	}
	span := p.remaining()
	idx, op, ok := splitLowestPrecedenceRTL(span, precedenceLevels[level])
	if !ok {
		return p.parseLevel(level + 1)
	}
	leftText := span[:idx]
	rightText := span[idx+len(op):]

	left, err := (&parser{s: leftText}).parseLevel(level)
	if err != nil {
		return Value{}, err
	}
	right, err := (&parser{s: rightText}).parseLevel(level + 1)
	if err != nil {
		return Value{}, err
	}
	p.pos = len(p.s)
	return applyBinary(op, left, right)
}

func (p *parser) remaining() string { return p.s[p.pos:] }

// parseUnary handles ~, !, unary -, then primary.
func (p *parser) parseUnary() (Value, error) {
	lead := len(p.remaining()) - len(strings.TrimLeft(p.remaining(), " \t"))
	p.pos += lead
	if p.pos < len(p.s) {
		switch p.s[p.pos] {
		case '~':
			p.pos++
			v, err := p.parseUnary()
			if err != nil {
				return Value{}, err
			}
			n, err := requireInt(v)
			if err != nil {
				return Value{}, err
			}
			return numValue(^n), nil
		case '!':
			p.pos++
			v, err := p.parseUnary()
			if err != nil {
				return Value{}, err
			}
			n, err := requireInt(v)
			if err != nil {
				return Value{}, err
			}
			return boolValue(n == 0), nil
		case '-':
			// Only unary if not immediately following a value (parseLevel
			// already stripped binary '-' cases at this recursion point,
			// so any '-' reaching here is a leading sign).
			p.pos++
			v, err := p.parseUnary()
			if err != nil {
				return Value{}, err
			}
			n, err := requireInt(v)
			if err != nil {
				return Value{}, err
			}
			return numValue(-n), nil
		}
	}
	return p.parsePrimary()
}

// parsePrimary handles length(...), parenthesized sub-expressions, and
// integer/text leaves.
func (p *parser) parsePrimary() (Value, error) {
	s := p.remaining()
	trimmed := strings.TrimLeft(s, " \t")
	p.pos += len(s) - len(trimmed)
	s = trimmed

	if strings.HasPrefix(s, "length(") || strings.HasPrefix(s, "length (") {
		open := strings.IndexByte(s, '(')
		inner, after, ok := matchParens(s, open)
		if !ok {
			return Value{}, fmt.Errorf("eval: unterminated length(...)")
		}
		innerVal, err := Eval(inner)
		if err != nil {
			// length() measures literal text even when that text isn't a
			// valid arithmetic expression on its own.
			innerVal = strValue(strings.TrimSpace(inner))
		}
		p.pos += after
		return numValue(len(innerVal.String())), nil
	}

	if strings.HasPrefix(s, "(") {
		inner, after, ok := matchParens(s, 0)
		if !ok {
			return Value{}, fmt.Errorf("eval: unbalanced parentheses")
		}
		v, err := Eval(inner)
		if err != nil {
			return Value{}, err
		}
		p.pos += after
		return v, nil
	}

	// A bare leaf: everything up to the next unconsumed operator/paren
	// was already isolated by parseLevel's split, so the whole remainder
	// at this point is the leaf text.
	leaf := strings.TrimSpace(s)
	p.pos = len(p.s)
	if leaf == "" {
		return Value{}, fmt.Errorf("eval: empty operand")
	}
	if n, err := strconv.ParseInt(leaf, 0, 64); err == nil {
		return numValue(int(n)), nil
	}
	return strValue(leaf), nil
}

// matchParens, given s[open] == '(', returns the text strictly between
// the matching parens and the byte offset just past the closing paren.
func matchParens(s string, open int) (inner string, after int, ok bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[open+1 : i], i + 1, true
			}
		}
	}
	return "", 0, false
}

// splitLowestPrecedenceRTL scans s right-to-left for the first (i.e.
// rightmost) occurrence of any op in ops that sits at paren depth 0,
// matching gpp.c's right-to-left precedence scan (spec.md §4.6). Longer
// operators are listed before their prefixes in ops (">=" before ">",
// "<=" before "<"), so at a given position the longer one is tried first
// and ">=" is never mis-split as ">".
func splitLowestPrecedenceRTL(s string, ops []string) (idx int, op string, found bool) {
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
			continue
		case '(':
			depth--
			continue
		}
		if depth != 0 {
			continue
		}
		for _, o := range ops {
			if i+len(o) <= len(s) && s[i:i+len(o)] == o {
				if i == 0 {
					continue // leading sign / unary, not a binary split point
				}
				return i, o, true
			}
		}
	}
	return 0, "", false
}

func requireInt(v Value) (int, error) {
	if v.IsNum {
		return v.Num, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v.Text), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("eval: %q is not an integer", v.Text)
	}
	return int(n), nil
}

func applyBinary(op string, left, right Value) (Value, error) {
	switch op {
	case "==", "!=", "<", "<=", ">", ">=":
		return compare(op, left, right)
	case "=~":
		ok, err := doublestar.Match(right.String(), left.String())
		if err != nil {
			return Value{}, fmt.Errorf("eval: =~ %w", err)
		}
		return boolValue(ok), nil
	}
	l, err := requireInt(left)
	if err != nil {
		return Value{}, err
	}
	r, err := requireInt(right)
	if err != nil {
		return Value{}, err
	}
	switch op {
	case "||":
		return boolValue(l != 0 || r != 0), nil
	case "&&":
		return boolValue(l != 0 && r != 0), nil
	case "|":
		return numValue(l | r), nil
	case "^":
		return numValue(l ^ r), nil
	case "&":
		return numValue(l & r), nil
	case "+":
		return numValue(l + r), nil
	case "-":
		return numValue(l - r), nil
	case "*":
		return numValue(l * r), nil
	case "/":
		if r == 0 {
			return Value{}, fmt.Errorf("eval: division by zero")
		}
		return numValue(l / r), nil
	case "%":
		if r == 0 {
			return Value{}, fmt.Errorf("eval: modulo by zero")
		}
		return numValue(l % r), nil
	}
	return Value{}, fmt.Errorf("eval: unknown operator %q", op)
}

// compare implements the numeric-with-string-fallback rule: if either
// operand fails to parse as an integer, both are compared as
// whitespace-trimmed strings instead (spec.md §4.6).
func compare(op string, left, right Value) (Value, error) {
	ln, lerr := requireInt(left)
	rn, rerr := requireInt(right)
	if lerr == nil && rerr == nil {
		switch op {
		case "==":
			return boolValue(ln == rn), nil
		case "!=":
			return boolValue(ln != rn), nil
		case "<":
			return boolValue(ln < rn), nil
		case "<=":
			return boolValue(ln <= rn), nil
		case ">":
			return boolValue(ln > rn), nil
		case ">=":
			return boolValue(ln >= rn), nil
		}
	}
	ls := strings.TrimSpace(left.String())
	rs := strings.TrimSpace(right.String())
	cmp := strings.Compare(ls, rs)
	switch op {
	case "==":
		return boolValue(cmp == 0), nil
	case "!=":
		return boolValue(cmp != 0), nil
	case "<":
		return boolValue(cmp < 0), nil
	case "<=":
		return boolValue(cmp <= 0), nil
	case ">":
		return boolValue(cmp > 0), nil
	case ">=":
		return boolValue(cmp >= 0), nil
	}
	return Value{}, fmt.Errorf("eval: unknown comparison %q", op)
}
