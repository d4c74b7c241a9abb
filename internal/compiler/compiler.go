// Copyright 2026 The GoCheck Authors. All rights reserved.
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

// Package compiler lowers a directive's micro-ops, together with the live
// variable environment, into either a regex-backed or literal Matcher plus
// a capture map the matcher engine uses to bind the environment after a
// successful match.
package compiler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofilecheck/gocheck/internal/env"
	"github.com/gofilecheck/gocheck/internal/numexpr"
	"github.com/gofilecheck/gocheck/internal/ops"
	"github.com/gofilecheck/gocheck/internal/source"
	"github.com/gofilecheck/gocheck/internal/uop"
)

// Capture records where a named capture landed in the compiled pattern and
// how to convert its matched text into an environment value.
type Capture struct {
	Group  int
	Mapper uop.Mapper
}

// Compiled is a directive's compiled form: a Matcher the cursor can drive,
// and the capture bindings to apply on a successful match.
type Compiled struct {
	Matcher  source.Matcher
	Captures map[string]Capture
}

// emptyPattern is CHECK-EMPTY's fixed pattern: the rest of the current
// line followed by a blank line.
const emptyPattern = `[^\n]*\n\n`

// Compile lowers op's micro-ops against vars into a Compiled matcher.
// strictWhitespace disables the default whitespace-run collapsing, per
// spec.md §4.3/§4.4: a literal space or tab in the directive then matches
// only that exact character, not an arbitrary run of whitespace.
func Compile(op ops.CheckOp, vars env.Env, strictWhitespace bool) (*Compiled, error) {
	if op.Kind == ops.Empty {
		re, err := regexp.Compile("(?m)" + emptyPattern)
		if err != nil {
			return nil, fmt.Errorf("CHECK-EMPTY: malformed regex: %w", err)
		}
		return &Compiled{Matcher: &regexMatcher{re: re}}, nil
	}

	if lit, ok := literalFastPath(op.UOps, vars); ok {
		return &Compiled{Matcher: newLiteralMatcher(lit, op.Kind == ops.Next, strictWhitespace)}, nil
	}

	var b strings.Builder
	if op.Kind == ops.Next {
		b.WriteString(`\n?[^\n]*`)
	}

	captures := map[string]Capture{}
	group := 0 // group 0 is the whole match; named captures start at 1
	seen := map[string]int{}

	for _, u := range op.UOps {
		switch v := u.(type) {
		case uop.Literal:
			b.WriteString(escapeLiteral(v.Text, strictWhitespace))

		case uop.Regex:
			p := v.Pattern
			if hasTopLevelAlternation(p) {
				p = "(?:" + p + ")"
			}
			b.WriteString(p)
			group += countGroups(p)

		case uop.Capture:
			group++
			seen[v.Name] = group
			captures[v.Name] = Capture{Group: group, Mapper: v.ValueMapper}
			b.WriteString("(" + v.Pattern + ")")
			group += countGroups(v.Pattern)

		case uop.Subst:
			if g, ok := seen[v.Name]; ok {
				b.WriteString(`\` + strconv.Itoa(g))
				continue
			}
			val, ok := vars.Lookup(v.Name)
			if !ok {
				return nil, fmt.Errorf("using variable %q before its first definition", v.Name)
			}
			b.WriteString(escapeLiteral(val.String(), strictWhitespace))

		case uop.PseudoVar:
			b.WriteString(strconv.Itoa(op.SourceLine + v.Offset))

		case uop.NumSubst:
			val, err := evalNumSubst(v, vars, op.SourceLine)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op.CheckName(), err)
			}
			b.WriteString(strconv.Itoa(val))

		default:
			return nil, fmt.Errorf("%s: unhandled micro-op %T", op.CheckName(), u)
		}
	}

	re, err := regexp.Compile("(?m)" + b.String())
	if err != nil {
		return nil, fmt.Errorf("%s: malformed regex: %w", op.CheckName(), err)
	}
	return &Compiled{Matcher: &regexMatcher{re: re}, Captures: captures}, nil
}

// evalNumSubst evaluates a NumSubst micro-op's expression, or treats a
// bare name (no expression) as a plain variable reference.
func evalNumSubst(n uop.NumSubst, vars env.Env, line int) (int, error) {
	if n.Expr == "" {
		val, ok := vars.Lookup(n.Name)
		if !ok {
			return 0, fmt.Errorf("variable %s referenced before assignment", n.Name)
		}
		i, isInt := val.Int()
		if !isInt {
			return 0, fmt.Errorf("variable %s does not hold a numeric value", n.Name)
		}
		return i, nil
	}
	expr, err := numexpr.Parse(n.Expr)
	if err != nil {
		return 0, err
	}
	return expr.Eval(vars, line)
}

// literalFastPath reports whether op's micro-ops are exclusively Literal
// and Subst-over-already-bound-variables, returning the fully resolved
// literal text if so.
func literalFastPath(uops []uop.Op, vars env.Env) (string, bool) {
	var b strings.Builder
	for _, u := range uops {
		switch v := u.(type) {
		case uop.Literal:
			b.WriteString(v.Text)
		case uop.Subst:
			val, ok := vars.Lookup(v.Name)
			if !ok {
				return "", false
			}
			b.WriteString(val.String())
		default:
			return "", false
		}
	}
	return b.String(), true
}

// escapeLiteral quotes s for literal inclusion in a regex. In default
// (non-strict) mode, consecutive whitespace characters collapse to a
// single run-matching fragment, since plain whitespace is not meaningful
// for alignment in FileCheck input; under --strict-whitespace every
// character, including runs of spaces and tabs, is escaped and emitted
// verbatim instead.
func escapeLiteral(s string, strictWhitespace bool) string {
	if strictWhitespace {
		return regexp.QuoteMeta(s)
	}
	var b strings.Builder
	runWS := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			runWS = true
			continue
		}
		if runWS {
			b.WriteString(`\s+`)
			runWS = false
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	if runWS {
		b.WriteString(`\s+`)
	}
	return b.String()
}

// countGroups counts unescaped capturing '(' in p (non-capturing "(?"
// groups are excluded).
func countGroups(p string) int {
	n := 0
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\':
			i++
		case '(':
			if i+1 < len(p) && p[i+1] == '?' {
				continue
			}
			n++
		}
	}
	return n
}

// hasTopLevelAlternation reports whether p contains a '|' outside of any
// group, meaning it must be wrapped before being concatenated with
// neighbouring pattern fragments.
func hasTopLevelAlternation(p string) bool {
	depth := 0
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}
