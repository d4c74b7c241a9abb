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

// Package numexpr implements the minimal numeric-substitution expression
// grammar spec.md's Open Question (b) calls for: integer literals, named
// variables, the `@LINE` pseudo-variable, parenthesization, and binary
// `+`/`-`.
//
// The AST shape is grounded on the teacher's #if expression evaluator in
// language/internal/cc/parser/expr.go: a closed Expr interface with one
// small struct per node kind, each implementing Eval against an
// environment. Here Eval returns an arithmetic int instead of a tri-state
// boolean, and the environment is the live capture map instead of a
// preprocessor macro table.
package numexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofilecheck/gocheck/internal/env"
)

// Expr is a parsed numeric-substitution expression.
type Expr interface {
	fmt.Stringer
	// Eval evaluates the expression against vars and the current source
	// line (for @LINE).
	Eval(vars env.Env, line int) (int, error)
}

// ConstantInt is an integer literal.
type ConstantInt int

// Ident is a named-variable reference, e.g. `REG` in `REG+1`.
type Ident string

// AtLine is the `@LINE` pseudo-variable.
type AtLine struct{}

// Add is `L + R`.
type Add struct{ L, R Expr }

// Sub is `L - R`.
type Sub struct{ L, R Expr }

// Neg is unary `-X`.
type Neg struct{ X Expr }

func (e ConstantInt) String() string { return strconv.Itoa(int(e)) }
func (e Ident) String() string       { return string(e) }
func (AtLine) String() string        { return "@LINE" }
func (e Add) String() string         { return fmt.Sprintf("(%s + %s)", e.L, e.R) }
func (e Sub) String() string         { return fmt.Sprintf("(%s - %s)", e.L, e.R) }
func (e Neg) String() string         { return fmt.Sprintf("-%s", e.X) }

func (e ConstantInt) Eval(env.Env, int) (int, error) { return int(e), nil }
func (AtLine) Eval(_ env.Env, line int) (int, error) { return line, nil }
func (e Ident) Eval(vars env.Env, _ int) (int, error) {
	v, ok := vars.Lookup(string(e))
	if !ok {
		return 0, fmt.Errorf("variable %s referenced before assignment", string(e))
	}
	i, isInt := v.Int()
	if !isInt {
		return 0, fmt.Errorf("variable %s does not hold a numeric value", string(e))
	}
	return i, nil
}
func (e Add) Eval(vars env.Env, line int) (int, error) {
	l, err := e.L.Eval(vars, line)
	if err != nil {
		return 0, err
	}
	r, err := e.R.Eval(vars, line)
	if err != nil {
		return 0, err
	}
	return l + r, nil
}
func (e Sub) Eval(vars env.Env, line int) (int, error) {
	l, err := e.L.Eval(vars, line)
	if err != nil {
		return 0, err
	}
	r, err := e.R.Eval(vars, line)
	if err != nil {
		return 0, err
	}
	return l - r, nil
}
func (e Neg) Eval(vars env.Env, line int) (int, error) {
	x, err := e.X.Eval(vars, line)
	if err != nil {
		return 0, err
	}
	return -x, nil
}

// Parse parses a numeric-substitution expression: the body of
// `[[#<expr>]]` after the leading '#', e.g. `REG+1`. An empty expr is not
// valid input to Parse; callers treat an empty expression as "no
// expression" before calling Parse.
func Parse(expr string) (Expr, error) {
	p := &parser{toks: tokenize(expr)}
	e, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("malformed numeric expression %q: %w", expr, err)
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("malformed numeric expression %q: unexpected %q", expr, p.toks[p.pos])
	}
	return e, nil
}

type tokKind int

const (
	tokNum tokKind = iota
	tokIdent
	tokAtLine
	tokPlus
	tokMinus
	tokLParen
	tokRParen
)

type token struct {
	kind tokKind
	text string
}

func tokenize(s string) []string {
	// retained as []string for error messages; real classification happens
	// lazily in parser.peek via classify().
	var out []string
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '+' || c == '-' || c == '(' || c == ')':
			out = append(out, string(c))
			i++
		case c == '@':
			j := i + 1
			for j < len(s) && (isAlnum(s[j]) || s[j] == '_') {
				j++
			}
			out = append(out, s[i:j])
			i = j
		default:
			j := i
			for j < len(s) && (isAlnum(s[j]) || s[j] == '_' || s[j] == '$') {
				j++
			}
			if j == i {
				// unknown character, emit as its own single-char token so
				// the parser can report it
				out = append(out, string(c))
				i++
				continue
			}
			out = append(out, s[i:j])
			i = j
		}
	}
	return out
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func classify(tok string) token {
	switch {
	case tok == "+":
		return token{tokPlus, tok}
	case tok == "-":
		return token{tokMinus, tok}
	case tok == "(":
		return token{tokLParen, tok}
	case tok == ")":
		return token{tokRParen, tok}
	case strings.EqualFold(tok, "@LINE"):
		return token{tokAtLine, tok}
	case tok != "" && tok[0] >= '0' && tok[0] <= '9':
		return token{tokNum, tok}
	default:
		return token{tokIdent, tok}
	}
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return classify(p.toks[p.pos]), true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// parseExpr := term (('+'|'-') term)*
func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || (t.kind != tokPlus && t.kind != tokMinus) {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if t.kind == tokPlus {
			left = Add{L: left, R: right}
		} else {
			left = Sub{L: left, R: right}
		}
	}
}

// parseTerm := '-' term | '(' expr ')' | NUMBER | IDENT | '@LINE'
func (p *parser) parseTerm() (Expr, error) {
	t, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	switch t.kind {
	case tokMinus:
		inner, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return Neg{X: inner}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.next()
		if !ok || closing.kind != tokRParen {
			return nil, fmt.Errorf("missing closing ')'")
		}
		return inner, nil
	case tokNum:
		n, err := strconv.Atoi(t.text)
		if err != nil {
			return nil, fmt.Errorf("invalid integer literal %q", t.text)
		}
		return ConstantInt(n), nil
	case tokAtLine:
		return AtLine{}, nil
	case tokIdent:
		return Ident(t.text), nil
	default:
		return nil, fmt.Errorf("unexpected token %q", t.text)
	}
}
