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

// Package uop implements the micro-op model: the atomic, tagged-variant
// pieces a directive argument is lowered into before compilation.
//
// The closed-interface-over-small-structs shape follows the teacher's Expr
// AST in language/internal/cc/parser/expr.go (Defined, Not, And, Or,
// Compare, Apply, Ident, ConstantInt all implementing a single Expr
// interface) rather than a Go "sum type" workaround; dispatch over the
// variant happens with a type switch in the compiler, exactly as the
// teacher dispatches over Expr in its own Eval methods.
package uop

import (
	"fmt"

	"github.com/gofilecheck/gocheck/internal/env"
)

// Mapper converts matched text into the value that should be stored for a
// named capture: a plain string, an unsigned/signed/hex integer, etc.
type Mapper func(matched string) env.Value

// Op is implemented by every micro-op variant. It exists purely to close
// the set of valid types a compiler switch must handle; it carries no
// behaviour of its own.
type Op interface {
	isOp()
	fmt.Stringer
}

// Literal matches text verbatim (whitespace-collapsing unless
// strict-whitespace mode is active).
type Literal struct {
	Text string
}

// Regex is an inline, already-dialect-translated regex fragment.
type Regex struct {
	Pattern string
}

// Capture introduces a named capture group. Pattern is the (already
// dialect-translated) regex the group must match; ValueMapper converts the
// matched text to the value stored under Name in the environment.
type Capture struct {
	Name        string
	Pattern     string
	ValueMapper Mapper
}

// Subst substitutes the current value of a variable as an escaped literal,
// or - if the named capture occurs earlier in the same directive - a
// backreference to that capture's group.
type Subst struct {
	Name string
}

// NumSubst is a numeric substitution with a derived expression, e.g.
// `[[#REG+1]]`. Expr is the raw, unparsed expression text; internal/numexpr
// parses and evaluates it against the live environment and current source
// line at compile time.
type NumSubst struct {
	Name string
	Expr string
}

// PseudoVar renders as the decimal value of (current source line + Offset),
// implementing `[[# @LINE +/- k]]`.
type PseudoVar struct {
	Offset int
}

func (Literal) isOp()   {}
func (Regex) isOp()     {}
func (Capture) isOp()   {}
func (Subst) isOp()     {}
func (NumSubst) isOp()  {}
func (PseudoVar) isOp() {}

func (l Literal) String() string { return fmt.Sprintf("Literal(%q)", l.Text) }
func (r Regex) String() string   { return fmt.Sprintf("Regex(%q)", r.Pattern) }
func (c Capture) String() string { return fmt.Sprintf("Capture(%s:%q)", c.Name, c.Pattern) }
func (s Subst) String() string   { return fmt.Sprintf("Subst(%s)", s.Name) }
func (n NumSubst) String() string {
	return fmt.Sprintf("NumSubst(%s, %q)", n.Name, n.Expr)
}
func (p PseudoVar) String() string { return fmt.Sprintf("PseudoVar(%+d)", p.Offset) }

// StrMapper stores the matched text verbatim as a string value.
func StrMapper(matched string) env.Value { return env.Str(matched) }
