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

// Package env implements the live variable environment threaded through
// directive parsing and matching: a mapping from variable name to its last
// bound value, preloaded from -D definitions and updated by captures.
//
// The shape mirrors the teacher's platform macro table
// (language/internal/cc/macros.go's Macros map[string]int in the original
// gazelle_cc sources) generalized to hold strings as well as integers,
// since FileCheck captures are not restricted to numeric values.
package env

import "strconv"

// Value holds either a string or an integer variable value. Captures using
// a numeric value-mapper (unsigned/signed/hex) store an Int; every other
// capture, substitution, and -D definition without an explicit integer
// store a Str.
type Value struct {
	isInt bool
	i     int
	s     string
}

// String returns the value rendered the way it would be substituted back
// into a pattern: integers in base 10, strings verbatim.
func (v Value) String() string {
	if v.isInt {
		return strconv.Itoa(v.i)
	}
	return v.s
}

// Int returns the integer value and true if this Value was stored as an
// integer. Non-integer values return (0, false).
func (v Value) Int() (int, bool) {
	return v.i, v.isInt
}

// Str constructs a string-valued Value.
func Str(s string) Value { return Value{s: s} }

// Int constructs an integer-valued Value.
func Int(i int) Value { return Value{isInt: true, i: i} }

// Env is the live variable environment. The zero value is ready to use.
type Env map[string]Value

// New returns an empty environment.
func New() Env { return make(Env) }

// Clone returns a shallow copy of the environment; binding names in the
// copy leaves e unchanged.
func (e Env) Clone() Env {
	out := make(Env, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Lookup returns the value bound to name and whether it is defined.
func (e Env) Lookup(name string) (Value, bool) {
	v, ok := e[name]
	return v, ok
}

// Set binds name to value.
func (e Env) Set(name string, value Value) {
	e[name] = value
}

// PurgeNonPseudo removes every variable whose name does not start with '$',
// implementing --enable-var-scope's "purge on LABEL" rule. Pseudo/global
// variables (conventionally prefixed with '$', e.g. command-line -D
// definitions meant to persist) survive.
func (e Env) PurgeNonPseudo() {
	for name := range e {
		if len(name) == 0 || name[0] != '$' {
			delete(e, name)
		}
	}
}
