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

package directive

import (
	"strings"

	"github.com/gofilecheck/gocheck/internal/diagnostic"
	"github.com/gofilecheck/gocheck/internal/regextrans"
	"github.com/gofilecheck/gocheck/internal/uop"
)

// tokenizeArgument splits arg on the alternation of "{{", "[[", "]]", "}}"
// into a sequence of micro-ops: literal text outside any bracket pair, and
// classified forms inside "[[...]]", and raw (dialect-translated) regex
// fragments inside "{{...}}".
func tokenizeArgument(arg string, lineNo int, sourceLine string, mlirEnabled bool) ([]uop.Op, error) {
	var out []uop.Op
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, uop.Literal{Text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(arg) {
		switch {
		case strings.HasPrefix(arg[i:], "[["):
			flush()
			end, err := findCloseBracket(arg, i+2)
			if err != nil {
				return nil, &diagnostic.ParseError{Line: lineNo, Column: i, Text: sourceLine, Msg: err.Error()}
			}
			op, err := classifyBracket(arg[i+2 : end])
			if err != nil {
				return nil, &diagnostic.ParseError{Line: lineNo, Column: i, Text: sourceLine, Msg: err.Error()}
			}
			out = append(out, op)
			i = end + 2

		case strings.HasPrefix(arg[i:], "{{"):
			flush()
			end, err := findCloseBrace(arg, i+2)
			if err != nil {
				return nil, &diagnostic.ParseError{Line: lineNo, Column: i, Text: sourceLine, Msg: err.Error()}
			}
			frag := unescapeBraces(arg[i+2 : end])
			if mlirEnabled {
				frag = regextrans.MLIRExtension(frag)
			}
			translated, err := regextrans.ToGoRegex(frag)
			if err != nil {
				return nil, &diagnostic.ParseError{Line: lineNo, Column: i, Text: sourceLine, Msg: err.Error()}
			}
			out = append(out, uop.Regex{Pattern: translated})
			i = end + 2

		case strings.HasPrefix(arg[i:], "]]"), strings.HasPrefix(arg[i:], "}}"):
			return nil, &diagnostic.ParseError{Line: lineNo, Column: i, Text: sourceLine, Msg: "unmatched closing bracket"}

		default:
			lit.WriteByte(arg[i])
			i++
		}
	}
	flush()
	return out, nil
}

// findCloseBracket locates the end of a "[[...]]" token starting at start
// (just past the opening "[["), tracking nested '['/']' bracket depth so
// an inner character class like [0-9] doesn't prematurely close the token.
func findCloseBracket(s string, start int) (int, error) {
	depth := 0
	i := start
	for i < len(s) {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			i += 2
		case strings.HasPrefix(s[i:], "]]") && depth == 0:
			return i, nil
		case s[i] == '[':
			depth++
			i++
		case s[i] == ']':
			depth--
			i++
		default:
			i++
		}
	}
	return -1, errUnterminated("[[")
}

// findCloseBrace locates the end of a "{{...}}" token starting at start
// (just past the opening "{{").
func findCloseBrace(s string, start int) (int, error) {
	i := start
	for i < len(s) {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			i += 2
		case strings.HasPrefix(s[i:], "}}"):
			return i, nil
		default:
			i++
		}
	}
	return -1, errUnterminated("{{")
}

func unescapeBraces(s string) string {
	return strings.NewReplacer(`\{`, "{", `\}`, "}").Replace(s)
}

type tokenizeError string

func (e tokenizeError) Error() string { return string(e) }

func errUnterminated(open string) error {
	return tokenizeError("unterminated " + open + " ... ")
}
