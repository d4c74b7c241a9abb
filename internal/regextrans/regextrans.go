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

// Package regextrans rewrites the source directive regex dialect (POSIX
// `[:class:]` forms, newline-sensitive negated classes, and the optional
// MLIR extension) into Go's RE2 dialect, and builds patterns for numeric
// substitution specs.
//
// Precompiling the small set of rewrite regexes at package scope follows
// the teacher's style in language/internal/cc/lexer/lexer.go, which keeps
// every token-matching regexp as a `var ( ... = regexp.MustCompile(...) )`
// block rather than compiling on every call.
package regextrans

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	posixClass = regexp.MustCompile(
		`\[:(alpha|upper|lower|digit|alnum|xdigit|space|blank):]`)

	posixReplacements = map[string]string{
		"alpha":  "A-Za-z",
		"upper":  "A-Z",
		"lower":  "a-z",
		"digit":  "0-9",
		"alnum":  "A-Za-z0-9",
		"xdigit": "A-Fa-f0-9",
		"space":  `\s`,
		"blank":  ` \t`,
	}

	// negatedSetWithoutNewline matches a negated bracket expression `[^...`
	// that does not already exclude \n, so it can be rewritten to also
	// exclude it (mirroring llvm::Regex::Newline semantics, where `.` and
	// `[^...]` never match '\n').
	negatedSetWithoutNewline = regexp.MustCompile(`([^\\]|^)\[\^((?:\\n)?)`)
)

// ToGoRegex translates the POSIX character-class macros and newline
// sensitivity of the source dialect into Go's regexp/syntax dialect.
// Unsupported classes produce an error naming the offending class.
func ToGoRegex(expr string) (string, error) {
	for {
		loc := posixClass.FindStringSubmatchIndex(expr)
		if loc == nil {
			break
		}
		class := expr[loc[2]:loc[3]]
		repl, ok := posixReplacements[class]
		if !ok {
			return "", fmt.Errorf("can't translate posix regex, unknown character set: %s", class)
		}
		expr = expr[:loc[0]] + repl + expr[loc[1]:]
	}

	expr = rewriteNegatedNewlines(expr)
	return expr, nil
}

// rewriteNegatedNewlines ensures every negated bracket expression in expr
// also excludes '\n', unless it already does.
func rewriteNegatedNewlines(expr string) string {
	return negatedSetWithoutNewline.ReplaceAllStringFunc(expr, func(m string) string {
		sub := negatedSetWithoutNewline.FindStringSubmatch(m)
		if sub[2] == `\n` {
			return m
		}
		return sub[1] + `[^\n`
	})
}

// MLIRExtension rewrites the MLIR-specific `\V` regex macro (an SSA-value
// name: `%` followed by a number or an identifier, with an optional
// `#index` suffix), enabled via the FILECHECK_FEATURE_ENABLE=MLIR_REGEX_CLS
// feature flag.
func MLIRExtension(expr string) string {
	return strings.ReplaceAll(expr, `\V`,
		`%([0-9]+|[A-Za-z_.$-][A-Za-z_.$0-9-]*)(#\d+)?`)
}

// NumEncoding is the requested rendering of a numeric-substitution capture.
type NumEncoding byte

const (
	// Unsigned renders as an unsigned decimal integer (the default).
	Unsigned NumEncoding = 'u'
	// Signed renders as an optionally-signed decimal integer.
	Signed NumEncoding = 'd'
	// LowerHex renders as lowercase hexadecimal.
	LowerHex NumEncoding = 'x'
	// UpperHex renders as uppercase hexadecimal.
	UpperHex NumEncoding = 'X'
)

// PatternFromNumSubstSpec builds the regex pattern and value-mapper for a
// numeric capture spec `(%.N[udxX],)?NAME[:INIT]?`: digits is the optional
// `.N` width (without the leading '.'), encoding is the optional
// u/d/x/X letter (Unsigned if zero).
func PatternFromNumSubstSpec(digits string, encoding NumEncoding) (pattern string, toInt func(string) (int, error)) {
	digitsExpr := "+"
	if digits != "" {
		digitsExpr = fmt.Sprintf("{%d}", mustAtoi(digits))
	}
	if encoding == 0 {
		encoding = Unsigned
	}
	switch encoding {
	case Signed:
		return fmt.Sprintf(`[+-]?\d%s`, digitsExpr), func(s string) (int, error) { return strconv.Atoi(s) }
	case LowerHex, UpperHex:
		cls := "a-f0-9"
		if encoding == UpperHex {
			cls = "A-F0-9"
		}
		return fmt.Sprintf(`[%s]%s`, cls, digitsExpr), func(s string) (int, error) {
			v, err := strconv.ParseInt(s, 16, 64)
			return int(v), err
		}
	default: // Unsigned
		return fmt.Sprintf(`\d%s`, digitsExpr), func(s string) (int, error) { return strconv.Atoi(s) }
	}
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
