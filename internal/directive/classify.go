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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofilecheck/gocheck/internal/env"
	"github.com/gofilecheck/gocheck/internal/regextrans"
	"github.com/gofilecheck/gocheck/internal/uop"
)

var (
	pseudoLineRe = regexp.MustCompile(`^\s*@LINE\s*([+-]\s*[0-9]+)?\s*$`)
	numCaptureRe = regexp.MustCompile(`^%(?:\.([0-9]+))?([udxX])?,(.*)$`)
	identInitRe  = regexp.MustCompile(`^([A-Za-z_$][A-Za-z0-9_$]*)(?::(-?[0-9]+))?$`)
	identRe      = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// classifyBracket classifies the contents of one "[[...]]" token into its
// micro-op form, per the form table.
func classifyBracket(body string) (uop.Op, error) {
	if strings.HasPrefix(body, "#") {
		return classifyNumeric(strings.TrimPrefix(body, "#"))
	}

	if idx := strings.Index(body, ":"); idx >= 0 {
		name, pattern := body[:idx], body[idx+1:]
		if !identRe.MatchString(name) {
			return nil, fmt.Errorf("invalid capture name %q", name)
		}
		translated, err := regextrans.ToGoRegex(pattern)
		if err != nil {
			return nil, err
		}
		return uop.Capture{Name: name, Pattern: translated, ValueMapper: uop.StrMapper}, nil
	}

	if !identRe.MatchString(body) {
		return nil, fmt.Errorf("invalid substitution %q", body)
	}
	return uop.Subst{Name: body}, nil
}

// classifyNumeric classifies the body of a "#"-prefixed numeric form.
func classifyNumeric(body string) (uop.Op, error) {
	if m := pseudoLineRe.FindStringSubmatch(body); m != nil {
		offset := 0
		if m[1] != "" {
			signed := strings.ReplaceAll(m[1], " ", "")
			n, err := strconv.Atoi(signed)
			if err != nil {
				return nil, fmt.Errorf("malformed @LINE offset %q", m[1])
			}
			offset = n
		}
		return uop.PseudoVar{Offset: offset}, nil
	}

	if m := numCaptureRe.FindStringSubmatch(body); m != nil {
		digits, encLetter, rest := m[1], m[2], m[3]
		idMatch := identInitRe.FindStringSubmatch(rest)
		if idMatch == nil {
			return nil, fmt.Errorf("invalid numeric capture name %q", rest)
		}
		name := idMatch[1]
		encoding := regextrans.Unsigned
		if encLetter != "" {
			encoding = regextrans.NumEncoding(encLetter[0])
		}
		pattern, toInt := regextrans.PatternFromNumSubstSpec(digits, encoding)
		return uop.Capture{Name: name, Pattern: pattern, ValueMapper: numericMapper(toInt)}, nil
	}

	// Bare NAME, optionally followed by a numeric expression: "NAME" alone
	// is a plain substitution; with anything trailing NAME the whole body
	// (e.g. "REG+1") is the expression the compiler evaluates via
	// internal/numexpr.
	name, expr := splitLeadingIdent(body)
	if name == "" {
		return nil, fmt.Errorf("invalid numeric substitution %q", body)
	}
	if expr == "" {
		return uop.Subst{Name: name}, nil
	}
	return uop.NumSubst{Name: name, Expr: strings.TrimSpace(body)}, nil
}

// splitLeadingIdent splits body into its leading identifier and the
// (unparsed, possibly empty) remainder.
func splitLeadingIdent(body string) (name, rest string) {
	i := 0
	for i < len(body) && (isIdentChar(body[i]) && !(i == 0 && isDigit(body[i]))) {
		i++
	}
	return body[:i], strings.TrimSpace(body[i:])
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '$'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// numericMapper wraps a numeric-substitution spec's string-to-int
// converter as an env.Value-producing uop.Mapper.
func numericMapper(toInt func(string) (int, error)) uop.Mapper {
	return func(matched string) env.Value {
		n, err := toInt(matched)
		if err != nil {
			return env.Str(matched)
		}
		return env.Int(n)
	}
}
