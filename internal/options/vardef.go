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

package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofilecheck/gocheck/internal/env"
)

// ParseVarDef parses one -D definition, "name" or "name=value". Unlike the
// C preprocessor convention a bare name defaults to the empty string, not
// "1" — FileCheck variables are ordinary string/int values, not boolean
// presence flags.
func ParseVarDef(definition string) (string, env.Value, error) {
	definition = strings.TrimPrefix(definition, "-D")
	name, value := definition, ""
	if eq := strings.Index(definition, "="); eq >= 0 {
		name, value = definition[:eq], definition[eq+1:]
	}
	if name == "" {
		return "", env.Value{}, fmt.Errorf("invalid -D definition %q: missing variable name", definition)
	}
	if n, err := strconv.Atoi(value); err == nil {
		return name, env.Int(n), nil
	}
	return name, env.Str(value), nil
}

// ParseVarDefs parses every definition, accumulating all failures via
// errors.Join before returning, so a caller sees every malformed -D at
// once rather than just the first.
func ParseVarDefs(definitions []string) (env.Env, error) {
	out := env.New()
	var errs []error
	for _, d := range definitions {
		name, value, err := ParseVarDef(d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out.Set(name, value)
	}
	return out, errors.Join(errs...)
}
