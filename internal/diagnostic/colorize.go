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

package diagnostic

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Colorizer decorates diagnostic text for a terminal. spec.md scopes
// terminal color formatting out as an external collaborator; callers
// inject whichever implementation fits their output stream.
type Colorizer interface {
	Error(s string) string
	Note(s string) string
	Matched(s string) string
	Dim(s string) string // already-matched CHECK-DAG holes, grayed out
}

// NoopColorizer returns its input unchanged.
type NoopColorizer struct{}

func (NoopColorizer) Error(s string) string   { return s }
func (NoopColorizer) Note(s string) string    { return s }
func (NoopColorizer) Matched(s string) string { return s }
func (NoopColorizer) Dim(s string) string     { return s }

// ANSIColorizer wraps text in SGR escape codes, matching
// original_source/filecheck/colors.py's ERR (bold red) and FMT (bold)
// constants.
type ANSIColorizer struct{}

func (ANSIColorizer) Error(s string) string   { return wrap(s, "1;31") }
func (ANSIColorizer) Note(s string) string    { return wrap(s, "1;36") }
func (ANSIColorizer) Matched(s string) string { return wrap(s, "1;32") }
func (ANSIColorizer) Dim(s string) string     { return wrap(s, "2") }

func wrap(s, code string) string {
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", code, s)
}

// SelectColorizer picks a Colorizer for w given the --color flag value
// ("auto", "always", "never"): auto detects a terminal the way the wider
// example pack's CLIs do, via golang.org/x/term.IsTerminal.
func SelectColorizer(mode string, w io.Writer) Colorizer {
	switch mode {
	case "always":
		return ANSIColorizer{}
	case "never":
		return NoopColorizer{}
	default:
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return ANSIColorizer{}
		}
		return NoopColorizer{}
	}
}
