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
	"strings"

	"github.com/gofilecheck/gocheck/internal/source"
)

// contextRadius bounds how much of the input surrounding the cursor is
// printed alongside a failure.
const contextRadius = 80

// Report writes a human-readable rendering of err to w: the check-file
// location, the cursor's current input location, and the current
// matching range with already-matched CHECK-DAG holes grayed out.
func Report(w io.Writer, c Colorizer, err error, file *source.File) {
	switch e := err.(type) {
	case *ParseError:
		fmt.Fprintf(w, "%s\n", c.Error(fmt.Sprintf("parse error at %s:%d:%d: %s", file.Name, e.Line, e.Column+1, e.Msg)))
		fmt.Fprintf(w, "  %s\n", e.Text)
		return
	case *CheckError:
		fmt.Fprintf(w, "%s\n", c.Error(fmt.Sprintf("%s: %s", file.Name, e.Error())))
		printCursorContext(w, c, file)
		return
	case *ErrorOnMatch:
		fmt.Fprintf(w, "%s\n", c.Error(fmt.Sprintf("%s:%d: %s", file.Name, e.Op.SourceLine, e.Error())))
		printCursorContext(w, c, file)
		return
	default:
		fmt.Fprintf(w, "%s\n", c.Error(err.Error()))
	}
}

// printCursorContext prints the input text around the current cursor
// position, dimming any CHECK-DAG holes that fall within the printed
// window.
func printCursorContext(w io.Writer, c Colorizer, file *source.File) {
	pos := file.Range.Start
	start := max(0, pos-contextRadius)
	end := min(len(file.Content), pos+contextRadius)

	fmt.Fprintf(w, "  at input line %d:\n", file.LineNo)

	if !file.Range.IsDiscontiguous() {
		fmt.Fprintf(w, "    %s\n", strings.ReplaceAll(file.Content[start:end], "\n", `\n`))
		return
	}

	var b strings.Builder
	cursor := start
	for _, hole := range file.Range.Holes {
		hs, he := max(hole.Start, start), min(hole.End, end)
		if hs >= he {
			continue
		}
		b.WriteString(file.Content[cursor:hs])
		b.WriteString(c.Dim(file.Content[hs:he]))
		cursor = he
	}
	b.WriteString(file.Content[cursor:end])
	fmt.Fprintf(w, "    %s\n", strings.ReplaceAll(b.String(), "\n", `\n`))
}
