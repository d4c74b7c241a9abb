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

// Package matcher implements the engine: it drives the input cursor
// through the compiled directive stream, dispatching on each directive's
// kind, deferring CHECK-NOT enforcement to flush points, and maintaining
// the discontiguous region CHECK-DAG directives punch holes into.
package matcher

import (
	"log"

	"github.com/gofilecheck/gocheck/internal/compiler"
	"github.com/gofilecheck/gocheck/internal/diagnostic"
	"github.com/gofilecheck/gocheck/internal/env"
	"github.com/gofilecheck/gocheck/internal/ops"
	"github.com/gofilecheck/gocheck/internal/source"
)

// Options configures matcher behaviour not already baked into compiled
// patterns.
type Options struct {
	EnableVarScope   bool
	MatchFullLines   bool
	RejectEmptyVars  bool
	Verbose          bool
	StrictWhitespace bool
}

// Engine runs a directive stream against a single input file.
type Engine struct {
	file   *source.File
	vars   env.Env
	opts   Options
	logger *log.Logger

	notQueue []ops.CheckOp
	negStart int // -1 when no NOT directives are pending
}

// New creates an engine over file with vars preloaded (e.g. from -D
// definitions). A nil logger falls back to log.Default().
func New(file *source.File, vars env.Env, opts Options, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{file: file, vars: vars, opts: opts, logger: logger, negStart: -1}
}

// Run executes every directive in order, stopping at the first failure.
func (e *Engine) Run(directives []ops.CheckOp) error {
	for _, op := range directives {
		if err := e.preHook(op); err != nil {
			return err
		}
		if err := e.dispatch(op); err != nil {
			return err
		}
		e.logAttempt(op)
		if err := e.postHook(op); err != nil {
			return err
		}
	}
	e.file.MoveTo(len(e.file.Content))
	return e.flushNot(len(e.file.Content))
}

// dispatchTable maps each directive kind to its action, per the
// function_table design spec.md calls for.
var dispatchTable = map[ops.Kind]func(*Engine, ops.CheckOp) error{
	ops.Check: func(e *Engine, op ops.CheckOp) error { _, err := e.matchEventually(op, false); return err },
	ops.Next:  func(e *Engine, op ops.CheckOp) error { _, err := e.matchEventually(op, true); return err },
	ops.Same:  func(e *Engine, op ops.CheckOp) error { _, err := e.matchThisLine(op); return err },
	ops.Dag:   (*Engine).matchDag,
	ops.Not:   (*Engine).enqueueNot,
	ops.Empty: (*Engine).matchEmpty,
	ops.Count: (*Engine).matchCount,
	ops.Label: (*Engine).advanceLabel,
}

func (e *Engine) dispatch(op ops.CheckOp) error {
	action, ok := dispatchTable[op.Kind]
	if !ok {
		return &diagnostic.CheckError{Op: op, Msg: "unhandled directive kind"}
	}
	return action(e, op)
}

func (e *Engine) enqueueNot(op ops.CheckOp) error {
	if e.negStart < 0 {
		e.negStart = e.file.Range.Start
	}
	e.notQueue = append(e.notQueue, op)
	return nil
}

func (e *Engine) matchCount(op ops.CheckOp) error {
	for i := 0; i < op.Count; i++ {
		if _, err := e.matchEventually(op, false); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) advanceLabel(op ops.CheckOp) error {
	e.file.AdvanceRange()
	if e.opts.EnableVarScope {
		e.vars.PurgeNonPseudo()
	}
	return nil
}

// preHook applies the state transitions that must happen before a
// directive's own matching logic runs.
func (e *Engine) preHook(op ops.CheckOp) error {
	if op.Kind != ops.Dag && e.file.IsDiscontiguous() {
		e.file.AdvanceToLastHole()
	}
	if op.Kind == ops.Next {
		e.file.SkipToEndOfLine()
	}
	if op.Kind == ops.Label && e.negStart >= 0 {
		if err := e.flushNot(e.file.Range.End); err != nil {
			return err
		}
	}
	return nil
}

// postHook applies the NOT-queue flush and match-full-lines check that
// follow any non-NOT directive.
func (e *Engine) postHook(op ops.CheckOp) error {
	if op.Kind == ops.Not {
		return nil
	}
	if e.negStart >= 0 {
		end := e.file.Range.Start
		if start, ok := e.file.Range.StartOfFirstHole(); ok {
			end = start
		}
		if err := e.flushNot(end); err != nil {
			return err
		}
	}
	if e.opts.MatchFullLines && !e.file.IsEndOfLine() {
		return &diagnostic.CheckError{Op: op, Msg: "match did not consume the full line"}
	}
	return nil
}

// flushNot enforces every queued CHECK-NOT directive over [negStart, end)
// and clears the queue.
func (e *Engine) flushNot(end int) error {
	if e.negStart < 0 {
		return nil
	}
	region := source.NewRange(e.negStart, end)
	for _, notOp := range e.notQueue {
		compiled, err := compiler.Compile(notOp, e.vars, e.opts.StrictWhitespace)
		if err != nil {
			return &diagnostic.CheckError{Op: notOp, Msg: err.Error()}
		}
		if match, ok := e.file.FindBetween(compiled.Matcher, region); ok {
			return &diagnostic.ErrorOnMatch{Op: notOp, Match: match.Span()}
		}
	}
	e.notQueue = nil
	e.negStart = -1
	return nil
}

func (e *Engine) matchEventually(op ops.CheckOp, anchored bool) (source.Match, error) {
	compiled, err := compiler.Compile(op, e.vars, e.opts.StrictWhitespace)
	if err != nil {
		return source.Match{}, &diagnostic.CheckError{Op: op, Msg: err.Error()}
	}
	var match source.Match
	var ok bool
	if anchored {
		match, ok = e.file.Match(compiled.Matcher)
	} else {
		match, ok = e.file.Find(compiled.Matcher, false)
	}
	if !ok {
		return source.Match{}, e.failure(op)
	}
	e.file.MoveTo(match.End(0))
	if err := e.bindCaptures(op, compiled, match); err != nil {
		return source.Match{}, err
	}
	return match, nil
}

func (e *Engine) matchThisLine(op ops.CheckOp) (source.Match, error) {
	compiled, err := compiler.Compile(op, e.vars, e.opts.StrictWhitespace)
	if err != nil {
		return source.Match{}, &diagnostic.CheckError{Op: op, Msg: err.Error()}
	}
	match, ok := e.file.Find(compiled.Matcher, true)
	if !ok {
		return source.Match{}, e.failure(op)
	}
	e.file.MoveTo(match.End(0))
	if err := e.bindCaptures(op, compiled, match); err != nil {
		return source.Match{}, err
	}
	return match, nil
}

func (e *Engine) matchDag(op ops.CheckOp) error {
	if !e.file.IsDiscontiguous() {
		e.file.StartDiscontiguousRegion()
	}
	compiled, err := compiler.Compile(op, e.vars, e.opts.StrictWhitespace)
	if err != nil {
		return &diagnostic.CheckError{Op: op, Msg: err.Error()}
	}
	match, ok := e.file.MatchAndAddHole(compiled.Matcher)
	if !ok {
		return e.failure(op)
	}
	return e.bindCaptures(op, compiled, match)
}

func (e *Engine) matchEmpty(op ops.CheckOp) error {
	if !e.opts.MatchFullLines {
		e.file.SkipToEndOfLine()
	}
	compiled, err := compiler.Compile(op, e.vars, e.opts.StrictWhitespace)
	if err != nil {
		return &diagnostic.CheckError{Op: op, Msg: err.Error()}
	}
	if e.file.IsEndOfFile() {
		return nil
	}
	match, ok := e.file.Match(compiled.Matcher)
	if !ok {
		return e.failure(op)
	}
	// Consume only the '\n' that ends the current line, leaving the cursor
	// at the start of the blank line.
	e.file.MoveTo(match.Start(0) + 1)
	return nil
}

func (e *Engine) bindCaptures(op ops.CheckOp, compiled *compiler.Compiled, match source.Match) error {
	for name, c := range compiled.Captures {
		text := match.Group(c.Group)
		if text == "" {
			if e.opts.RejectEmptyVars {
				return &diagnostic.CheckError{Op: op, Msg: "capture " + name + " matched an empty string"}
			}
			e.logger.Printf("warning: %s: variable %s was captured as an empty string", op.CheckName(), name)
		}
		e.vars.Set(name, c.Mapper(text))
	}
	return nil
}

// logAttempt prints each successfully dispatched directive's location
// when Verbose is set, mirroring -vv's running trace of attempted matches.
func (e *Engine) logAttempt(op ops.CheckOp) {
	if !e.opts.Verbose {
		return
	}
	e.logger.Printf("verbose: %s matched, cursor now at input line %d", op.CheckName(), e.file.LineNo)
}

func (e *Engine) failure(op ops.CheckOp) error {
	suggestion, _ := diagnostic.SuggestPrefix(op, e.vars, e.file, e.opts.StrictWhitespace)
	return &diagnostic.CheckError{Op: op, Msg: "could not match", Suggestion: suggestion}
}
