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

// Package options parses the command-line surface into a validated
// Options value: check/comment prefixes, matching-mode flags, preloaded
// variable definitions, and the input/check-file locations.
package options

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gofilecheck/gocheck/internal/collections"
	"github.com/gofilecheck/gocheck/internal/env"
)

// DumpInputMode is the --dump-input setting.
type DumpInputMode string

const (
	DumpNever  DumpInputMode = "never"
	DumpFail   DumpInputMode = "fail"
	DumpAlways DumpInputMode = "always"
	DumpHelp   DumpInputMode = "help"
)

// Options is the fully parsed and validated command-line configuration.
type Options struct {
	InputFile       string
	InputFileGlob   bool
	CheckFile       string
	CheckPrefixes   []string
	CommentPrefixes []string

	StrictWhitespace bool
	EnableVarScope   bool
	MatchFullLines   bool
	AllowEmpty       bool
	RejectEmptyVars  bool
	Verbose          bool

	DumpInput DumpInputMode
	Color     string
	Vars      env.Env

	// ShowVersionAndExit and ShowDumpInputHelpAndExit are set when the
	// caller should print the corresponding message and exit 0 without
	// running the matcher.
	ShowVersionAndExit       bool
	ShowDumpInputHelpAndExit bool
}

// Version is the tool's reported version string.
const Version = "gocheck 1.0.0"

const dumpInputHelp = `--dump-input values:
  help    print this message and exit
  always  always print the input dump on completion
  never   never print the input dump
  fail    print the input dump only when a check fails (default)`

// Parse parses args (excluding the program name) into Options.
func Parse(args []string) (Options, error) {
	fs := flag.NewFlagSet("gocheck", flag.ContinueOnError)

	inputFile := fs.String("input-file", "-", "input file to check, - for stdin")
	inputFileGlob := fs.Bool("input-file-glob", false, "treat --input-file as a doublestar glob pattern")
	var checkPrefixes, checkPrefixesAlt multiFlag
	fs.Var(&checkPrefixes, "check-prefix", "accepted check prefix (comma-separated, may repeat; default CHECK)")
	fs.Var(&checkPrefixesAlt, "check-prefixes", "accepted check prefixes (comma-separated, may repeat, synonym for -check-prefix)")
	commentPrefixes := fs.String("comment-prefixes", "COM,RUN", "comment prefixes (comma-separated)")
	strictWhitespace := fs.Bool("strict-whitespace", false, "don't collapse literal whitespace runs")
	enableVarScope := fs.Bool("enable-var-scope", false, "purge non-pseudo variables on CHECK-LABEL")
	matchFullLines := fs.Bool("match-full-lines", false, "require directives to match to end of line")
	allowEmpty := fs.Bool("allow-empty", false, "allow empty input")
	rejectEmptyVars := fs.Bool("reject-empty-vars", false, "treat an empty captured variable as failure")
	dumpInput := fs.String("dump-input", "fail", "help,always,never,fail")
	verbose := fs.Bool("vv", false, "print each matched directive to stderr")
	fs.BoolVar(verbose, "verbose", false, "alias for -vv")
	version := fs.Bool("version", false, "print version and exit")
	color := fs.String("color", "auto", "auto,always,never: colorize diagnostics")
	var defs multiFlag
	fs.Var(&defs, "D", "preload a variable, name[=value]; may repeat")

	// The flag package reads "-D name=value" but not the attached
	// "-Dname=value" form, so split the latter into two arguments.
	normalized := make([]string, 0, len(args))
	for _, a := range args {
		if len(a) > 2 && strings.HasPrefix(a, "-D") && a[2] != '=' {
			normalized = append(normalized, "-D", a[2:])
			continue
		}
		normalized = append(normalized, a)
	}
	if err := fs.Parse(normalized); err != nil {
		return Options{}, err
	}

	opts := Options{
		InputFile:          *inputFile,
		InputFileGlob:      *inputFileGlob,
		StrictWhitespace:   *strictWhitespace,
		EnableVarScope:     *enableVarScope,
		MatchFullLines:     *matchFullLines,
		AllowEmpty:         *allowEmpty,
		RejectEmptyVars:    *rejectEmptyVars,
		Verbose:            *verbose,
		DumpInput:          DumpInputMode(*dumpInput),
		ShowVersionAndExit: *version,
		Color:              *color,
	}

	if opts.ShowVersionAndExit {
		return opts, nil
	}
	if opts.DumpInput == DumpHelp {
		opts.ShowDumpInputHelpAndExit = true
		return opts, nil
	}

	prefixArg := "CHECK"
	if len(checkPrefixesAlt) > 0 {
		prefixArg = checkPrefixesAlt.String()
	} else if len(checkPrefixes) > 0 {
		prefixArg = checkPrefixes.String()
	}
	opts.CheckPrefixes = splitNonEmpty(prefixArg)
	opts.CommentPrefixes = splitNonEmpty(*commentPrefixes)

	vars, err := ParseVarDefs(defs)
	if err != nil {
		return Options{}, err
	}
	opts.Vars = vars

	if rest := fs.Args(); len(rest) > 0 {
		opts.CheckFile = rest[0]
	} else {
		return Options{}, fmt.Errorf("missing required check-file argument")
	}

	return opts, nil
}

// DumpInputHelp returns the --dump-input=help text.
func DumpInputHelp() string { return dumpInputHelp }

// splitNonEmpty splits s on commas, trims whitespace, and drops empty
// fields.
func splitNonEmpty(s string) []string {
	parts := collections.MapSlice(strings.Split(s, ","), strings.TrimSpace)
	return collections.FilterSlice(parts, func(p string) bool { return p != "" })
}

// multiFlag accumulates repeated occurrences of a flag (-D, -check-prefix,
// -check-prefixes).
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// ResolveInputFiles expands InputFile as a doublestar glob when
// InputFileGlob is set; otherwise it returns the single configured path
// unchanged (including "-" for stdin).
func ResolveInputFiles(opts Options) ([]string, error) {
	if !opts.InputFileGlob {
		return []string{opts.InputFile}, nil
	}
	matches, err := doublestar.FilepathGlob(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("invalid --input-file-glob pattern %q: %w", opts.InputFile, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("--input-file-glob %q matched no files", opts.InputFile)
	}
	return matches, nil
}

// FeatureEnabled reports whether name is listed in FILECHECK_FEATURE_ENABLE.
func FeatureEnabled(name string) bool {
	for _, f := range strings.Split(os.Getenv("FILECHECK_FEATURE_ENABLE"), ",") {
		if strings.TrimSpace(f) == name {
			return true
		}
	}
	return false
}
