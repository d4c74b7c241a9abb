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

// Command gocheck verifies that an input file's text satisfies a sequence
// of CHECK-style directives embedded as comments in a check file.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gofilecheck/gocheck/internal/diagnostic"
	"github.com/gofilecheck/gocheck/internal/directive"
	"github.com/gofilecheck/gocheck/internal/matcher"
	"github.com/gofilecheck/gocheck/internal/options"
	"github.com/gofilecheck/gocheck/internal/ops"
	"github.com/gofilecheck/gocheck/internal/preprocess"
	"github.com/gofilecheck/gocheck/internal/source"
)

func main() {
	log.SetPrefix("gocheck: ")
	log.SetFlags(0)
	os.Exit(run(os.Args[1:]))
}

const (
	exitOK             = 0
	exitFailure        = 1
	exitNoCheckStrings = 2
)

func run(args []string) int {
	opts, err := options.Parse(args)
	if err != nil {
		log.Print(err)
		return exitFailure
	}
	if opts.ShowVersionAndExit {
		fmt.Println(options.Version)
		return exitOK
	}
	if opts.ShowDumpInputHelpAndExit {
		fmt.Println(options.DumpInputHelp())
		return exitOK
	}

	checkData, err := os.ReadFile(opts.CheckFile)
	if err != nil {
		log.Printf("reading check file: %v", err)
		return exitFailure
	}

	directives, err := directive.Parse(
		bytes.NewReader(checkData),
		directive.Options{
			CheckPrefixes:    opts.CheckPrefixes,
			CommentPrefixes:  opts.CommentPrefixes,
			StrictWhitespace: opts.StrictWhitespace,
			MLIREnabled:      options.FeatureEnabled("MLIR_REGEX_CLS"),
		},
	)
	if err != nil {
		log.Print(err)
		return exitFailure
	}
	if len(directives) == 0 {
		log.Printf("no check strings found in %s", opts.CheckFile)
		return exitNoCheckStrings
	}

	inputPaths, err := options.ResolveInputFiles(opts)
	if err != nil {
		log.Print(err)
		return exitFailure
	}

	colorizer := diagnostic.SelectColorizer(opts.Color, os.Stderr)
	for _, path := range inputPaths {
		if code := runOne(path, directives, opts, colorizer); code != exitOK {
			return code
		}
	}
	return exitOK
}

func runOne(inputPath string, directives []ops.CheckOp, opts options.Options, colorizer diagnostic.Colorizer) int {
	content, err := readInput(inputPath)
	if err != nil {
		log.Printf("reading input file: %v", err)
		return exitFailure
	}
	if len(content) == 0 && !opts.AllowEmpty {
		log.Printf("%s: input is empty", inputPath)
		return exitFailure
	}

	file := source.New(inputPath, content)

	if err := preprocess.Partition(file, directives, opts.StrictWhitespace); err != nil {
		diagnostic.Report(os.Stderr, colorizer, err, file)
		return exitFailure
	}

	engine := matcher.New(file, opts.Vars, matcher.Options{
		EnableVarScope:   opts.EnableVarScope,
		MatchFullLines:   opts.MatchFullLines,
		RejectEmptyVars:  opts.RejectEmptyVars,
		Verbose:          opts.Verbose,
		StrictWhitespace: opts.StrictWhitespace,
	}, log.Default())

	runErr := engine.Run(directives)
	if runErr != nil {
		diagnostic.Report(os.Stderr, colorizer, runErr, file)
	}
	dumpInputIfRequested(file, opts.DumpInput, runErr == nil)
	if runErr != nil {
		return exitFailure
	}
	return exitOK
}

// dumpInputIfRequested prints the input file's text to stderr per
// --dump-input's always/never/fail setting.
func dumpInputIfRequested(file *source.File, mode options.DumpInputMode, succeeded bool) {
	switch mode {
	case options.DumpAlways:
	case options.DumpFail:
		if succeeded {
			return
		}
	default: // DumpNever, DumpHelp (already handled earlier)
		return
	}
	fmt.Fprintf(os.Stderr, "--- input dump for %s ---\n%s\n--- end input dump ---\n", file.Name, file.Content)
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

