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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	opts, err := Parse([]string{"checks.txt"})
	require.NoError(t, err)
	assert.Equal(t, "checks.txt", opts.CheckFile)
	assert.Equal(t, "-", opts.InputFile)
	assert.Equal(t, []string{"CHECK"}, opts.CheckPrefixes)
	assert.Equal(t, []string{"COM", "RUN"}, opts.CommentPrefixes)
	assert.Equal(t, DumpFail, opts.DumpInput)
}

func TestParseCheckPrefixesSynonymWins(t *testing.T) {
	opts, err := Parse([]string{
		"-check-prefix", "CHECK",
		"-check-prefixes", "FOO,BAR",
		"checks.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"FOO", "BAR"}, opts.CheckPrefixes)
}

func TestParseCheckPrefixSingularUsedWhenPluralAbsent(t *testing.T) {
	opts, err := Parse([]string{"-check-prefix", "MY_CHECK", "checks.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"MY_CHECK"}, opts.CheckPrefixes)
}

func TestParseDumpInputHelpShortCircuits(t *testing.T) {
	opts, err := Parse([]string{"-dump-input", "help"})
	require.NoError(t, err)
	assert.True(t, opts.ShowDumpInputHelpAndExit)
	assert.Empty(t, opts.CheckFile)
}

func TestParseMissingCheckFileIsError(t *testing.T) {
	_, err := Parse([]string{"-strict-whitespace"})
	assert.Error(t, err)
}

func TestParseAccumulatesRepeatedDDefinitions(t *testing.T) {
	opts, err := Parse([]string{"-D", "FOO=1", "-D", "BAR=baz", "checks.txt"})
	require.NoError(t, err)

	v, ok := opts.Vars.Lookup("FOO")
	require.True(t, ok)
	n, isInt := v.Int()
	require.True(t, isInt)
	assert.Equal(t, 1, n)

	v, ok = opts.Vars.Lookup("BAR")
	require.True(t, ok)
	assert.Equal(t, "baz", v.String())
}

func TestParseBadDDefinitionIsError(t *testing.T) {
	_, err := Parse([]string{"-D", "=bad", "checks.txt"})
	assert.Error(t, err)
}

func TestParseVerboseAliasesBothSetSameField(t *testing.T) {
	opts, err := Parse([]string{"-vv", "checks.txt"})
	require.NoError(t, err)
	assert.True(t, opts.Verbose)

	opts, err = Parse([]string{"-verbose", "checks.txt"})
	require.NoError(t, err)
	assert.True(t, opts.Verbose)
}

func TestParseVersionShortCircuitsWithoutCheckFile(t *testing.T) {
	opts, err := Parse([]string{"-version"})
	require.NoError(t, err)
	assert.True(t, opts.ShowVersionAndExit)
}

func TestDumpInputHelpText(t *testing.T) {
	assert.Contains(t, DumpInputHelp(), "always")
}

func TestSplitNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, splitNonEmpty(" A , , B "))
	assert.Empty(t, splitNonEmpty(""))
}

func TestResolveInputFilesNonGlobReturnsSinglePath(t *testing.T) {
	files, err := ResolveInputFiles(Options{InputFile: "-"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-"}, files)
}

func TestResolveInputFilesGlobExpandsMatches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/a.txt", []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(dir+"/b.txt", []byte("b"), 0o644))

	files, err := ResolveInputFiles(Options{InputFile: dir + "/*.txt", InputFileGlob: true})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestResolveInputFilesGlobNoMatchesIsError(t *testing.T) {
	_, err := ResolveInputFiles(Options{InputFile: t.TempDir() + "/*.nope", InputFileGlob: true})
	assert.Error(t, err)
}

func TestFeatureEnabled(t *testing.T) {
	t.Setenv("FILECHECK_FEATURE_ENABLE", "MLIR_REGEX_CLS, OTHER")
	assert.True(t, FeatureEnabled("MLIR_REGEX_CLS"))
	assert.True(t, FeatureEnabled("OTHER"))
	assert.False(t, FeatureEnabled("UNKNOWN"))
}

func TestFeatureEnabledEmptyEnv(t *testing.T) {
	t.Setenv("FILECHECK_FEATURE_ENABLE", "")
	assert.False(t, FeatureEnabled("ANYTHING"))
}
