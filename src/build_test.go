package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swapRunAttempt(t *testing.T, fn func(CompilerInfo, buildOptions) error) {
	t.Helper()
	orig := runAttempt
	runAttempt = fn
	t.Cleanup(func() { runAttempt = orig })
}

func tempPaths(t *testing.T) buildPaths {
	t.Helper()
	root := t.TempDir()
	build := filepath.Join(root, "build")
	return buildPaths{Root: root, Build: build, Bin: filepath.Join(build, "bin")}
}

// stubUnixHost makes detection find GCC (priority 2) and Clang (priority 1)
// on a Linux-like host.
func stubUnixHost(t *testing.T) {
	t.Helper()
	swapLookPath(t, fakeLookPath(map[string]string{
		"g++":     "/usr/bin/g++",
		"clang++": "/usr/bin/clang++",
	}))
	swapExec(t, fakeExec("compiler 1.0\n", "", 0))
}

func TestAttemptBuildFallsBackInPriorityOrder(t *testing.T) {
	stubUnixHost(t)

	var attempted []compilerKind
	swapRunAttempt(t, func(c CompilerInfo, opts buildOptions) error {
		attempted = append(attempted, c.Kind)
		if c.Kind == kindClang {
			return errors.New("simulated compile failure")
		}
		return nil
	})

	winner, ok := attemptBuild("", buildOptions{System: "linux", Paths: tempPaths(t)})

	require.True(t, ok)
	assert.Equal(t, kindGCC, winner.Kind)
	// Clang first (priority 1), GCC as fallback, nothing else.
	assert.Equal(t, []compilerKind{kindClang, kindGCC}, attempted)
}

func TestAttemptBuildStopsAtFirstSuccess(t *testing.T) {
	stubUnixHost(t)

	var attempted []compilerKind
	swapRunAttempt(t, func(c CompilerInfo, opts buildOptions) error {
		attempted = append(attempted, c.Kind)
		return nil
	})

	winner, ok := attemptBuild("", buildOptions{System: "linux", Paths: tempPaths(t)})

	require.True(t, ok)
	assert.Equal(t, kindClang, winner.Kind)
	assert.Equal(t, []compilerKind{kindClang}, attempted)
}

func TestAttemptBuildAllCompilersFail(t *testing.T) {
	stubUnixHost(t)

	attempts := 0
	swapRunAttempt(t, func(c CompilerInfo, opts buildOptions) error {
		attempts++
		return errors.New("simulated compile failure")
	})

	_, ok := attemptBuild("", buildOptions{System: "linux", Paths: tempPaths(t)})

	assert.False(t, ok)
	assert.Equal(t, 2, attempts)
}

func TestAttemptBuildForcedNotFound(t *testing.T) {
	swapLookPath(t, fakeLookPath(map[string]string{"g++": "/usr/bin/g++"}))
	swapExec(t, fakeExec("compiler 1.0\n", "", 0))

	attempts := 0
	swapRunAttempt(t, func(c CompilerInfo, opts buildOptions) error {
		attempts++
		return nil
	})

	_, ok := attemptBuild("clang", buildOptions{System: "linux", Paths: tempPaths(t)})

	assert.False(t, ok)
	assert.Zero(t, attempts)
}

func TestAttemptBuildForcedCaseInsensitive(t *testing.T) {
	stubUnixHost(t)

	var attempted []compilerKind
	swapRunAttempt(t, func(c CompilerInfo, opts buildOptions) error {
		attempted = append(attempted, c.Kind)
		return nil
	})

	winner, ok := attemptBuild("GCC", buildOptions{System: "linux", Paths: tempPaths(t)})

	require.True(t, ok)
	assert.Equal(t, kindGCC, winner.Kind)
	assert.Equal(t, []compilerKind{kindGCC}, attempted)
}

func TestAttemptBuildEmptyCatalog(t *testing.T) {
	swapLookPath(t, fakeLookPath(nil))
	swapVSInstallPaths(t, nil)

	attempts := 0
	swapRunAttempt(t, func(c CompilerInfo, opts buildOptions) error {
		attempts++
		return nil
	})

	_, ok := attemptBuild("", buildOptions{System: "linux", Paths: tempPaths(t)})

	assert.False(t, ok)
	assert.Zero(t, attempts)
}

func TestRunCompilerBuildCreatesBinDir(t *testing.T) {
	swapExec(t, fakeExec("", "", 0))
	paths := tempPaths(t)
	c := CompilerInfo{Name: "GCC", Command: "g++", Kind: kindGCC}

	err := runCompilerBuild(c, buildOptions{System: "linux", Paths: paths})

	require.NoError(t, err)
	info, statErr := os.Stat(paths.Bin)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestRunCompilerBuildFailureIncludesDiagnostics(t *testing.T) {
	swapExec(t, fakeExec("", "fatal error: rf_font.h: No such file or directory\n", 1))
	c := CompilerInfo{Name: "GCC", Command: "g++", Kind: kindGCC}

	err := runCompilerBuild(c, buildOptions{System: "linux", Paths: tempPaths(t)})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rf_font.h")
}

func TestMatchForced(t *testing.T) {
	compilers := []CompilerInfo{
		{Name: "GCC", Kind: kindGCC},
		{Name: "Clang", Kind: kindClang},
	}

	c, ok := matchForced(compilers, "CLANG")
	require.True(t, ok)
	assert.Equal(t, kindClang, c.Kind)

	_, ok = matchForced(compilers, "msvc")
	assert.False(t, ok)
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "250ms", formatElapsed(250*time.Millisecond))
	assert.Equal(t, "2.5s", formatElapsed(2500*time.Millisecond))
	assert.Equal(t, "1m 30s", formatElapsed(90*time.Second))
}
