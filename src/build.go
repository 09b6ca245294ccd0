package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const compileTimeout = 60 * time.Second

// buildPaths anchors everything relative to the tool's own directory.
type buildPaths struct {
	Root  string
	Build string
	Bin   string
}

func defaultBuildPaths() (buildPaths, error) {
	exe, err := os.Executable()
	if err != nil {
		return buildPaths{}, fmt.Errorf("locate tool directory: %w", err)
	}
	root := filepath.Dir(exe)
	build := filepath.Join(root, "build")
	return buildPaths{Root: root, Build: build, Bin: filepath.Join(build, "bin")}, nil
}

type buildOptions struct {
	System  string
	Paths   buildPaths
	Verbose bool
}

// runAttempt is swapped out in tests to simulate compiler exits.
var runAttempt = runCompilerBuild

// attemptBuild drives the try-report-fall-back loop: detect, rank by
// priority, attempt each compiler sequentially and stop at the first
// success. Attempts are strictly sequential; they contend for the same
// output path and diagnostic stream. Returns the winning compiler.
func attemptBuild(forced string, opts buildOptions) (CompilerInfo, bool) {
	outcomes := probeAll(opts.System)
	if opts.Verbose {
		reportProbeOutcomes(outcomes)
	}

	var compilers []CompilerInfo
	for _, outcome := range outcomes {
		compilers = append(compilers, outcome.Compilers...)
	}

	if len(compilers) == 0 {
		printError("[ERROR] No C++ compilers found!")
		fmt.Print(renderInstallGuidance(opts.System))
		return CompilerInfo{}, false
	}

	if forced != "" {
		target, ok := matchForced(compilers, forced)
		if !ok {
			printError(fmt.Sprintf("[ERROR] Compiler '%s' not found", forced))
			return CompilerInfo{}, false
		}
		fmt.Printf("[INFO] Using forced compiler: %s\n", target.Name)
		return target, tryCompiler(target, opts)
	}

	fmt.Printf("[INFO] Found %d C++ compiler(s):\n", len(compilers))
	for i, c := range compilers {
		fmt.Printf("  %d. %s v%s\n", i+1, c.Name, c.Version)
	}

	// Stable: ties keep discovery order.
	sort.SliceStable(compilers, func(i, j int) bool {
		return compilers[i].Priority < compilers[j].Priority
	})

	for _, c := range compilers {
		fmt.Printf("\n[INFO] Trying %s...\n", c.Name)
		if tryCompiler(c, opts) {
			printOK(fmt.Sprintf("[OK] Successfully built with %s!", c.Name))
			return c, true
		}
		printWarning(fmt.Sprintf("[WARNING] Failed to build with %s", c.Name))
	}

	printError("[ERROR] All compilers failed!")
	return CompilerInfo{}, false
}

// matchForced selects the first detected compiler of the requested kind,
// case-insensitively.
func matchForced(compilers []CompilerInfo, forced string) (CompilerInfo, bool) {
	for _, c := range compilers {
		if strings.EqualFold(string(c.Kind), forced) {
			return c, true
		}
	}
	return CompilerInfo{}, false
}

func tryCompiler(c CompilerInfo, opts buildOptions) bool {
	start := time.Now()
	err := runAttempt(c, opts)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("[DEBUG] %s error: %v\n", c.Name, err)
		return false
	}
	fmt.Printf("[INFO] Compile time: %s\n", formatElapsed(elapsed))
	return true
}

// runCompilerBuild executes one compile attempt under the wall-clock bound.
// A timeout fails only this attempt; the loop moves on to the next
// candidate.
func runCompilerBuild(c CompilerInfo, opts buildOptions) error {
	if err := os.MkdirAll(opts.Paths.Bin, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	bc := buildCompileCommand(c, opts.System, opts.Paths)
	if opts.Verbose {
		fmt.Printf("[INFO] Command: %s\n", bc.commandLine())
	}

	ctx, cancel := context.WithTimeout(context.Background(), compileTimeout)
	defer cancel()

	cmd := bc.exec(ctx)
	cmd.Dir = opts.Paths.Root

	var output bytes.Buffer
	if opts.Verbose {
		cmd.Stdout = io.MultiWriter(os.Stdout, &output)
		cmd.Stderr = io.MultiWriter(os.Stderr, &output)
	} else {
		cmd.Stdout = &output
		cmd.Stderr = &output
	}

	stop := startSpinner("Compiling with "+c.Name, opts.Verbose)
	err := cmd.Run()
	stop()

	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("compile timed out after %s", compileTimeout)
	}
	if err != nil {
		if diag := strings.TrimSpace(output.String()); diag != "" {
			return fmt.Errorf("compile failed: %w\nOutput: %s", err, diag)
		}
		return fmt.Errorf("compile failed: %w", err)
	}
	return nil
}
