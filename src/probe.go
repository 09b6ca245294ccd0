package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"
)

const versionQueryTimeout = 5 * time.Second

// Seams for tests; production code always uses the real implementations.
var (
	lookPath           = exec.LookPath
	execCommandContext = exec.CommandContext
)

// CompilerInfo describes one detected compiler. Instances are immutable
// after detection and rebuilt from scratch on every run.
type CompilerInfo struct {
	Name    string
	Command string
	Kind    compilerKind
	// Priority orders build attempts, lower first.
	Priority int
	Version  string
	Path     string
	// Setup is the environment setup script sourced before invoking the
	// compiler. Only set for MSVC found via a known install location.
	Setup string
}

type probeStatus int

const (
	probeOK probeStatus = iota
	probeAbsent
	probeTimeout
	probeErrored
)

func (s probeStatus) String() string {
	switch s {
	case probeOK:
		return "ok"
	case probeAbsent:
		return "absent"
	case probeTimeout:
		return "timed out"
	case probeErrored:
		return "errored"
	}
	return "unknown"
}

// probeOutcome reports what happened while probing one compiler kind, so
// callers decide policy instead of the probe swallowing failures. A version
// query that times out or errors still yields a usable descriptor with
// Version "Unknown" when the command itself resolved.
type probeOutcome struct {
	Kind          compilerKind
	Status        probeStatus
	VersionStatus probeStatus
	Compilers     []CompilerInfo
}

// probeCompiler checks whether the given kind is present on this system.
// MSVC may yield two descriptors: one from PATH and one from a known
// install location. Duplicates are deliberate; the build loop tolerates
// them and --list shows them.
func probeCompiler(system string, kind compilerKind) probeOutcome {
	outcome := probeOutcome{Kind: kind, Status: probeAbsent, VersionStatus: probeAbsent}

	spec, ok := compilerSpecs[platformFamily(system)][kind]
	if !ok {
		return outcome
	}

	path, resolved := resolveCommand(spec)
	if resolved {
		version, status := queryVersion(path, spec)
		outcome.Status = probeOK
		outcome.VersionStatus = status
		outcome.Compilers = append(outcome.Compilers, CompilerInfo{
			Name:     spec.Name,
			Command:  spec.Command,
			Kind:     kind,
			Priority: spec.Priority,
			Version:  version,
			Path:     path,
		})
	}

	if kind == kindMSVC {
		if setup, found := findVSInstall(); found {
			outcome.Status = probeOK
			outcome.Compilers = append(outcome.Compilers, CompilerInfo{
				Name:     spec.Name,
				Command:  spec.Command,
				Kind:     kind,
				Priority: 1,
				Version:  vsInstallVersion,
				Path:     setup,
				Setup:    setup,
			})
		}
	}

	return outcome
}

func resolveCommand(spec compilerSpec) (string, bool) {
	path, err := lookPath(spec.Command)
	if err != nil {
		return "", false
	}
	for _, extra := range spec.AlsoRequires {
		if _, err := lookPath(extra); err != nil {
			return "", false
		}
	}
	return path, true
}

// queryVersion runs the compiler's version query under a short timeout.
// Any failure downgrades to "Unknown": a present toolchain must never be
// masked by a transient version-query problem.
func queryVersion(path string, spec compilerSpec) (string, probeStatus) {
	ctx, cancel := context.WithTimeout(context.Background(), versionQueryTimeout)
	defer cancel()

	cmd := execCommandContext(ctx, path, spec.VersionArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return "Unknown", probeTimeout
	}

	if spec.VersionOnStderr {
		// cl prints its banner on stderr even with no input.
		if version := extractMSVCVersion(stderr.String()); version != "" {
			return version, probeOK
		}
		if err != nil {
			return "Unknown", probeErrored
		}
		return "Unknown", probeOK
	}

	if err != nil {
		return "Unknown", probeErrored
	}
	if line := firstLine(stdout.String()); line != "" {
		return line, probeOK
	}
	return "Unknown", probeOK
}

func extractMSVCVersion(banner string) string {
	matches := msvcVersionRegex.FindStringSubmatch(banner)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(strings.TrimSuffix(line, "\r"))
}

// findVSInstall returns the first existing Visual Studio setup script.
func findVSInstall() (string, bool) {
	for _, path := range vsInstallPaths {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
