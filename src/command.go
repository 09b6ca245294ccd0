package main

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// buildCommand is one fully constructed compile invocation. When Setup is
// non-empty the invocation is chained behind the setup script in a single
// shell session; the chain succeeds or fails as a unit.
type buildCommand struct {
	Args  []string
	Setup string
}

func artifactName(kind compilerKind) string {
	if kind == kindMSVC {
		return "font_compiler.exe"
	}
	return "font_compiler"
}

// buildCompileCommand constructs the compiler-specific invocation for the
// font compiler sources. Flags, include paths, output syntax and link
// libraries all come from the per-family configuration tables.
func buildCompileCommand(c CompilerInfo, system string, paths buildPaths) buildCommand {
	outputPath := filepath.Join(paths.Bin, artifactName(c.Kind))
	libs := linkLibraries[system][c.Kind]

	var args []string
	switch c.Kind {
	case kindMSVC:
		args = []string{c.Command, "/EHsc", "/O2", "/DNDEBUG", "/W3"}
		for _, dir := range includeDirs {
			args = append(args, "/I"+filepath.Join(paths.Root, dir))
		}
		args = append(args, "/Fe:"+outputPath)
		args = append(args, sourceFiles[0])
		if len(libs) > 0 {
			args = append(args, "/link")
			args = append(args, libs...)
		}
	default:
		args = []string{c.Command, "-std=c++17", "-O2", "-DNDEBUG", "-Wall"}
		for _, dir := range includeDirs {
			args = append(args, "-I"+filepath.Join(paths.Root, dir))
		}
		args = append(args, "-o", outputPath)
		args = append(args, sourceFiles[0])
		args = append(args, libs...)
	}

	return buildCommand{Args: args, Setup: c.Setup}
}

// commandLine renders the invocation as a single shell line, used both for
// verbose output and for the MSVC setup chain.
func (bc buildCommand) commandLine() string {
	line := strings.Join(bc.Args, " ")
	if bc.Setup != "" {
		return fmt.Sprintf(`call "%s" && %s`, bc.Setup, line)
	}
	return line
}

// exec prepares the process for this invocation. The setup chain has to go
// through a shell so the script's environment reaches the compiler.
func (bc buildCommand) exec(ctx context.Context) *exec.Cmd {
	if bc.Setup != "" {
		return execCommandContext(ctx, "cmd", "/C", bc.commandLine())
	}
	return execCommandContext(ctx, bc.Args[0], bc.Args[1:]...)
}
