package main

import (
	"fmt"
	"strings"
)

// renderCompilerList formats detected compilers in discovery order.
// Duplicate entries for the same kind (PATH hit plus install-path hit) are
// shown as-is.
func renderCompilerList(compilers []CompilerInfo) string {
	if len(compilers) == 0 {
		return "No C++ compilers found\n"
	}

	var b strings.Builder
	b.WriteString("Available C++ compilers:\n")
	for i, c := range compilers {
		fmt.Fprintf(&b, "  %d. %s v%s (%s)\n", i+1, c.Name, c.Version, c.Kind)
	}
	return b.String()
}

// listCompilers implements --list: detection only, never a compilation.
func listCompilers(system string, verbose bool) {
	outcomes := probeAll(system)
	if verbose {
		reportProbeOutcomes(outcomes)
	}

	var compilers []CompilerInfo
	for _, outcome := range outcomes {
		compilers = append(compilers, outcome.Compilers...)
	}
	fmt.Print(renderCompilerList(compilers))
}

func renderInstallGuidance(system string) string {
	var b strings.Builder
	b.WriteString("Please install one of the following:\n")
	for _, suggestion := range installGuidance[platformFamily(system)] {
		fmt.Fprintf(&b, "  - %s\n", suggestion)
	}
	return b.String()
}
