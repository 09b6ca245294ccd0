package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/colorstring"
)

func printBanner(system, buildDir string) {
	fmt.Println("Red Files C++ Font Compiler Builder")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("System: %s\n", system)
	fmt.Printf("Build directory: %s\n", buildDir)
	fmt.Println()
}

// Status markers like [OK] pass through colorstring untouched; only the
// leading color token is consumed.

func printOK(msg string) {
	fmt.Println(colorstring.Color("[green]" + msg))
}

func printWarning(msg string) {
	fmt.Println(colorstring.Color("[yellow]" + msg))
}

func printError(msg string) {
	fmt.Fprintln(os.Stderr, colorstring.Color("[red]"+msg))
}
