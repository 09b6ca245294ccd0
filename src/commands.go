package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	flagVerbose bool
	flagList    bool
	flagForce   string
	flagClean   bool
)

var rootCmd = &cobra.Command{
	Use:   "rfbuild",
	Short: "rfbuild - Detect C++ compilers and build the Red Files font compiler",
	Long: `rfbuild detects the C++ toolchains installed on this machine, ranks them
by platform preference and builds the font_compiler executable, falling
back through the alternatives when a compiler fails.

The produced binary is invoked downstream by the font compilation driver:
	font_compiler --input font.json --output font.ttf`,
	Version: version,
	Args:    cobra.NoArgs,
	Run:     runRoot,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().BoolVarP(&flagList, "list", "l", false, "List available compilers and exit")
	rootCmd.Flags().StringVarP(&flagForce, "force", "f", "", "Force use of a specific compiler (gcc, clang, msvc, intel)")
	rootCmd.Flags().BoolVar(&flagClean, "clean", false, "Clean the build directory before building")
}

func runRoot(cmd *cobra.Command, args []string) {
	system := runtime.GOOS

	paths, err := defaultBuildPaths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagClean {
		if err := cleanBuildDir(paths.Build); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if flagList {
		listCompilers(system, flagVerbose)
		return
	}

	printBanner(system, paths.Build)

	opts := buildOptions{System: system, Paths: paths, Verbose: flagVerbose}
	winner, ok := attemptBuild(flagForce, opts)
	if !ok {
		fmt.Println()
		printError("[ERROR] Build failed!")
		fmt.Println("Check the error messages above for details.")
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 40))
	printOK("[OK] C++ font compiler built successfully!")
	verifyArtifact(filepath.Join(paths.Bin, artifactName(winner.Kind)))
	fmt.Println()
	fmt.Println("The compilation driver can now use it:")
	fmt.Println("  font_compiler --input font.json --output font.ttf")
}
