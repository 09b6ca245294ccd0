package main

import (
	"errors"
	"fmt"
	"os"
)

// cleanBuildDir removes the build directory if it exists. Missing is fine;
// a later build recreates build/bin on demand.
func cleanBuildDir(buildDir string) error {
	if _, err := os.Stat(buildDir); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	fmt.Println("[INFO] Cleaning build directory...")
	if err := os.RemoveAll(buildDir); err != nil {
		return fmt.Errorf("clean build directory: %w", err)
	}
	printOK("[OK] Build directory cleaned")
	return nil
}
