package main

import (
	"fmt"
	"os"
)

// verifyArtifact inspects the produced binary after a successful build.
// A compiler can exit zero and still leave nothing usable behind (broken
// linker wrappers do this), so report it, but as a warning: the compile
// itself succeeded.
func verifyArtifact(path string) {
	info, err := os.Stat(path)
	if err != nil {
		printWarning(fmt.Sprintf("[WARNING] Build succeeded but %s is missing", path))
		return
	}
	if info.Size() == 0 {
		printWarning(fmt.Sprintf("[WARNING] Build succeeded but %s is empty", path))
		return
	}
	fmt.Printf("Location: %s (%d bytes)\n", path, info.Size())
}
