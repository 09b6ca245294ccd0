package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyArtifact(t *testing.T) {
	dir := t.TempDir()

	// Missing and empty artifacts only warn; they must not panic or exit.
	verifyArtifact(filepath.Join(dir, "font_compiler"))

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0o755))
	verifyArtifact(empty)

	binary := filepath.Join(dir, "font_compiler")
	require.NoError(t, os.WriteFile(binary, []byte("\x7fELF"), 0o755))
	verifyArtifact(binary)
}
