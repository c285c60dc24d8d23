package bridge

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

// writeBinary creates a file with the given mode and returns its path.
func writeBinary(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), mode); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	// Apply the mode explicitly; WriteFile is subject to the umask.
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
	return path
}

func TestFindSecureBinaryPath_FirstTrustedWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeBinary(t, dir, "first", 0o755)
	second := writeBinary(t, dir, "second", 0o755)

	got, err := FindSecureBinaryPath([]string{first, second})
	if err != nil {
		t.Fatalf("FindSecureBinaryPath error: %v", err)
	}
	if got != first {
		t.Errorf("FindSecureBinaryPath = %q, want %q", got, first)
	}
}

func TestFindSecureBinaryPath_SkipsUntrusted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")
	nonExec := writeBinary(t, dir, "non-exec", 0o644)
	worldWritable := writeBinary(t, dir, "world-writable", 0o777)
	trusted := writeBinary(t, dir, "trusted", 0o755)

	got, err := FindSecureBinaryPath([]string{"relative/path", missing, nonExec, worldWritable, trusted})
	if err != nil {
		t.Fatalf("FindSecureBinaryPath error: %v", err)
	}
	if got != trusted {
		t.Errorf("FindSecureBinaryPath = %q, want %q", got, trusted)
	}
}

func TestFindSecureBinaryPath_SkipsDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sub := filepath.Join(dir, "helper")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := FindSecureBinaryPath([]string{sub})
	if err == nil {
		t.Fatal("FindSecureBinaryPath accepted a directory")
	}
}

func TestFindSecureBinaryPath_NoneFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")

	_, err := FindSecureBinaryPath([]string{a, b})
	if err == nil {
		t.Fatal("FindSecureBinaryPath = nil error, want SystemError")
	}
	if !errors.Is(err, domain.ErrSystem) {
		t.Errorf("error = %v, want ErrSystem", err)
	}
	if !strings.Contains(err.Error(), a) || !strings.Contains(err.Error(), b) {
		t.Errorf("error %q does not name the searched candidates", err)
	}
}

func TestFindProjectRoot_GoMod(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example\n"), 0o644); err != nil {
		t.Fatalf("writing go.mod: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	if got != root {
		t.Errorf("FindProjectRoot = %q, want %q", got, root)
	}
}

func TestFindProjectRoot_GitDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	nested := filepath.Join(root, "pkg")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	if got != root {
		t.Errorf("FindProjectRoot = %q, want %q", got, root)
	}
}

func TestCandidatePaths_PinnedPathShortCircuits(t *testing.T) {
	t.Parallel()

	got := CandidatePaths("eventkit-cli", "/opt/custom/eventkit-cli", []string{"/extra"})
	if len(got) != 1 || got[0] != "/opt/custom/eventkit-cli" {
		t.Errorf("CandidatePaths with pinned path = %v, want only the pinned path", got)
	}
}

func TestCandidatePaths_SearchOrder(t *testing.T) {
	t.Parallel()

	got := CandidatePaths("eventkit-cli", "", []string{"/extra"})

	if len(got) < 3 {
		t.Fatalf("CandidatePaths returned %d candidates, want at least 3", len(got))
	}
	if got[0] != filepath.Join("/extra", "eventkit-cli") {
		t.Errorf("first candidate = %q, want the configured search dir", got[0])
	}
	last := got[len(got)-1]
	if last != filepath.Join("/opt/homebrew/bin", "eventkit-cli") {
		t.Errorf("last candidate = %q, want the homebrew install dir", last)
	}
}
