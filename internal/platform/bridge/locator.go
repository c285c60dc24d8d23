package bridge

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

// systemInstallDirs are the trusted install locations probed after any
// configured search directories and the project-local bin directory.
var systemInstallDirs = []string{
	"/usr/local/bin",
	"/opt/homebrew/bin",
}

// ErrProjectRootNotFound indicates no enclosing module or repository root.
var ErrProjectRootNotFound = errors.New("project root not found")

// FindProjectRoot walks up from start (the working directory when empty)
// looking for a go.mod file or .git directory, and returns the first
// directory containing one. Used to locate the project-local helper build
// during development.
func FindProjectRoot(start string) (string, error) {
	dir := start
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrProjectRootNotFound
		}
		dir = parent
	}
}

// CandidatePaths computes the ordered list of helper locations to probe.
// A non-empty pinnedPath disables the search entirely. Otherwise the order
// is: configured search directories, the project-local bin directory, then
// the system install directories.
func CandidatePaths(binaryName, pinnedPath string, searchDirs []string) []string {
	if pinnedPath != "" {
		return []string{pinnedPath}
	}

	var candidates []string
	for _, dir := range searchDirs {
		candidates = append(candidates, filepath.Join(dir, binaryName))
	}

	if root, err := FindProjectRoot(""); err == nil {
		candidates = append(candidates, filepath.Join(root, "bin", binaryName))
	}

	for _, dir := range systemInstallDirs {
		candidates = append(candidates, filepath.Join(dir, binaryName))
	}

	return candidates
}

// FindSecureBinaryPath returns the first candidate that passes the trust
// policy: an absolute path to an executable regular file that is not
// world-writable. Resolution failure returns a SystemError naming every
// searched candidate; callers must not spawn anything in that case.
func FindSecureBinaryPath(candidates []string) (string, error) {
	for _, candidate := range candidates {
		if !filepath.IsAbs(candidate) {
			continue
		}

		info, err := os.Stat(candidate)
		if err != nil {
			continue
		}

		mode := info.Mode()
		if !mode.IsRegular() {
			continue
		}
		if mode.Perm()&0o111 == 0 {
			continue
		}
		if mode.Perm()&0o002 != 0 {
			// World-writable binaries are not trusted.
			continue
		}

		return candidate, nil
	}

	return "", domain.NewSystemError(
		"no trusted helper binary found; searched: %s", strings.Join(candidates, ", "))
}
