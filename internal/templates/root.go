package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/syhner/copy-template/internal/branding"
)

// ErrRootNotFound is returned when no templates root can be located.
var ErrRootNotFound = errors.New("templates directory not found")

// executable is swapped in tests.
var executable = os.Executable

// RootCandidates returns the directories probed for the templates root, in
// priority order. A non-empty override is the only candidate.
func RootCandidates(override string) []string {
	if override != "" {
		return []string{override}
	}

	var candidates []string
	if exe, err := executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		binDir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(binDir, branding.TemplatesDir()),
			filepath.Join(binDir, "..", branding.TemplatesDir()),
		)
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, branding.TemplatesDir()))
	}
	return candidates
}

// ResolveRoot returns the absolute path of the first candidate that is a
// directory.
func ResolveRoot(fsys afero.Fs, override string) (string, error) {
	candidates := RootCandidates(override)
	for _, c := range candidates {
		ok, err := afero.DirExists(fsys, c)
		if err != nil || !ok {
			continue
		}
		abs, err := filepath.Abs(c)
		if err != nil {
			return "", fmt.Errorf("resolving templates root %s: %w", c, err)
		}
		return abs, nil
	}
	return "", fmt.Errorf("%w (looked in %v)", ErrRootNotFound, candidates)
}
