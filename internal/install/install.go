package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after the package
// manager was killed by a cancelled context.
const waitDelay = 2 * time.Second

// Installer invokes "<PackageManager> install" in a project directory.
type Installer struct {
	PackageManager string

	// Stdin, Stdout and Stderr default to the process's own streams so the
	// package manager shares the operator's terminal.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// NodeVersion reports the installed Node.js version. Nil means
	// running `node --version`.
	NodeVersion func(ctx context.Context) (string, error)
}

// ExitError reports a package manager that exited with a non-zero status.
type ExitError struct {
	PackageManager string
	Code           int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s install exited with status %d", e.PackageManager, e.Code)
}

// New returns an Installer for the given package manager.
func New(packageManager string) *Installer {
	return &Installer{PackageManager: packageManager}
}

// Command returns the command line Run executes, for display.
func (i *Installer) Command() string {
	return i.PackageManager + " install"
}

// Run executes the install command in dir and waits for it to finish. Its
// output is streamed, never inspected; only the exit status matters.
func (i *Installer) Run(ctx context.Context, dir string) error {
	if i.PackageManager == "" {
		return fmt.Errorf("no package manager configured")
	}

	bin, err := exec.LookPath(i.PackageManager)
	if err != nil {
		return fmt.Errorf("package manager %q not found: %w", i.PackageManager, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("project directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project directory %s is not a directory", dir)
	}

	cmd := exec.CommandContext(ctx, bin, "install")
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	cmd.Stdin = i.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = i.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = i.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{PackageManager: i.PackageManager, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", i.Command(), err)
	}
	return nil
}

// nodeVersion runs `node --version`.
func nodeVersion(ctx context.Context) (string, error) {
	bin, err := exec.LookPath("node")
	if err != nil {
		return "", fmt.Errorf("node not found: %w", err)
	}
	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running node --version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
