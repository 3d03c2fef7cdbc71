//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// binaryPath is built once per test run by TestMain.
var binaryPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "copy-template-it-")
	if err != nil {
		panic(err)
	}

	name := "copy-template"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binaryPath = filepath.Join(dir, name)

	build := exec.Command("go", "build", "-o", binaryPath, ".")
	build.Dir = repoRoot()
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		os.RemoveAll(dir)
		panic("building copy-template: " + err.Error())
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// repoRoot returns the module root relative to this package.
func repoRoot() string {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		panic(err)
	}
	return root
}

// runResult captures one invocation of the binary.
type runResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// testEnv holds isolated directories for one test.
type testEnv struct {
	HomeDir       string
	WorkDir       string
	TemplatesRoot string
	ExtraEnv      []string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		HomeDir:       t.TempDir(),
		WorkDir:       t.TempDir(),
		TemplatesRoot: filepath.Join(repoRoot(), "templates"),
	}
}

// run executes the binary in env.WorkDir with stdin and extra arguments.
func (env *testEnv) run(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = env.WorkDir
	cmd.Env = append(os.Environ(),
		"HOME="+env.HomeDir,
		"USERPROFILE="+env.HomeDir,
		"COPY_TEMPLATE_TEMPLATES_DIR="+env.TemplatesRoot,
	)
	cmd.Env = append(cmd.Env, env.ExtraEnv...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := runResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if exitErr, ok := err.(*exec.ExitError); ok {
		res.ExitCode = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("running %s: %v", binaryPath, err)
	}
	return res
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q\ncontent:\n%s", path, substr, string(data))
	}
}

func assertSameContent(t *testing.T, a, b string) {
	t.Helper()
	da, err := os.ReadFile(a)
	if err != nil {
		t.Fatalf("reading %s: %v", a, err)
	}
	db, err := os.ReadFile(b)
	if err != nil {
		t.Fatalf("reading %s: %v", b, err)
	}
	if !bytes.Equal(da, db) {
		t.Errorf("%s and %s differ", a, b)
	}
}
