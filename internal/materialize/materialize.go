package materialize

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/syhner/copy-template/internal/branding"
	"github.com/syhner/copy-template/internal/manifest"
	"github.com/syhner/copy-template/internal/templates"
)

// ErrCopyFailed wraps every materialization failure.
var ErrCopyFailed = errors.New("copy failed")

// ErrDestinationInTemplate is returned when the destination is the template
// directory or lies inside it.
var ErrDestinationInTemplate = errors.New("destination is inside the template")

// Materializer copies templates onto a filesystem.
type Materializer struct {
	Fs afero.Fs
	// WorkDir anchors relative destinations. Empty means the process
	// working directory.
	WorkDir string
}

// Result holds the outcome of a materialization.
type Result struct {
	TemplatePath string   // absolute source directory
	OutputDir    string   // absolute destination directory
	ManifestName string   // name written to the destination manifest
	Files        []string // copied files, slash-separated and relative to OutputDir
}

// New returns a Materializer backed by the OS filesystem.
func New() *Materializer {
	return &Materializer{Fs: afero.NewOsFs()}
}

// Materialize copies the template named templateName from templatesRoot to
// destination, then sets the destination manifest's name. destination is
// used verbatim for the manifest name unless it is ".", in which case the
// template name is used.
func (m *Materializer) Materialize(templatesRoot, templateName, destination string) (*Result, error) {
	res, err := m.materialize(templatesRoot, templateName, destination)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
	return res, nil
}

func (m *Materializer) materialize(templatesRoot, templateName, destination string) (*Result, error) {
	if destination == "" {
		destination = manifest.DefaultDestination
	}

	catalog := &templates.Catalog{Fs: m.Fs, Root: templatesRoot}
	src, err := catalog.Path(templateName)
	if err != nil {
		return nil, err
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return nil, fmt.Errorf("resolving template path: %w", err)
	}

	dst, err := m.resolveDestination(destination)
	if err != nil {
		return nil, err
	}

	if m.insideTemplate(src, dst) {
		return nil, fmt.Errorf("%w: %s is within %s", ErrDestinationInTemplate, dst, src)
	}

	res := &Result{
		TemplatePath: src,
		OutputDir:    dst,
	}

	if err := m.copyDir(src, dst, "", res); err != nil {
		return res, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	sort.Strings(res.Files)

	name := manifest.NameFor(templateName, destination)
	if err := m.rewriteManifest(filepath.Join(dst, branding.ManifestFile()), name); err != nil {
		return res, err
	}
	res.ManifestName = name

	return res, nil
}

// resolveDestination returns the absolute destination path.
func (m *Materializer) resolveDestination(destination string) (string, error) {
	if filepath.IsAbs(destination) {
		return filepath.Clean(destination), nil
	}
	if m.WorkDir != "" {
		return filepath.Join(m.WorkDir, destination), nil
	}
	abs, err := filepath.Abs(destination)
	if err != nil {
		return "", fmt.Errorf("resolving destination %q: %w", destination, err)
	}
	return abs, nil
}

// insideTemplate reports whether dst is src or a descendant of it. On the OS
// filesystem symlinks are resolved first so an aliased path is caught too.
func (m *Materializer) insideTemplate(src, dst string) bool {
	if within(src, dst) {
		return true
	}
	if _, ok := m.Fs.(*afero.OsFs); !ok {
		return false
	}

	realSrc, err := filepath.EvalSymlinks(src)
	if err != nil {
		return false
	}
	return within(realSrc, resolveExisting(dst))
}

// within reports whether path equals root or sits below it.
func within(root, path string) bool {
	root = filepath.Clean(root)
	path = filepath.Clean(path)
	if path == root {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(root, string(filepath.Separator))+string(filepath.Separator))
}

// resolveExisting resolves symlinks in the longest existing prefix of path
// and re-attaches the missing tail.
func resolveExisting(path string) string {
	var tail []string
	for cur := filepath.Clean(path); ; {
		if resolved, err := filepath.EvalSymlinks(cur); err == nil {
			return filepath.Join(append([]string{resolved}, tail...)...)
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return filepath.Clean(path)
		}
		tail = append([]string{filepath.Base(cur)}, tail...)
		cur = parent
	}
}

// rewriteManifest loads the copied manifest, sets its name and saves it back
// with the original file mode.
func (m *Materializer) rewriteManifest(path, name string) error {
	info, err := m.Fs.Stat(path)
	if err != nil {
		return fmt.Errorf("reading manifest %s: %w", path, err)
	}

	mf, err := manifest.Load(m.Fs, path)
	if err != nil {
		return err
	}
	if err := mf.SetName(name); err != nil {
		return err
	}

	result, err := mf.Validate()
	if err != nil {
		return fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		issues := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			issues[i] = issue.String()
		}
		return fmt.Errorf("manifest %s is invalid after setting name %q: %s", path, name, strings.Join(issues, "; "))
	}

	return mf.Save(m.Fs, path, info.Mode().Perm())
}
