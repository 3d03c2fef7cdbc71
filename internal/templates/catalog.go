package templates

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"

	"github.com/syhner/copy-template/internal/branding"
	"github.com/syhner/copy-template/internal/manifest"
)

// ErrTemplateNotFound is returned when a named template does not exist
// under the templates root.
var ErrTemplateNotFound = errors.New("template not found")

// Catalog enumerates the templates under Root.
type Catalog struct {
	Fs   afero.Fs
	Root string
}

// Info describes a template, enriched with metadata from its manifest.
type Info struct {
	Name         string // directory name, used for selection
	Path         string // absolute path to the template directory
	ManifestName string // name field of the template's own manifest
	Version      string // version field of the template's manifest
	VersionValid bool   // Version parses as semver
	Description  string // description field of the template's manifest
	Err          error  // manifest could not be read or parsed
}

// NewCatalog returns a Catalog over the OS filesystem.
func NewCatalog(root string) *Catalog {
	return &Catalog{Fs: afero.NewOsFs(), Root: root}
}

// List reads the templates root and returns the sorted names of its
// subdirectories. Hidden directories are skipped.
func (c *Catalog) List() ([]string, error) {
	entries, err := afero.ReadDir(c.Fs, c.Root)
	if err != nil {
		return nil, fmt.Errorf("reading templates directory %s: %w", c.Root, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Path returns the directory of the named template.
func (c *Catalog) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	dir := filepath.Join(c.Root, name)
	ok, err := afero.DirExists(c.Fs, dir)
	if err != nil {
		return "", fmt.Errorf("checking template %s: %w", dir, err)
	}
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrTemplateNotFound, name, c.Root)
	}
	return dir, nil
}

// Describe lists every template with its manifest metadata. A template whose
// manifest cannot be read is still returned, with Err set.
func (c *Catalog) Describe() ([]Info, error) {
	names, err := c.List()
	if err != nil {
		return nil, err
	}

	infos := make([]Info, 0, len(names))
	for _, name := range names {
		info := Info{
			Name: name,
			Path: filepath.Join(c.Root, name),
		}

		m, err := manifest.Load(c.Fs, filepath.Join(info.Path, branding.ManifestFile()))
		if err != nil {
			info.Err = err
			infos = append(infos, info)
			continue
		}

		info.ManifestName, _ = m.Name()
		info.Description, _ = m.String("description")
		info.Version, _ = m.String("version")
		if info.Version != "" {
			_, verr := semver.StrictNewVersion(info.Version)
			info.VersionValid = verr == nil
		}
		infos = append(infos, info)
	}
	return infos, nil
}
