package install

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"

	"github.com/syhner/copy-template/internal/manifest"
)

// CheckEngines compares the manifest's engines.node constraint with the
// installed Node.js version and returns warnings for the operator. Problems
// are never fatal: the install is attempted regardless.
func (i *Installer) CheckEngines(ctx context.Context, fsys afero.Fs, manifestPath string) []string {
	m, err := manifest.Load(fsys, manifestPath)
	if err != nil {
		return []string{fmt.Sprintf("could not read engines from manifest: %v", err)}
	}

	want := m.Engines()["node"]
	if want == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(want)
	if err != nil {
		return []string{fmt.Sprintf("cannot parse engines.node constraint %q: %v", want, err)}
	}

	versionFn := i.NodeVersion
	if versionFn == nil {
		versionFn = nodeVersion
	}
	raw, err := versionFn(ctx)
	if err != nil {
		return []string{fmt.Sprintf("template requires node %s but the installed version is unknown: %v", want, err)}
	}

	have, err := semver.NewVersion(raw)
	if err != nil {
		return []string{fmt.Sprintf("cannot parse node version %q: %v", raw, err)}
	}

	if !constraint.Check(have) {
		return []string{fmt.Sprintf("node %s does not satisfy engines.node %q", have, want)}
	}
	return nil
}
