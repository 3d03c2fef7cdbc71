// Package branding provides compile-time identity values for the CLI.
//
// Forks edit branding.yaml in this package and rebuild; Go's //go:embed bakes
// it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	ManifestFile string `yaml:"manifest_file"`
	TemplatesDir string `yaml:"templates_dir"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "copy-template",
			DisplayName:  "Copy Template",
			Description:  "Scaffold a new project from a template directory",
			HomeDir:      ".copy-template",
			EnvPrefix:    "COPY_TEMPLATE",
			ManifestFile: "package.json",
			TemplatesDir: "templates",
		}

		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "copy-template").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".copy-template").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "COPY_TEMPLATE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ManifestFile returns the name of the manifest file every template carries
// at its top level.
func ManifestFile() string { load(); return defaults.ManifestFile }

// TemplatesDir returns the directory name of the bundled templates root.
func TemplatesDir() string { load(); return defaults.TemplatesDir }

// EnvVar returns a fully qualified env var name,
// e.g., EnvVar("templates_dir") → "COPY_TEMPLATE_TEMPLATES_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
