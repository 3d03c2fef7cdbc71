// Package cli defines the Cobra command tree for the copy-template CLI. The
// root command runs the interactive scaffolding flow; subcommands cover
// listing templates, settings and version information. Commands delegate to
// internal packages for business logic and only handle flags, I/O formatting
// and user interaction.
package cli
