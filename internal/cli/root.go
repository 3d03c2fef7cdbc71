package cli

import (
	"github.com/spf13/cobra"

	"github.com/syhner/copy-template/internal/branding"
	"github.com/syhner/copy-template/internal/config"
	"github.com/syhner/copy-template/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies a project template into a new directory, names the
project after it and optionally installs its dependencies.

Run it without arguments and answer the questions.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runCreate,
}

// Execute runs the root command with build info injected via ldflags. Any
// error is reported on stderr before being returned. No interrupt handler is
// installed here: Ctrl-C ends the process unless a dependency install is
// running.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}
