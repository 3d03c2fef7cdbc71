package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alessio/shellescape"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/syhner/copy-template/internal/branding"
	"github.com/syhner/copy-template/internal/config"
	"github.com/syhner/copy-template/internal/install"
	"github.com/syhner/copy-template/internal/manifest"
	"github.com/syhner/copy-template/internal/materialize"
	"github.com/syhner/copy-template/internal/prompt"
	"github.com/syhner/copy-template/internal/templates"
	"github.com/syhner/copy-template/internal/ui"
)

// runCreate is the interactive flow: collect answers, copy the template,
// optionally install dependencies.
func runCreate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fsys := afero.NewOsFs()

	root, err := templates.ResolveRoot(fsys, config.TemplatesDir())
	if err != nil {
		return err
	}
	catalog := &templates.Catalog{Fs: fsys, Root: root}

	collector := prompt.NewCollector(cmd.InOrStdin(), out)
	answers, err := collector.Collect(catalog)
	if err != nil {
		return err
	}

	spin := ui.StartSpinner(out, "Copying template...")
	m := &materialize.Materializer{Fs: fsys}
	result, err := m.Materialize(root, answers.Template, answers.Destination)
	if err != nil {
		spin.Error("Failed to copy templates")
		return err
	}
	spin.Success("Template copied")

	pm := config.PackageManager()
	if answers.InstallDeps {
		installDependencies(cmd.Context(), cmd, collector.Reader(), pm, result)
	}

	printNextSteps(out, answers.Destination, result.OutputDir, pm)
	return nil
}

// installDependencies runs the package manager in the new project. Failures
// are reported and otherwise ignored; the copy already succeeded. stdin is
// whatever input the prompts left unread. An interrupt while the package
// manager runs stops only the install.
func installDependencies(ctx context.Context, cmd *cobra.Command, stdin io.Reader, pm string, result *materialize.Result) {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	inst := install.New(pm)
	inst.Stdin = stdin
	inst.Stdout = out
	inst.Stderr = errOut

	manifestPath := filepath.Join(result.OutputDir, branding.ManifestFile())
	for _, w := range inst.CheckEngines(ctx, afero.NewOsFs(), manifestPath) {
		ui.Warnf(errOut, "%s", w)
	}

	fmt.Fprintf(out, "Installing dependencies with %s (this might take a few minutes)...\n", ui.BoldStyle.Render(inst.Command()))
	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	err := inst.Run(runCtx, result.OutputDir)
	stop()
	if err != nil {
		ui.Failure(out, "Failed to install dependencies")
		ui.Warnf(errOut, "%v", err)
		return
	}
	ui.Success(out, "Dependencies installed")
}

func printNextSteps(w io.Writer, destination, outputDir, pm string) {
	fmt.Fprintln(w, ui.SuccessStyle.Render("Success! Copied template to "+outputDir))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "You can begin by typing:")
	if destination == manifest.DefaultDestination {
		fmt.Fprintf(w, "  %s\n", ui.AccentStyle.Render(pm+" start"))
		return
	}
	fmt.Fprintf(w, "  %s %s %s\n", ui.AccentStyle.Render("cd"), shellescape.Quote(destination), ui.AccentStyle.Render("&& "+pm+" start"))
}
