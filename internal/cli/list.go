package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/syhner/copy-template/internal/config"
	"github.com/syhner/copy-template/internal/templates"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Long:  `List the templates in the templates directory with the version and description from their manifests.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a template for display.
type listEntry struct {
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path"`
	Error       string `json:"error,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	fsys := afero.NewOsFs()
	root, err := templates.ResolveRoot(fsys, config.TemplatesDir())
	if err != nil {
		return err
	}

	infos, err := (&templates.Catalog{Fs: fsys, Root: root}).Describe()
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No templates found in %s\n", root)
		return nil
	}

	entries := make([]listEntry, 0, len(infos))
	for _, info := range infos {
		e := listEntry{
			Name:        info.Name,
			Version:     info.Version,
			Description: info.Description,
			Path:        info.Path,
		}
		if info.Err != nil {
			e.Error = info.Err.Error()
		}
		entries = append(entries, e)
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tDESCRIPTION")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		desc := e.Description
		if e.Error != "" {
			desc = "(unreadable manifest)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, version, desc)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
