package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/unrealkit/uekit/internal/engine"
)

// NewListCmd creates the "list" command, which runs discovery without any
// project context and prints every engine installation found.
func NewListCmd(h engine.Host) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered engine installations",
		Long:  "List every Unreal Engine installation discovered through the registry, the Epic launcher manifest, and environment variables",
		Example: `  # List all discovered engines
  uekit list

  # List engines as JSON
  uekit list --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, h, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the engine list as JSON")

	return cmd
}

// listOutput is the JSON shape of the list command.
type listOutput struct {
	Engines  []engine.Installation `json:"engines"`
	Warnings []string              `json:"warnings,omitempty"`
}

func runList(cmd *cobra.Command, h engine.Host, jsonOut bool) error {
	cfg := configFromCmd(cmd)
	installs, warnings, err := engine.Discover(cmd.Context(), h, cfg.Discovery.ProbeTimeout())
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(listOutput{Engines: installs, Warnings: warnings})
	}

	printWarnings(cmd, warnings)

	if len(installs) == 0 {
		cmd.Println("No engine installations found.")
		return nil
	}

	const tabPadding = 2
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(w, "Name\tVersion\tAssociation\tPath\tInstalled")
	fmt.Fprintln(w, "----\t-------\t-----------\t----\t---------")

	for _, install := range installs {
		version := "unknown"
		if install.Version != nil {
			version = install.Version.String()
		}
		installed := install.InstalledDate
		if installed == "" {
			installed = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			install.DisplayName, version, install.AssociationID, install.Path, installed)
	}
	return w.Flush()
}
