package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/unrealkit/uekit/internal/engine"
)

// NewResolveCmd creates the "resolve" command, which produces the single
// engine installation a project should build with.
func NewResolveCmd(h engine.Host) *cobra.Command {
	var (
		projectPath string
		enginePath  string
		jsonOut     bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the engine installation for a project",
		Long: "Resolve which engine installation a project should use by matching its EngineAssociation " +
			"against discovered installations, falling back to the newest available engine",
		Example: `  # Resolve using the project in the current directory
  uekit resolve --project .

  # Resolve a specific .uproject file
  uekit resolve --project Games/MyGame/MyGame.uproject

  # Trust an explicit engine path instead of discovering
  uekit resolve --engine-path D:\Engines\UE_5.3

  # Machine-readable output
  uekit resolve --project . --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd, h, projectPath, enginePath, jsonOut)
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "project directory or .uproject file")
	cmd.Flags().StringVar(&enginePath, "engine-path", "", "explicit engine path, skips discovery")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the resolution result as JSON")

	return cmd
}

func runResolve(cmd *cobra.Command, h engine.Host, projectPath, enginePath string, jsonOut bool) error {
	cfg := configFromCmd(cmd)
	result := engine.Resolve(cmd.Context(), h, engine.Options{
		ProjectPath:  projectPath,
		EnginePath:   enginePath,
		ProbeTimeout: cfg.Discovery.ProbeTimeout(),
	})

	if jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
		if result.Error != "" {
			return errors.New(result.Error)
		}
		return nil
	}

	printWarnings(cmd, result.Warnings)

	if result.Error != "" {
		return errors.New(result.Error)
	}

	if result.Engine == nil {
		cmd.Println("No engine installations found.")
		return nil
	}

	cmd.Printf("Engine:  %s\n", result.Engine.DisplayName)
	if result.Engine.Version != nil {
		cmd.Printf("Version: %s\n", result.Engine.Version)
	}
	if result.Engine.AssociationID != "" {
		cmd.Printf("Id:      %s\n", result.Engine.AssociationID)
	}
	cmd.Printf("Path:    %s\n", result.Engine.Path)
	return nil
}
