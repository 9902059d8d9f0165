package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newToolsCommand() *cobra.Command {
	var withResources bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tools/list result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := a.newServer()
			if err != nil {
				return err
			}

			out := map[string]any{"tools": server.HandleListTools()}
			if withResources {
				out["resources"] = server.HandleListResources()
			}

			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("encode tools: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return err
		},
	}

	cmd.Flags().BoolVar(&withResources, "resources", false, "include resources/list")

	return cmd
}
