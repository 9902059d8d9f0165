package cli

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/wagiedev/mcp-server-go"
)

func (a *app) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := a.newServer()
			if err != nil {
				return err
			}

			tools, resources := server.Registry().Len()
			a.log.Info("Starting MCP server",
				"name", server.Name(),
				"version", server.Version(),
				"tools", tools,
				"resources", resources,
				"sdk", a.cfg.SDK,
			)

			if a.cfg.SDK {
				err = mcpserver.ServeSDK(cmd.Context(), server)
			} else {
				err = mcpserver.Serve(cmd.Context(), server, cmd.InOrStdin(), cmd.OutOrStdout())
			}

			if err != nil {
				return err
			}

			a.log.Info("MCP server stopped")

			return nil
		},
	}

	cmd.Flags().Bool("sdk", false, "serve through the official MCP Go SDK instead of the built-in loop")
	_ = a.v.BindPFlag("sdk", cmd.Flags().Lookup("sdk"))

	return cmd
}
