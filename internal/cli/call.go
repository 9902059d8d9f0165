package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "github.com/wagiedev/mcp-server-go"
)

// errToolFailed reports a tool call that completed with isError set.
var errToolFailed = errors.New("tool call failed")

func (a *app) newCallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [arguments-json]",
		Short: "Invoke one tool and print its text result",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.newServer()
			if err != nil {
				return err
			}

			arguments := map[string]any{}

			if len(args) == 2 {
				dec := json.NewDecoder(bytes.NewReader([]byte(args[1])))
				dec.UseNumber()

				if err := dec.Decode(&arguments); err != nil {
					return fmt.Errorf("parse arguments: %w", err)
				}
			}

			resp := server.HandleCallTool(cmd.Context(), mcpserver.ToolCallRequest{
				ToolName:  args[0],
				Arguments: arguments,
			})

			if resp.IsError {
				fmt.Fprintln(cmd.ErrOrStderr(), resp.Content)

				return errToolFailed
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Content)

			return err
		},
	}
}
