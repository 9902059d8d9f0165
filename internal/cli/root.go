package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	mcpserver "github.com/wagiedev/mcp-server-go"
)

// app carries state shared by the subcommands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *Config
	log     *slog.Logger
}

// NewRootCommand builds the mcp-starter command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: newViper()}

	rootCmd := &cobra.Command{
		Use:           "mcp-starter",
		Short:         "mcp-starter: a minimal Model Context Protocol server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./mcp-starter.{yaml,json,toml} if present)")
	flags.String("name", defaultName, "server name reported on initialize")
	flags.String("log-level", defaultLogLevel, "log level: debug, info, warn, error")
	flags.String("validation", defaultValidation, "argument validation: advisory, strict or off")

	for _, name := range []string{"name", "log-level", "validation"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		a.newServeCommand(),
		a.newToolsCommand(),
		a.newCallCommand(),
	)

	return rootCmd
}

// load merges configuration and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("Loaded config file", "path", used)
	}

	return nil
}

// newServer builds a server from the merged configuration.
func (a *app) newServer() (*mcpserver.Server, error) {
	mode, err := mcpserver.ParseValidationMode(a.cfg.Validation)
	if err != nil {
		return nil, err
	}

	server := mcpserver.New(a.cfg.Name,
		mcpserver.WithVersion(a.cfg.Version),
		mcpserver.WithInstructions(a.cfg.Instructions),
		mcpserver.WithValidationMode(mode),
		mcpserver.WithLogger(a.log),
	)

	registerBuiltinTools(server)

	resources, err := a.cfg.resources(a.v.ConfigFileUsed())
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}

	for _, res := range resources {
		server.AddResource(res)
	}

	return server, nil
}
