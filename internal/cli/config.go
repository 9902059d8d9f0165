package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	mcpserver "github.com/wagiedev/mcp-server-go"
)

// envPrefix prefixes every environment variable read by the command line.
const envPrefix = "MCP_STARTER"

const (
	defaultName       = "mcp-starter"
	defaultLogLevel   = "info"
	defaultValidation = "advisory"
)

// Config is the merged configuration (flags > environment > file > defaults).
type Config struct {
	Name         string           `mapstructure:"name"`
	Version      string           `mapstructure:"version"`
	Instructions string           `mapstructure:"instructions"`
	LogLevel     string           `mapstructure:"log-level"`
	Validation   string           `mapstructure:"validation"`
	SDK          bool             `mapstructure:"sdk"`
	Resources    []ResourceConfig `mapstructure:"resources"`
}

// ResourceConfig declares a resource in the config file. The body is either
// inline Text or read from File, resolved relative to the config file.
type ResourceConfig struct {
	URI         string `mapstructure:"uri"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	MIMEType    string `mapstructure:"mime-type"`
	Text        string `mapstructure:"text"`
	File        string `mapstructure:"file"`
}

// newViper returns a viper instance with defaults and environment binding.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("name", defaultName)
	v.SetDefault("version", mcpserver.DefaultVersion)
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("validation", defaultValidation)
	v.SetDefault("sdk", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// loadConfig reads the config file, if any, and unmarshals the merged state.
// A missing file is only an error when it was named explicitly.
func loadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("mcp-starter")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := errors.AsType[viper.ConfigFileNotFoundError](err); !ok || cfgFile != "" {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// resources converts the configured resources, reading file bodies relative to
// the directory of configFile.
func (c *Config) resources(configFile string) ([]mcpserver.Resource, error) {
	baseDir := "."
	if configFile != "" {
		baseDir = filepath.Dir(configFile)
	}

	out := make([]mcpserver.Resource, 0, len(c.Resources))

	for i, rc := range c.Resources {
		if rc.URI == "" {
			return nil, fmt.Errorf("resource %d: missing uri", i)
		}

		text := rc.Text

		if rc.File != "" {
			path := rc.File
			if !filepath.IsAbs(path) {
				path = filepath.Join(baseDir, path)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("resource %q: %w", rc.URI, err)
			}

			text = string(data)
		}

		name := rc.Name
		if name == "" {
			name = rc.URI
		}

		out = append(out, mcpserver.Resource{
			URI:         rc.URI,
			Name:        name,
			Description: rc.Description,
			MIMEType:    rc.MIMEType,
			Text:        text,
		})
	}

	return out, nil
}
