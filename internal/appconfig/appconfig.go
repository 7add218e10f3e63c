// Package appconfig loads the server's runtime configuration from an
// optional YAML file and PPTMCP_-prefixed environment variables.
package appconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Supported transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config is the resolved runtime configuration.
type Config struct {
	// Transport selects how the MCP server is exposed: "stdio" or "http".
	Transport string `mapstructure:"transport"`

	// Addr is the listen address for the http transport.
	Addr string `mapstructure:"addr"`

	// TemplateDirs are extra directories searched for presentation
	// templates.
	TemplateDirs []string `mapstructure:"template_dirs"`
}

// Load reads configuration. A non-empty path names a YAML file that must
// exist; environment variables (PPTMCP_TRANSPORT, PPTMCP_ADDR,
// PPTMCP_TEMPLATE_DIRS) override file values.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("transport", TransportStdio)
	v.SetDefault("addr", ":8090")
	v.SetDefault("template_dirs", []string{})

	v.SetEnvPrefix("PPTMCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := Config{
		Transport:    v.GetString("transport"),
		Addr:         v.GetString("addr"),
		TemplateDirs: v.GetStringSlice("template_dirs"),
	}
	if cfg.Transport != TransportStdio && cfg.Transport != TransportHTTP {
		return Config{}, fmt.Errorf("unknown transport %q (supported: stdio, http)", cfg.Transport)
	}
	return cfg, nil
}
