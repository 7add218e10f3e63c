package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/unidoc/unioffice/common/license"
	"pkt.systems/pslog"

	"github.com/slidesmith/ppt-tools-mcp/internal/appconfig"
	"github.com/slidesmith/ppt-tools-mcp/internal/server"
)

// Set by ldflags during release builds.
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// stdout belongs to the MCP protocol; all logging goes to stderr.
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx := pslog.ContextWithLogger(context.Background(), logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	root := newRootCmd(logger)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.With("err", err).Error("ppt-mcp failed")
		return 1
	}
	return 0
}

func newRootCmd(logger pslog.Logger) *cobra.Command {
	var (
		configPath   string
		transport    string
		addr         string
		templateDirs []string
	)
	root := &cobra.Command{
		Use:           "ppt-mcp",
		Short:         "MCP server for creating and editing PowerPoint presentations",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := appconfig.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("transport") {
				cfg.Transport = transport
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			cfg.TemplateDirs = append(cfg.TemplateDirs, templateDirs...)

			if key := os.Getenv("UNIDOC_LICENSE_API_KEY"); key != "" {
				if err := license.SetMeteredKey(key); err != nil {
					return fmt.Errorf("failed to set document library license: %w", err)
				}
			}

			srv := server.New(server.Config{
				Version:      version,
				TemplateDirs: cfg.TemplateDirs,
			}, logger)

			switch cfg.Transport {
			case appconfig.TransportHTTP:
				return srv.ServeHTTP(cfg.Addr)
			default:
				return srv.ServeStdio()
			}
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "optional YAML config file")
	root.Flags().StringVar(&transport, "transport", appconfig.TransportStdio, "MCP transport (stdio or http)")
	root.Flags().StringVar(&addr, "addr", ":8090", "listen address for the http transport")
	root.Flags().StringArrayVar(&templateDirs, "template-dir", nil, "extra directory searched for presentation templates (repeatable)")
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ppt-mcp %s (built %s, commit %s)\n", version, buildTime, gitCommit)
			return err
		},
	}
}
