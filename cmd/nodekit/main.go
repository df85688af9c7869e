// Package main provides the nodekit command line interface.
package main

import (
	"context"
	"log/slog"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/orchahq/nodekit/pkg/log"
	"github.com/orchahq/nodekit/pkg/registry"
)

func main() {
	cmd := &cli.Command{
		Name:                  "nodekit",
		Usage:                 "Validate node schemas, resolve parameters and compile requests",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			ValidateCommand(),
			ResolveCommand(),
			CompileCommand(),
			APICommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// newRegistry builds a registry with the built-in nodes and, when a schema
// directory is given, every description document found there.
func newRegistry(logger *slog.Logger, schemasPath string) (*registry.Registry, error) {
	reg := registry.NewRegistry(logger)

	if err := reg.RegisterBuiltins(); err != nil {
		return nil, err
	}

	if schemasPath != "" {
		if err := reg.LoadDirectory(schemasPath); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func schemasFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "schemas",
		Aliases: []string{"s"},
		Usage:   "Directory with additional node description documents",
		Sources: cli.EnvVars("NODEKIT_SCHEMAS"),
	}
}

func setupLogging(command *cli.Command) *slog.Logger {
	log.Setup(command.String("log-level"))

	return log.WithModule("cli")
}
