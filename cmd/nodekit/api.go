package main

import (
	"context"

	cli "github.com/urfave/cli/v3"

	"github.com/orchahq/nodekit/pkg/log"
	"github.com/orchahq/nodekit/pkg/resolve"
	"github.com/orchahq/nodekit/pkg/web"
)

const defaultPort = 9095

// APICommand starts the HTTP API serving the registered node descriptions.
func APICommand() *cli.Command {
	return &cli.Command{
		Name:    "api",
		Aliases: []string{"a"},
		Usage:   "Start the node API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			schemasFlag(),
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			setupLogging(command)
			logger := log.WithModule("api")

			logger.InfoContext(ctx, "Initializing Nodekit API")

			reg, err := newRegistry(logger, command.String("schemas"))
			if err != nil {
				return err
			}

			engine := resolve.NewEngine(logger, nil)
			api := web.NewAPI(logger, reg, engine)

			return api.Start(command.Int("port"))
		},
	}
}
