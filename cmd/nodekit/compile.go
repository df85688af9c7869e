package main

import (
	"context"

	cli "github.com/urfave/cli/v3"

	"github.com/orchahq/nodekit/pkg/resolve"
	"github.com/orchahq/nodekit/pkg/routing"
)

// CompileCommand resolves raw parameters and compiles the node's routing
// template into a request descriptor, printed as JSON.
func CompileCommand() *cli.Command {
	return &cli.Command{
		Name:    "compile",
		Aliases: []string{"c"},
		Usage:   "Compile a request descriptor from raw node parameters",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "node",
				Aliases:  []string{"n"},
				Usage:    "Node name",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "version",
				Usage: "Node version (latest if omitted)",
			},
			&cli.StringFlag{
				Name:    "params",
				Aliases: []string{"p"},
				Usage:   "Raw parameters as JSON, or @file to read from a file",
				Value:   "{}",
			},
			schemasFlag(),
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			logger := setupLogging(command)

			reg, err := newRegistry(logger, command.String("schemas"))
			if err != nil {
				return err
			}

			desc, err := reg.Get(command.String("node"), command.Int("version"))
			if err != nil {
				return err
			}

			params, err := readParams(command.String("params"))
			if err != nil {
				return err
			}

			engine := resolve.NewEngine(logger, nil)

			resolved, err := engine.Resolve(ctx, desc, params)
			if err != nil {
				return err
			}

			descriptor, err := routing.Compile(desc, resolved)
			if err != nil {
				return err
			}

			return printJSON(descriptor)
		},
	}
}
