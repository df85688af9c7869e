package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"

	"github.com/orchahq/nodekit/pkg/resolve"
)

// ResolveCommand resolves raw parameters against a node description and
// prints the resolved tree as JSON.
func ResolveCommand() *cli.Command {
	return &cli.Command{
		Name:    "resolve",
		Aliases: []string{"r"},
		Usage:   "Resolve raw node parameters",
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

			return printJSON(resolved)
		},
	}
}

// readParams parses the params flag, following an @file reference when
// given.
func readParams(raw string) (map[string]any, error) {
	if strings.HasPrefix(raw, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(raw, "@"))
		if err != nil {
			return nil, fmt.Errorf("failed to read params file: %w", err)
		}

		raw = string(data)
	}

	var params map[string]any
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, fmt.Errorf("failed to parse params: %w", err)
	}

	return params, nil
}

func printJSON(value any) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(os.Stdout, string(out))

	return err
}
