package main

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"

	"github.com/orchahq/nodekit/pkg/schema"
)

// ValidateCommand validates node description documents without registering
// them. Every file is checked; the command fails if any document is invalid.
func ValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Validate node description documents",
		ArgsUsage: "FILE [FILE...]",
		Action: func(ctx context.Context, command *cli.Command) error {
			logger := setupLogging(command)

			files := command.Args().Slice()
			if len(files) == 0 {
				return fmt.Errorf("no schema files given")
			}

			failed := 0

			for _, file := range files {
				desc, err := schema.LoadFile(file)
				if err != nil {
					failed++

					logger.Error("Schema is invalid", "file", file, "error", err)

					continue
				}

				logger.Info("Schema is valid", "file", file, "node", desc.Name, "version", desc.Version)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d schemas failed validation", failed, len(files))
			}

			return nil
		},
	}
}
