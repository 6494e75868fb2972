package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/kumo-ai/kumo-skills-catalog/internal/export"
	"github.com/kumo-ai/kumo-skills-catalog/internal/util"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print the discovered skills without touching the README",
		Description: `List catalog records in discovery order.

   Examples:
     skillcatalog list
     skillcatalog list --format yaml --domain github`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(export.FormatMarkdown),
				Usage:   "Output format (json, yaml, markdown)",
			},
			&cli.StringFlag{
				Name:  "domain",
				Usage: "Only list skills in this domain",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			format, err := export.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			_, records, err := loadCatalog(util.ExpandPath(cmd.String("root")))
			if err != nil {
				return err
			}

			exporter := export.New(export.Options{
				Format: format,
				Domain: cmd.String("domain"),
			})
			return exporter.Export(records, cmd.Root().Writer)
		},
	}
}
