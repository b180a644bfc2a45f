package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/leadmail/cmd/app/commands"
	"github.com/allisson/leadmail/internal/app"
	"github.com/allisson/leadmail/internal/config"
)

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getCampaignCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "activate-due",
			Usage: "Enqueue every scheduled campaign whose send time has passed",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				campaignUseCase, err := container.CampaignUseCase()
				if err != nil {
					return err
				}

				return commands.RunActivateDue(
					ctx,
					campaignUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "reclaim-leases",
			Usage: "Requeue recipient tasks whose worker lease expired",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				queueUseCase, err := container.QueueUseCase()
				if err != nil {
					return err
				}

				return commands.RunReclaimLeases(
					ctx,
					queueUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "send-campaign",
			Usage: "Send a draft or scheduled campaign immediately",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Campaign ID (UUID)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				campaignUseCase, err := container.CampaignUseCase()
				if err != nil {
					return err
				}

				return commands.RunSendCampaign(
					ctx,
					campaignUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("format"),
				)
			},
		},
	}
}
