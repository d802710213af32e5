package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/mailinglist/cmd/app/commands"
	"github.com/allisson/mailinglist/internal/app"
	"github.com/allisson/mailinglist/internal/config"
)

func getSubscriberCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "register-subscriber",
			Usage: "Register a subscriber on the mailing list",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "Subscriber name",
				},
				&cli.StringFlag{
					Name:    "email",
					Aliases: []string{"e"},
					Usage:   "Subscriber email address",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				controller, err := container.SubscriberController()
				if err != nil {
					return err
				}

				return commands.RunRegisterSubscriber(
					ctx,
					controller,
					container.Logger(),
					cmd.String("name"),
					cmd.String("email"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
