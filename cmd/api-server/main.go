package main

import (
	"brainvault/config"
	"brainvault/pkg/database"
	"brainvault/pkg/log"
	"brainvault/pkg/server"
	"brainvault/pkg/snowflake"
	"brainvault/pkg/validate"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "BrainVault API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   path,
				Usage:   "config file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg, err := setup(ctx.String("config"))
					if err != nil {
						return err
					}

					appProvider, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					cfg, err := setup(ctx.String("config"))
					if err != nil {
						return err
					}

					db, err := database.Open(cfg.Database)
					if err != nil {
						return err
					}
					if err := database.Migrate(db); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.String("driver", cfg.Database.Driver))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

func setup(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log.SetDebug(cfg.Debug())

	if cfg.App.NodeID > 0 {
		if err := snowflake.SetNode(cfg.App.NodeID); err != nil {
			return nil, err
		}
	}
	if err := validate.Register(); err != nil {
		return nil, err
	}
	return cfg, nil
}
