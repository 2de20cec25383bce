package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsim/internal/app"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := app.NewEngine(cmd.Context(), c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer engine.Close()

			return app.NewServer(c.cfg, c.logger, engine).Run(cmd.Context())
		},
	}
}
