package cmd

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"schedsim/api"
	"schedsim/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scheduling HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.GetSchedulerConfig()

		app := fiber.New()
		api.RegisterRoutes(app, api.NewSchedulerHandlerImpl(cfg))

		logrus.Infof("listening on :%d", cfg.Port)
		logrus.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
	},
}
