package main

import (
	"os"

	"deliverycost/cmd"
	"deliverycost/internal/adapters/in/cli"
	"deliverycost/internal/obs"

	"github.com/spf13/cobra"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := obs.NewLogger("console", configs.LogLevel, os.Stderr)

	app, err := cmd.NewCompositionRoot(configs, logger, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("build composition root")
	}

	handler, err := app.CreateCalculateDeliveryCostCommandHandler()
	if err != nil {
		logger.Fatal().Err(err).Msg("build calculate handler")
	}

	root := &cobra.Command{
		Use:          "deliverycost",
		Short:        "Delivery cost pricing rules",
		SilenceUsage: true,
	}
	root.AddCommand(cli.NewCalculateCommand(app.CreateOrderFactory(), handler, configs.OrderFile))

	if err = root.Execute(); err != nil {
		os.Exit(1)
	}
}
