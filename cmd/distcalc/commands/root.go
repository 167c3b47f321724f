package commands

import (
	"address-distance-service/internal/app"
	"address-distance-service/internal/config"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	calc     ports.DistanceCalculator
	logLevel string
)

func Execute() error {
	root := &cobra.Command{
		Use:           "distcalc",
		Short:         "Driving distance between two postal addresses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			if logLevel == "" {
				logLevel = cfg.LogLevel
			}
			obs.Configure(logLevel, "text", os.Stderr)

			calc = app.NewDistanceCalculator(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default from LOG_LEVEL)")

	root.AddCommand(getCmd(), batchCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return root.ExecuteContext(ctx)
}
