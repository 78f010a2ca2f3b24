package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/heatplan/app"
	"github.com/kilianp07/heatplan/config"
	"github.com/kilianp07/heatplan/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "heatplan",
	Short: "Domestic heating system optimiser",
	Long: "heatplan simulates a year of hourly operation for every heat source and " +
		"solar combination of a house and reports the lowest net present cost system of each.",
	SilenceUsage: true,
	RunE:         runOptimize,
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimise the house described in the configuration",
	RunE:  runOptimize,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.AddCommand(optimizeCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// withService loads the configuration, builds the service and closes it after fn.
func withService(fn func(*app.Service, *config.Config) error) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return fn(svc, cfg)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()
	return withService(func(svc *app.Service, cfg *config.Config) error {
		if err := cfg.House.Validate(); err != nil {
			return err
		}
		return svc.Run(ctx)
	})
}
