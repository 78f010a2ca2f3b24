package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/kilianp07/heatplan/app"
	"github.com/kilianp07/heatplan/config"
	"github.com/kilianp07/heatplan/core/scheduler"
)

var batchCmd = &cobra.Command{
	Use:   "batch <houses.yaml|houses.json>",
	Short: "Optimise every house listed in a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	b, err := scheduler.LoadBatch(args[0])
	if err != nil {
		return err
	}
	if len(b.Houses) == 0 {
		return errors.New("batch file lists no houses")
	}
	ctx, stop := signalContext()
	defer stop()
	return withService(func(svc *app.Service, _ *config.Config) error {
		reports, runErr := svc.Batch(ctx, b)
		if len(reports) > 0 {
			if err := svc.Output(reports); err != nil {
				return err
			}
		}
		return runErr
	})
}
