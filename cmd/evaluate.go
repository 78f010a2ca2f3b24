package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/heatplan/app"
	"github.com/kilianp07/heatplan/config"
	"github.com/kilianp07/heatplan/core/dispatch"
	"github.com/kilianp07/heatplan/core/model"
)

var evalFlags struct {
	heat          string
	solar         string
	tariff        string
	pvSize        int
	solarThermal  int
	storageVolume float64
	trace         string
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Simulate one system for the configured house",
	RunE:  runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.StringVar(&evalFlags.heat, "heat", "ASHP", "heat source (ERH, ASHP, GSHP)")
	f.StringVar(&evalFlags.solar, "solar", "None", "solar option")
	f.StringVar(&evalFlags.tariff, "tariff", "flat-rate", "electricity tariff")
	f.IntVar(&evalFlags.pvSize, "pv-size", 0, "PV area in m2")
	f.IntVar(&evalFlags.solarThermal, "solar-thermal-size", 0, "collector area in m2")
	f.Float64Var(&evalFlags.storageVolume, "storage-volume", 0.1, "thermal store volume in m3")
	f.StringVar(&evalFlags.trace, "trace", "", "write the hourly state as CSV to this file")
	rootCmd.AddCommand(evaluateCmd)
}

func evaluateRequest() (dispatch.Request, error) {
	heat, err := model.ParseHeatOption(evalFlags.heat)
	if err != nil {
		return dispatch.Request{}, err
	}
	solar, err := model.ParseSolarOption(evalFlags.solar)
	if err != nil {
		return dispatch.Request{}, err
	}
	tariff, err := model.ParseTariff(evalFlags.tariff)
	if err != nil {
		return dispatch.Request{}, err
	}
	if evalFlags.storageVolume < 0.1 {
		return dispatch.Request{}, fmt.Errorf("storage volume must be at least 0.1 m3")
	}
	return dispatch.Request{
		Combination:      model.Combination{Heat: heat, Solar: solar},
		PVSize:           evalFlags.pvSize,
		SolarThermalSize: evalFlags.solarThermal,
		StorageVolume:    evalFlags.storageVolume,
		Tariff:           tariff,
	}, nil
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	req, err := evaluateRequest()
	if err != nil {
		return err
	}
	return withService(func(svc *app.Service, cfg *config.Config) error {
		var trace io.Writer
		if evalFlags.trace != "" {
			f, err := os.Create(evalFlags.trace)
			if err != nil {
				return err
			}
			defer f.Close()
			trace = f
		}
		res, err := svc.Evaluate(cfg.House, req, trace)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", req.Combination, req.Tariff)
		fmt.Fprintf(out, "capex     %.2f\n", res.Capex)
		fmt.Fprintf(out, "opex      %.2f (peak %.2f, off-peak %.2f)\n", res.Opex(), res.OpexPeak, res.OpexOffPeak)
		fmt.Fprintf(out, "npc       %.2f\n", res.NPC)
		fmt.Fprintf(out, "emissions %.0f\n", res.Emissions)
		return nil
	})
}
