package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/heatplan/config"
	"github.com/kilianp07/heatplan/core/diagnostics"
)

var nodeQuery diagnostics.Query

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Query simulated nodes recorded by the diagnostics store",
	RunE:  runNodes,
}

func init() {
	f := nodesCmd.Flags()
	f.StringVar(&nodeQuery.Session, "session", "", "recorder session id")
	f.StringVar(&nodeQuery.House, "house", "", "house name")
	f.StringVar(&nodeQuery.Heat, "heat", "", "heat option label")
	f.StringVar(&nodeQuery.Solar, "solar", "", "solar option label")
	f.StringVar(&nodeQuery.Tariff, "tariff", "", "tariff name")
	f.IntVar(&nodeQuery.Limit, "limit", 100, "maximum records, 0 for all")
	rootCmd.AddCommand(nodesCmd)
}

func runNodes(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	store, err := diagnostics.Open(cfg.Diagnostics)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("diagnostics are disabled: set diagnostics.backend")
	}
	defer store.Close()

	recs, err := store.Query(cmd.Context(), nodeQuery)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, r := range recs {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
