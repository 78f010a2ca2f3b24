package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/heatplan/core/model"
)

func TestEvaluateRequest(t *testing.T) {
	old := evalFlags
	t.Cleanup(func() { evalFlags = old })

	evalFlags.heat = "gshp"
	evalFlags.solar = "PV"
	evalFlags.tariff = "octopus-go"
	evalFlags.pvSize = 8
	evalFlags.storageVolume = 0.3
	req, err := evaluateRequest()
	require.NoError(t, err)
	assert.Equal(t, model.GroundSourceHeatPump, req.Combination.Heat)
	assert.Equal(t, model.SolarPV, req.Combination.Solar)
	assert.Equal(t, model.OctopusGo, req.Tariff)
	assert.Equal(t, 8, req.PVSize)

	evalFlags.storageVolume = 0.05
	_, err = evaluateRequest()
	assert.Error(t, err)

	evalFlags.storageVolume = 0.1
	evalFlags.tariff = "nope"
	_, err = evaluateRequest()
	assert.ErrorIs(t, err, model.ErrUnknownOption)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"optimize", "evaluate", "batch", "nodes"} {
		assert.True(t, names[want], want)
	}
}
