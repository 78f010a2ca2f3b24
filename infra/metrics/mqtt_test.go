package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/heatplan/core/metrics"
	"github.com/kilianp07/heatplan/core/model"
)

type published struct {
	topic   string
	payload []byte
}

type fakePublisher struct {
	msgs []published
	err  error
}

func (f *fakePublisher) Publish(ctx context.Context, suffix string, v any) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	if f.err != nil {
		return f.err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.msgs = append(f.msgs, published{topic: suffix, payload: b})
	return nil
}

func TestMqttSink_RecordCombination(t *testing.T) {
	pub := &fakePublisher{}
	sink := NewMqttSink(pub, time.Second)

	res := evaluatedResult(time.Now())
	res.House = "12 High St/Flat 2"
	require.NoError(t, sink.RecordCombination(res))
	require.Len(t, pub.msgs, 1)
	assert.Equal(t, "results/12_High_St_Flat_2/air-source-heat-pump/photovoltaic", pub.msgs[0].topic)

	var got map[string]any
	require.NoError(t, json.Unmarshal(pub.msgs[0].payload, &got))
	assert.Equal(t, "run-1", got["run_id"])
	assert.Equal(t, "octopus-go", got["tariff"])
	assert.Equal(t, true, got["evaluated"])
	assert.NotEmpty(t, got["message_id"])
	result, ok := got["result"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 14123.4567, result["npc"], 1e-9)
}

func TestMqttSink_UnevaluatedOmitsResult(t *testing.T) {
	pub := &fakePublisher{}
	sink := NewMqttSink(pub, 0)
	res := coremetrics.CombinationResult{
		Specification: *model.NewSpecification(model.Combination{Heat: model.ResistiveHeating, Solar: model.SolarPVFlatPlate}),
	}
	require.NoError(t, sink.RecordCombination(res))
	require.Len(t, pub.msgs, 1)
	assert.Equal(t, "results/default/electric-boiler/flat-plate-and-photovoltaic", pub.msgs[0].topic)

	var got map[string]any
	require.NoError(t, json.Unmarshal(pub.msgs[0].payload, &got))
	_, hasResult := got["result"]
	assert.False(t, hasResult)
	assert.Equal(t, false, got["evaluated"])
}

func TestMqttSink_RecordRun(t *testing.T) {
	pub := &fakePublisher{}
	sink := NewMqttSink(pub, 0)

	require.NoError(t, sink.RecordRun(coremetrics.RunSummary{House: "h", BestNPC: math.Inf(1)}))
	require.NoError(t, sink.RecordRun(coremetrics.RunSummary{
		House: "h", Evaluated: 1, BestNPC: 10,
		Best: model.Combination{Heat: model.AirSourceHeatPump, Solar: model.SolarNone},
	}))
	require.Len(t, pub.msgs, 2)
	assert.Equal(t, "runs/h", pub.msgs[0].topic)
	assert.NotContains(t, string(pub.msgs[0].payload), "best_npc")
	assert.Contains(t, string(pub.msgs[1].payload), `"best_npc":10`)
}

func TestMqttSink_PropagatesErrors(t *testing.T) {
	fail := errors.New("broker down")
	sink := NewMqttSink(&fakePublisher{err: fail}, 0)
	assert.ErrorIs(t, sink.RecordCombination(evaluatedResult(time.Now())), fail)
}

type closingPublisher struct {
	fakePublisher
	closed bool
}

func (c *closingPublisher) Close() { c.closed = true }

func TestMqttSink_Close(t *testing.T) {
	pub := &closingPublisher{}
	NewMqttSink(pub, 0).Close()
	assert.True(t, pub.closed)

	// publishers without Close are left alone
	NewMqttSink(&fakePublisher{}, 0).Close()
}
