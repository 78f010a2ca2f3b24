package metrics

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	coremetrics "github.com/kilianp07/heatplan/core/metrics"
	"github.com/kilianp07/heatplan/core/model"
	"github.com/kilianp07/heatplan/infra/mqtt"
)

// Publisher sends JSON documents to a topic below a configured prefix.
type Publisher interface {
	Publish(ctx context.Context, suffix string, v any) error
}

// MqttSink publishes every combination result and run summary as JSON.
type MqttSink struct {
	pub     Publisher
	timeout time.Duration
}

// NewMqttSink wraps pub. Each publish is bounded by timeout, 10s when zero.
func NewMqttSink(pub Publisher, timeout time.Duration) *MqttSink {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MqttSink{pub: pub, timeout: timeout}
}

// NewMqttSinkFromConfig connects a result publisher to the broker.
func NewMqttSinkFromConfig(cfg mqtt.Config) (*MqttSink, error) {
	pub, err := mqtt.NewResultPublisher(cfg)
	if err != nil {
		return nil, err
	}
	return NewMqttSink(pub, 0), nil
}

type combinationMessage struct {
	MessageID      string                `json:"message_id"`
	RunID          string                `json:"run_id"`
	House          string                `json:"house"`
	Heat           string                `json:"heat_option"`
	Solar          string                `json:"solar_option"`
	Evaluated      bool                  `json:"evaluated"`
	Tariff         string                `json:"tariff,omitempty"`
	PVSize         int                   `json:"pv_size"`
	SolarThermal   int                   `json:"solar_thermal_size"`
	StorageVolume  float64               `json:"storage_volume"`
	Result         *model.DispatchResult `json:"result,omitempty"`
	Points         int                   `json:"points"`
	Cells          int                   `json:"cells"`
	Exhaustive     bool                  `json:"exhaustive"`
	DurationMillis int64                 `json:"duration_ms"`
	Time           time.Time             `json:"time"`
}

type runMessage struct {
	MessageID      string    `json:"message_id"`
	RunID          string    `json:"run_id"`
	House          string    `json:"house"`
	Combinations   int       `json:"combinations"`
	Evaluated      int       `json:"evaluated"`
	Best           string    `json:"best,omitempty"`
	BestNPC        *float64  `json:"best_npc,omitempty"`
	Points         int       `json:"points"`
	DurationMillis int64     `json:"duration_ms"`
	Time           time.Time `json:"time"`
}

// RecordCombination publishes on results/<house>/<heat>/<solar>.
func (s *MqttSink) RecordCombination(res coremetrics.CombinationResult) error {
	spec := res.Specification
	c := spec.Combination
	msg := combinationMessage{
		MessageID:      uuid.NewString(),
		RunID:          res.RunID,
		House:          res.House,
		Heat:           c.Heat.Slug(),
		Solar:          c.Solar.Slug(),
		Evaluated:      spec.Evaluated,
		Points:         res.Points,
		Cells:          res.Cells,
		Exhaustive:     res.Exhaustive,
		DurationMillis: res.Duration.Milliseconds(),
		Time:           res.Time,
	}
	if spec.Evaluated {
		r := spec.Result
		msg.Tariff = spec.Tariff.String()
		msg.PVSize = spec.PVSize
		msg.SolarThermal = spec.SolarThermalSize
		msg.StorageVolume = spec.StorageVolume
		msg.Result = &r
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.pub.Publish(ctx, "results/"+topicSegment(res.House)+"/"+c.Heat.Slug()+"/"+c.Solar.Slug(), msg)
}

// RecordRun publishes on runs/<house>.
func (s *MqttSink) RecordRun(sum coremetrics.RunSummary) error {
	msg := runMessage{
		MessageID:      uuid.NewString(),
		RunID:          sum.RunID,
		House:          sum.House,
		Combinations:   sum.Combinations,
		Evaluated:      sum.Evaluated,
		Points:         sum.Points,
		DurationMillis: sum.Duration.Milliseconds(),
		Time:           sum.Time,
	}
	if sum.Evaluated > 0 && !math.IsInf(sum.BestNPC, 0) {
		npc := sum.BestNPC
		msg.Best = sum.Best.String()
		msg.BestNPC = &npc
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.pub.Publish(ctx, "runs/"+topicSegment(sum.House), msg)
}

// topicSegment replaces MQTT wildcard and separator characters.
func topicSegment(s string) string {
	if s == "" {
		return "default"
	}
	out := []rune(s)
	for i, r := range out {
		switch r {
		case '/', '+', '#', ' ':
			out[i] = '_'
		}
	}
	return string(out)
}

// Close disconnects the publisher when it owns a broker connection.
func (s *MqttSink) Close() {
	if c, ok := s.pub.(interface{ Close() }); ok {
		c.Close()
	}
}
