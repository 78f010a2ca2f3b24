package metrics

import (
	"context"

	"github.com/kilianp07/heatplan/core/logger"
	coremetrics "github.com/kilianp07/heatplan/core/metrics"
	"github.com/kilianp07/heatplan/core/scheduler"
	"github.com/kilianp07/heatplan/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and forwards scheduler
// events to sink. It stops when the context is canceled or the bus is
// closed; the returned channel is closed once it has stopped.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.MetricsSink, log logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	if log == nil {
		log = logger.Nop{}
	}
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case scheduler.CombinationEvaluated:
					if err := sink.RecordCombination(e.Result); err != nil {
						log.Errorf("record %s: %v", e.Result.Specification.Combination, err)
					}
				case scheduler.RunCompleted:
					if r, ok := sink.(coremetrics.RunRecorder); ok {
						if err := r.RecordRun(e.Summary); err != nil {
							log.Errorf("record run %s: %v", e.Summary.RunID, err)
						}
					}
				}
			}
		}
	}()
	return done
}
