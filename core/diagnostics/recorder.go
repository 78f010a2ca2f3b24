package diagnostics

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/heatplan/core/logger"
	"github.com/kilianp07/heatplan/core/surface"
)

// Recorder writes surface nodes to a Store. It is safe for concurrent use by
// several surfaces. Write failures are logged and counted, never returned, so
// a broken store cannot abort an optimisation.
type Recorder struct {
	store   Store
	session string
	house   string
	log     logger.Logger
	now     func() time.Time

	mu       sync.Mutex
	written  atomic.Int64
	failures atomic.Int64
}

var _ surface.NodeRecorder = (*Recorder)(nil)

// NewRecorder returns a Recorder labelling records with house and a fresh session id.
func NewRecorder(store Store, house string, log logger.Logger) *Recorder {
	if log == nil {
		log = logger.Nop{}
	}
	return &Recorder{
		store:   store,
		session: uuid.NewString(),
		house:   house,
		log:     log,
		now:     time.Now,
	}
}

// Session returns the identifier shared by every record of this recorder.
func (r *Recorder) Session() string { return r.session }

// RecordNode implements surface.NodeRecorder.
func (r *Recorder) RecordNode(n surface.Node) {
	rec := NodeRecord{
		Session:          r.session,
		House:            r.house,
		Timestamp:        r.now(),
		Heat:             n.Combination.Heat.Slug(),
		Solar:            n.Combination.Solar.Slug(),
		Point:            n.Point,
		PVSize:           n.Request.PVSize,
		SolarThermalSize: n.Request.SolarThermalSize,
		StorageVolume:    n.Request.StorageVolume,
		Tariff:           n.Request.Tariff.String(),
		Result:           n.Result,
	}
	r.mu.Lock()
	err := r.store.Append(context.Background(), rec)
	r.mu.Unlock()
	if err != nil {
		if r.failures.Add(1) == 1 {
			r.log.Errorf("diagnostics write failed for %s: %v", n.Combination, err)
		}
		return
	}
	r.written.Add(1)
}

// Written returns the number of records stored.
func (r *Recorder) Written() int64 { return r.written.Load() }

// Failures returns the number of records the store rejected.
func (r *Recorder) Failures() int64 { return r.failures.Load() }
