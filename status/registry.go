// Package status collects per-session gameplay statistics
package status

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/event"
)

// Metric names
const (
	MetricTicks      = "ticks"
	MetricPaddleHits = "paddle_hits"
	MetricWallHits   = "wall_hits"
	MetricGoalsAI    = "goals_ai"
	MetricGoalsYou   = "goals_player"
	MetricPeakSpeed  = "peak_puck_speed"
)

// Registry holds counters and gauges for one session
// The game loop writes, readers may observe from any goroutine
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
	}
}

// RecordTick counts one simulation step and its events
func (r *Registry) RecordTick(evs []event.Event, puckSpeed float64) {
	r.Counters.Get(MetricTicks).Add(1)
	r.Gauges.Get(MetricPeakSpeed).Max(puckSpeed)

	for _, ev := range evs {
		switch ev.Type {
		case event.EventPaddleHit:
			r.Counters.Get(MetricPaddleHits).Add(1)
		case event.EventWallHit:
			r.Counters.Get(MetricWallHits).Add(1)
		case event.EventGoalScored:
			if ev.Side == core.SideAI {
				r.Counters.Get(MetricGoalsAI).Add(1)
			} else {
				r.Counters.Get(MetricGoalsYou).Add(1)
			}
		}
	}
}

// Count returns a counter value, zero if never recorded
func (r *Registry) Count(name string) int64 {
	return r.Counters.Get(name).Load()
}

// Fields returns every metric as zap fields in name order
func (r *Registry) Fields() []zap.Field {
	fields := make([]zap.Field, 0, r.Counters.Count()+r.Gauges.Count())
	r.Counters.Range(func(k string, v *atomic.Int64) {
		fields = append(fields, zap.Int64(k, v.Load()))
	})
	r.Gauges.Range(func(k string, v *AtomicFloat) {
		fields = append(fields, zap.Float64(k, v.Get()))
	})
	return fields
}
