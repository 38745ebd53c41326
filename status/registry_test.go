package status

import (
	"sync"
	"testing"

	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/event"
)

func TestRecordTick(t *testing.T) {
	r := NewRegistry()

	r.RecordTick(nil, 5)
	r.RecordTick([]event.Event{
		event.PaddleHit(core.SidePlayer, 2),
		event.WallHit(2),
		event.WallHit(2),
	}, 9)
	r.RecordTick([]event.Event{event.GoalScored(core.SideAI, 3)}, 3)
	r.RecordTick([]event.Event{event.GoalScored(core.SidePlayer, 4)}, 4)

	tests := []struct {
		name string
		want int64
	}{
		{MetricTicks, 4},
		{MetricPaddleHits, 1},
		{MetricWallHits, 2},
		{MetricGoalsAI, 1},
		{MetricGoalsYou, 1},
	}
	for _, tt := range tests {
		if got := r.Count(tt.name); got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, got, tt.want)
		}
	}

	if got := r.Gauges.Get(MetricPeakSpeed).Get(); got != 9 {
		t.Errorf("peak speed = %v, want 9", got)
	}
}

func TestFieldsSorted(t *testing.T) {
	r := NewRegistry()
	r.RecordTick([]event.Event{event.WallHit(1)}, 2)

	fields := r.Fields()
	want := []string{MetricTicks, MetricWallHits, MetricPeakSpeed}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for i, f := range fields {
		if f.Key != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.Key, want[i])
		}
	}
}

func TestAtomicFloatMaxConcurrent(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			f.Max(v)
		}(float64(i))
	}
	wg.Wait()

	if got := f.Get(); got != 100 {
		t.Errorf("Max = %v, want 100", got)
	}
	if got := f.Max(3); got != 100 {
		t.Errorf("lower value changed max to %v", got)
	}
}
