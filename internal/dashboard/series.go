package dashboard

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
)

// seriesCapacity is the fixed length of the consumption window.
const seriesCapacity = 24

// hourLabel formats a point-in-time as the chart's hour label.
func hourLabel(t time.Time) string {
	return t.Format("15")
}

// defaultSampler draws a consumption value in the 150-200 W band the
// demo chart renders.
func defaultSampler() float64 {
	return rand.Float64()*50 + 150
}

// SeriesBuffer is the rolling consumption window: always exactly 24
// points, oldest evicted on every tick.
type SeriesBuffer struct {
	mu      sync.Mutex
	points  []model.SeriesPoint
	sampler func() float64
	now     func() time.Time
}

// NewSeriesBuffer builds a buffer pre-filled with one point per hour
// going backward from now. A nil sampler uses the default band.
func NewSeriesBuffer(sampler func() float64) *SeriesBuffer {
	b := &SeriesBuffer{
		sampler: sampler,
		now:     time.Now,
	}
	if b.sampler == nil {
		b.sampler = defaultSampler
	}

	now := b.now()
	b.points = make([]model.SeriesPoint, 0, seriesCapacity)
	for i := seriesCapacity - 1; i >= 0; i-- {
		b.points = append(b.points, model.SeriesPoint{
			TimeLabel:   hourLabel(now.Add(-time.Duration(i) * time.Hour)),
			Consumption: b.sampler(),
		})
	}
	return b
}

// Tick evicts the oldest point and appends a freshly sampled one.
// Length is invariant across every tick.
func (b *SeriesBuffer) Tick() {
	b.mu.Lock()
	defer b.mu.Unlock()

	copy(b.points, b.points[1:])
	b.points[seriesCapacity-1] = model.SeriesPoint{
		TimeLabel:   hourLabel(b.now()),
		Consumption: b.sampler(),
	}
}

// Points returns a copy of the window, oldest first.
func (b *SeriesBuffer) Points() []model.SeriesPoint {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]model.SeriesPoint, len(b.points))
	copy(out, b.points)
	return out
}
