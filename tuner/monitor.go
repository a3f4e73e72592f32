package tuner

import (
	"context"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/fretdex/tuning"
	"golang.org/x/time/rate"
)

// Monitor turns a stream of sample buffers into readings. Readings are
// published at most at the configured rate; when the pitch stops arriving for
// the settle delay the last one is handed to the settled callback.
type Monitor struct {
	sampleRate int
	tuning     tuning.Tuning
	limiter    *rate.Limiter
	debounced  func(func())
	onSettled  func(Reading)
}

type Option func(*Monitor)

// WithRate caps how often readings are published.
func WithRate(every time.Duration) Option {
	return func(m *Monitor) {
		if every <= 0 {
			m.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		m.limiter = rate.NewLimiter(rate.Every(every), 1)
	}
}

// WithSettled registers fn for the reading left standing after delay
// without a new detection.
func WithSettled(delay time.Duration, fn func(Reading)) Option {
	return func(m *Monitor) {
		m.debounced = debounce.New(delay)
		m.onSettled = fn
	}
}

func NewMonitor(sampleRate int, t tuning.Tuning, opts ...Option) *Monitor {
	m := &Monitor{
		sampleRate: sampleRate,
		tuning:     t,
		limiter:    rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run reads buffers until frames is closed or ctx is done. The returned
// channel is closed when Run stops.
func (m *Monitor) Run(ctx context.Context, frames <-chan []float32) <-chan Reading {
	out := make(chan Reading)
	go func() {
		defer close(out)
		for {
			var buf []float32
			select {
			case <-ctx.Done():
				return
			case b, ok := <-frames:
				if !ok {
					return
				}
				buf = b
			}

			hz, ok := Detect(buf, m.sampleRate)
			if !ok {
				continue
			}
			reading, ok := Read(hz, m.tuning)
			if !ok {
				continue
			}
			if m.debounced != nil {
				r := reading
				m.debounced(func() { m.onSettled(r) })
			}
			if !m.limiter.Allow() {
				continue
			}
			select {
			case out <- reading:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
