package anim

import (
	"log/slog"
	"time"

	"github.com/gogpu/chart"
)

// Scheduler plays one batch against a caller-supplied clock.
//
// It is cooperative: nothing happens between Tick calls, and Tick must not
// be called concurrently.
type Scheduler struct {
	batch   *Batch
	start   time.Time
	end     time.Duration
	running bool
}

// Start begins playing b at now. A running batch is replaced.
func (s *Scheduler) Start(b *Batch, now time.Time) {
	s.batch = b
	s.start = now
	s.end = b.End()
	s.running = true
	chart.Logger().Debug("anim: batch started",
		slog.Int("tasks", b.Len()),
		slog.Duration("end", s.end))
}

// Running reports whether a batch is in flight.
func (s *Scheduler) Running() bool {
	return s.running
}

// Tick returns the frames at now and whether the batch has completed. The
// completing tick carries every target at its final value. Without a
// running batch Tick returns (nil, true).
func (s *Scheduler) Tick(now time.Time) ([]Frame, bool) {
	if !s.running {
		return nil, true
	}
	elapsed := now.Sub(s.start)
	if elapsed >= s.end {
		frames := s.batch.Frames(s.end)
		s.Discard()
		return frames, true
	}
	return s.batch.Frames(max(elapsed, 0)), false
}

// Discard drops the batch without emitting further frames.
func (s *Scheduler) Discard() {
	s.batch = nil
	s.running = false
}
