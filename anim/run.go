package anim

import (
	"context"
	"time"
)

// DefaultFrameInterval is roughly one display frame at 60 Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// Ticker is anything driven frame by frame. Tick returns false once no
// further frames are needed.
type Ticker interface {
	Tick(now time.Time) bool
}

// Run calls t.Tick every interval until it returns false or ctx is done.
// It returns ctx.Err() when cancelled and nil otherwise.
func Run(ctx context.Context, interval time.Duration, t Ticker) error {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if !t.Tick(time.Now()) {
		return nil
	}
	tk := time.NewTicker(interval)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tk.C:
			if !t.Tick(now) {
				return nil
			}
		}
	}
}
