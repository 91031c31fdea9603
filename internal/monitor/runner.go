// internal/monitor/runner.go
package monitor

import (
	"context"
	"time"
)

// Run starts the ticker loop and emits one Sample per tick on out.
// One goroutine per probe. No overlap. No retries.
// A cycle blocks for several seconds of firmware delays, so a tick that
// arrives mid-cycle is dropped by the ticker rather than queued.
func (s *Sampler) Run(ctx context.Context, out chan<- Sample) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res := s.SampleOnce()
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
	}
}
