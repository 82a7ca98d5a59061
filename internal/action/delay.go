package action

import "time"

// Delayer blocks the calling goroutine for a fixed duration.
type Delayer interface {
	Wait(d time.Duration)
}

// TimerDelayer waits on a time.Timer. It has no cancellation path.
type TimerDelayer struct{}

// Wait blocks until d has elapsed.
func (TimerDelayer) Wait(d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	<-t.C
}
