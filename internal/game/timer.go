package game

import "time"

// Timer measures elapsed time on the world clock. The zero value is stopped.
type Timer struct {
	started   bool
	paused    bool
	startedAt time.Duration
	pausedFor time.Duration // Elapsed time captured at pause
}

// Start (re)starts the timer at now.
func (t *Timer) Start(now time.Duration) {
	t.started = true
	t.paused = false
	t.startedAt = now
	t.pausedFor = 0
}

// Stop clears the timer.
func (t *Timer) Stop() {
	*t = Timer{}
}

// Pause freezes a running timer.
func (t *Timer) Pause(now time.Duration) {
	if t.started && !t.paused {
		t.paused = true
		t.pausedFor = now - t.startedAt
	}
}

// Unpause resumes a paused timer from where it froze.
func (t *Timer) Unpause(now time.Duration) {
	if t.started && t.paused {
		t.paused = false
		t.startedAt = now - t.pausedFor
		t.pausedFor = 0
	}
}

// Elapsed returns the running time, zero for a stopped timer.
func (t *Timer) Elapsed(now time.Duration) time.Duration {
	switch {
	case !t.started:
		return 0
	case t.paused:
		return t.pausedFor
	default:
		return now - t.startedAt
	}
}

// Started reports whether the timer is running or paused.
func (t *Timer) Started() bool { return t.started }

// Paused reports whether the timer is started and paused.
func (t *Timer) Paused() bool { return t.started && t.paused }
