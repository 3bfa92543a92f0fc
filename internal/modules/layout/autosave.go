package layout

import (
	"sync"
	"time"
)

// Autosaver debounces save intents: each Touch restarts the quiet-period
// timer, so a burst of edits coalesces into one save. It is an explicit
// scheduler owned by the session lifecycle and cancelled deterministically
// on Close; a timer that fires after Close never invokes the save func.
type Autosaver struct {
	mu     sync.Mutex
	delay  time.Duration
	save   func()
	timer  *time.Timer
	closed bool
}

func NewAutosaver(delay time.Duration, save func()) *Autosaver {
	return &Autosaver{
		delay: delay,
		save:  save,
	}
}

// Touch (re)schedules the save after the quiet period.
func (a *Autosaver) Touch() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

// Cancel drops the pending save, if any.
func (a *Autosaver) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// Close cancels and prevents any further scheduling.
func (a *Autosaver) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.timer = nil
	save := a.save
	a.mu.Unlock()

	save()
}
