package progress

import "time"

// Task is a pending callback handed out by a Scheduler.
type Task interface {
	Cancel()
}

// Scheduler runs fn once after d. Implementations may invoke fn on any
// goroutine.
type Scheduler interface {
	After(d time.Duration, fn func()) Task
}

// TimerScheduler schedules callbacks on runtime timers.
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) Task {
	return timerTask{time.AfterFunc(d, fn)}
}

type timerTask struct {
	t *time.Timer
}

func (t timerTask) Cancel() { t.t.Stop() }
