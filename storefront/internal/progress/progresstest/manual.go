// Package progresstest provides a hand-driven Scheduler for tests.
package progresstest

import (
	"sort"
	"sync"
	"time"

	"crawingo-delivery/storefront/internal/progress"
)

// ManualScheduler keeps a virtual clock. Callbacks run on the goroutine
// that calls Advance or Step, never on their own.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	s        *ManualScheduler
	due      time.Duration
	seq      int
	fn       func()
	canceled bool
}

func (t *manualTask) Cancel() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.canceled = true
}

func (s *ManualScheduler) After(d time.Duration, fn func()) progress.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTask{s: s, due: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Pending counts scheduled callbacks that are neither run nor canceled.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}

func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// next pops the earliest live task due at or before limit.
func (s *ManualScheduler) next(limit time.Duration) *manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.canceled {
			live = append(live, t)
		}
	}
	s.tasks = live
	if len(s.tasks) == 0 {
		return nil
	}
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due != s.tasks[j].due {
			return s.tasks[i].due < s.tasks[j].due
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})
	first := s.tasks[0]
	if first.due > limit {
		return nil
	}
	s.tasks = s.tasks[1:]
	if first.due > s.now {
		s.now = first.due
	}
	return first
}

// Advance moves the clock forward by d and runs everything that falls due,
// including callbacks scheduled by those callbacks.
func (s *ManualScheduler) Advance(d time.Duration) {
	limit := s.Now() + d
	for {
		t := s.next(limit)
		if t == nil {
			break
		}
		t.fn()
	}
	s.mu.Lock()
	s.now = limit
	s.mu.Unlock()
}

// Step runs the earliest pending callback regardless of its due time.
// It reports whether anything ran.
func (s *ManualScheduler) Step() bool {
	t := s.next(1<<62 - 1)
	if t == nil {
		return false
	}
	t.fn()
	return true
}
