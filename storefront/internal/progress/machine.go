// Package progress simulates delivery of a placed order as a sequence of
// timed progress steps.
package progress

import (
	"errors"
	"sync"
	"time"
)

var ErrAlreadyRunning = errors.New("order progress already running")

const (
	DefaultInterval = 2 * time.Second
	DefaultGrace    = 2 * time.Second
)

// Hooks are called from scheduler callbacks, never while the machine lock
// is held. Any of them may be nil.
type Hooks struct {
	OnStatus    func(status Status, progress int)
	OnDelivered func()
	OnReset     func()
}

type Config struct {
	Interval time.Duration
	Grace    time.Duration
}

type Machine struct {
	mu        sync.Mutex
	scheduler Scheduler
	hooks     Hooks
	interval  time.Duration
	grace     time.Duration

	progress  int
	running   bool
	delivered bool
	gen       uint64
	pending   Task
}

func NewMachine(scheduler Scheduler, cfg Config, hooks Hooks) *Machine {
	if scheduler == nil {
		scheduler = TimerScheduler{}
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Grace <= 0 {
		cfg.Grace = DefaultGrace
	}
	return &Machine{
		scheduler: scheduler,
		hooks:     hooks,
		interval:  cfg.Interval,
		grace:     cfg.Grace,
	}
}

// Start begins a run from zero. The first step lands after one interval.
func (m *Machine) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return ErrAlreadyRunning
	}
	m.gen++
	m.running = true
	m.delivered = false
	m.progress = 0
	m.schedule(m.gen, m.interval, m.tick)
	return nil
}

// Stop abandons the current run. Callbacks already in flight are dropped.
func (m *Machine) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	if m.pending != nil {
		m.pending.Cancel()
		m.pending = nil
	}
	m.running = false
	m.delivered = false
	m.progress = 0
}

func (m *Machine) Progress() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress
}

func (m *Machine) Status() Status {
	return StatusFor(m.Progress())
}

func (m *Machine) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// schedule must be called with mu held.
func (m *Machine) schedule(gen uint64, d time.Duration, fn func(uint64)) {
	m.pending = m.scheduler.After(d, func() { fn(gen) })
}

func (m *Machine) tick(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || !m.running || m.delivered {
		m.mu.Unlock()
		return
	}
	m.pending = nil
	m.progress = Advance(m.progress)
	progress := m.progress
	done := progress >= Complete
	if done {
		m.delivered = true
	}
	m.mu.Unlock()

	if m.hooks.OnStatus != nil {
		m.hooks.OnStatus(StatusFor(progress), progress)
	}
	if done && m.hooks.OnDelivered != nil {
		m.hooks.OnDelivered()
	}

	// The next step is scheduled only once this step's hooks have returned.
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return
	}
	if done {
		m.schedule(gen, m.grace, m.reset)
		return
	}
	m.schedule(gen, m.interval, m.tick)
}

func (m *Machine) reset(gen uint64) {
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return
	}
	m.gen++
	m.pending = nil
	m.progress = 0
	m.running = false
	m.delivered = false
	m.mu.Unlock()

	if m.hooks.OnReset != nil {
		m.hooks.OnReset()
	}
}
