package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

type Variant string

const (
	Default     Variant = "default"
	Destructive Variant = "destructive"
)

// Notification is a user-visible toast.
type Notification struct {
	Title   string
	Message string
	Variant Variant
}

type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to a logger. Destructive ones are
// logged as warnings.
type LogNotifier struct {
	Log logrus.FieldLogger
}

func (l LogNotifier) Notify(n Notification) {
	entry := l.Log.WithField("title", n.Title)
	if n.Variant == Destructive {
		entry.Warn(n.Message)
		return
	}
	entry.Info(n.Message)
}

// Writer prints one line per notification. It is also an io.Writer so
// other output can be interleaved safely with notifications.
type Writer struct {
	mu sync.Mutex
	W  io.Writer
}

func (w *Writer) Notify(n Notification) {
	w.mu.Lock()
	defer w.mu.Unlock()
	prefix := "*"
	if n.Variant == Destructive {
		prefix = "!"
	}
	fmt.Fprintf(w.W, "%s %s: %s\n", prefix, n.Title, n.Message)
}

func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.W.Write(p)
}

// Func adapts a function to Notifier.
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

type Discard struct{}

func (Discard) Notify(Notification) {}

// Recorder keeps every notification. Safe for concurrent use.
type Recorder struct {
	mu  sync.Mutex
	all []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, n)
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.all))
	copy(out, r.all)
	return out
}

// Titles returns the title of every recorded notification in order.
func (r *Recorder) Titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	titles := make([]string, len(r.all))
	for i, n := range r.all {
		titles[i] = n.Title
	}
	return titles
}

func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.all) == 0 {
		return Notification{}, false
	}
	return r.all[len(r.all)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = nil
}
