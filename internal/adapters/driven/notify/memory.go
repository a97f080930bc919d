package notify

import (
	"sync"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
)

// Ensure Recorder implements the interface.
var _ driven.Notifier = (*Recorder)(nil)

// Notification is one recorded message.
type Notification struct {
	Level   driven.NotifyLevel
	Message string
}

// Recorder keeps notifications in memory. Used in tests and for
// non-interactive runs that print a summary afterwards.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify records the notification.
func (r *Recorder) Notify(level driven.NotifyLevel, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Notification{Level: level, Message: message})
}

// All returns a copy of every recorded notification in order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Messages returns the recorded messages at level, in order.
func (r *Recorder) Messages(level driven.NotifyLevel) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, n := range r.items {
		if n.Level == level {
			out = append(out, n.Message)
		}
	}
	return out
}
