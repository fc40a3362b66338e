package store

import (
	"sync"

	"github.com/google/uuid"
)

// AlertKind distinguishes success notices from failures.
type AlertKind string

const (
	AlertMessage AlertKind = "message"
	AlertError   AlertKind = "error"
)

// Alert is one transient notification. IDs are client-generated, so two
// alerts with identical content still render as distinct entries.
type Alert struct {
	ID      string
	Kind    AlertKind
	Content string
}

// Alerts is the insertion-ordered list of live notifications. The store
// holds no timers; display code decides when an alert has been on screen
// long enough and removes it by id.
type Alerts struct {
	mu    sync.Mutex
	list  []Alert
	subs  []func()
}

// NewAlerts returns an empty alert list.
func NewAlerts() *Alerts {
	return &Alerts{}
}

// Add appends a new alert with a fresh id and returns it.
func (a *Alerts) Add(kind AlertKind, content string) Alert {
	alert := Alert{ID: uuid.NewString(), Kind: kind, Content: content}
	a.mu.Lock()
	a.list = append(a.list, alert)
	subs := a.subs
	a.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return alert
}

// Remove drops the alert with the given id, if still present.
func (a *Alerts) Remove(id string) {
	a.mu.Lock()
	kept := a.list[:0]
	removed := false
	for _, al := range a.list {
		if al.ID == id {
			removed = true
			continue
		}
		kept = append(kept, al)
	}
	a.list = kept
	subs := a.subs
	a.mu.Unlock()

	if !removed {
		return
	}
	for _, fn := range subs {
		fn()
	}
}

// Clear empties the list.
func (a *Alerts) Clear() {
	a.mu.Lock()
	a.list = nil
	subs := a.subs
	a.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// List returns a snapshot in insertion order.
func (a *Alerts) List() []Alert {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Alert, len(a.list))
	copy(out, a.list)
	return out
}

// Subscribe registers fn to run after every mutation.
func (a *Alerts) Subscribe(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.subs = append(a.subs, fn)
}
