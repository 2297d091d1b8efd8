// Package stream fans live dashboard events out to connected clients.
package stream

import (
	"context"
	"sync"
	"time"

	"verifind.org/internal/catalog"
)

// Kind classifies an Event.
type Kind string

const (
	KindRoleSelected   Kind = "session.role_selected"
	KindSectionChanged Kind = "session.section_changed"
	KindLogout         Kind = "session.logout"
	KindCaseSubmitted  Kind = "case.submitted"
	KindTipSubmitted   Kind = "tip.submitted"
	KindAlertBroadcast Kind = "alert.broadcast"
)

// Event is one message on the live feed. Every subscriber receives every
// event, so events name roles and views but never a session.
type Event struct {
	Kind    Kind           `json:"kind"`
	Role    string         `json:"role,omitempty"`
	Section string         `json:"section,omitempty"`
	View    string         `json:"view,omitempty"`
	Subject string         `json:"subject,omitempty"`
	Alert   *catalog.Alert `json:"alert,omitempty"`
	At      time.Time      `json:"at"`
}

// AlertSource lists the alerts to re-broadcast on every demo tick.
type AlertSource func(ctx context.Context) ([]catalog.Alert, error)

// Stream fan-outs events to all active subscribers (SSE clients).
type Stream struct {
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
	now  func() time.Time
}

// New initialises an empty stream.
func New() *Stream {
	return &Stream{
		subs: make(map[int]chan Event),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Subscribe registers a subscriber and returns a channel which will receive events.
// The channel is closed when the provided context ends.
func (s *Stream) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, 16)

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// Subscribers reports the number of connected subscribers.
func (s *Stream) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// Publish fan-outs the event to all subscribers. A zero At is stamped with
// the current time.
func (s *Stream) Publish(evt Event) {
	if evt.At.IsZero() {
		evt.At = s.now()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- evt:
		default:
			// Drop when subscriber is slow to avoid blocking.
		}
	}
}

// StartDemo re-broadcasts the alerts returned by source at the provided
// interval until the returned stop function is called. Source errors skip
// the tick.
func (s *Stream) StartDemo(interval time.Duration, source AlertSource) func() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				alerts, err := source(ctx)
				if err != nil {
					continue
				}
				for i := range alerts {
					a := alerts[i]
					s.Publish(Event{Kind: KindAlertBroadcast, Subject: a.CaseID, Alert: &a})
				}
			}
		}
	}()
	return func() {
		cancel()
		<-done
	}
}
