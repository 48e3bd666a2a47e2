package repository

import (
	"strings"
	"sync"

	"github.com/iliyamo/event-ticketing/internal/model"
)

// EventRepo owns the event catalog for the process lifetime.  Events
// are seeded once at startup and never persisted; the only mutation is
// the downward adjustment of AvailableSeats when a booking is created.
// A mutex guards the slice because the HTTP layer serves requests
// concurrently even though the modeled system has a single user.
type EventRepo struct {
	mu     sync.RWMutex
	events []model.Event
}

// NewEventRepo returns an EventRepo seeded with the given events.
func NewEventRepo(events []model.Event) *EventRepo {
	// Copy so the caller's slice cannot alias repository state.
	cp := make([]model.Event, len(events))
	copy(cp, events)
	return &EventRepo{events: cp}
}

// All returns every event in catalog order.
func (r *EventRepo) All() []model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Event, len(r.events))
	copy(out, r.events)
	return out
}

// ByCategory returns events in the given category.  An empty category
// or "all" returns the full catalog.
func (r *EventRepo) ByCategory(category string) []model.Event {
	if category == "" || category == "all" {
		return r.All()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Event
	for _, e := range r.events {
		if string(e.Category) == category {
			out = append(out, e)
		}
	}
	return out
}

// Featured returns the events flagged for the home page strip.
func (r *EventRepo) Featured() []model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Event
	for _, e := range r.events {
		if e.Featured {
			out = append(out, e)
		}
	}
	return out
}

// Search returns events whose title or location contains the term,
// case-insensitively.  An empty term returns the full catalog.
func (r *EventRepo) Search(term string) []model.Event {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return r.All()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Event
	for _, e := range r.events {
		if strings.Contains(strings.ToLower(e.Title), term) ||
			strings.Contains(strings.ToLower(e.Location), term) {
			out = append(out, e)
		}
	}
	return out
}

// ByID returns the event with the given id or ErrEventNotFound.
func (r *EventRepo) ByID(id string) (model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, ErrEventNotFound
}

// take decrements an event's available seats by n.  It refuses to go
// below zero.  Only the booking repository calls this, under its own
// creation path.
func (r *EventRepo) take(id string, n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID != id {
			continue
		}
		if r.events[i].AvailableSeats < n {
			return ErrNotEnoughSeats
		}
		r.events[i].AvailableSeats -= n
		return nil
	}
	return ErrEventNotFound
}
