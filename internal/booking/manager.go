package booking

import (
	"sync"
	"time"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/repository"
)

// SettleDelay is the fixed simulated payment settlement time.
const SettleDelay = 2 * time.Second

// sessionTTL bounds how long an abandoned wizard sticks around before
// the manager sweeps it.
const sessionTTL = 30 * time.Minute

// Manager creates and tracks live wizard sessions.  Beginning a flow
// returns a fresh session handle; the display surface passes the handle
// back with every interaction.  Rendering the booking page anew always
// begins a new session, so a selection never leaks from one visit into
// the next.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	events   *repository.EventRepo
	bookings *repository.BookingRepo
	delay    time.Duration
}

// NewManager builds a Manager over the repositories.  delay is the
// simulated settlement time; tests pass zero.
func NewManager(events *repository.EventRepo, bookings *repository.BookingRepo, delay time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		events:   events,
		bookings: bookings,
		delay:    delay,
	}
}

// Begin starts a fresh wizard for the event: empty selection, newly
// generated seat grid, cursor on seat selection.  Returns
// repository.ErrEventNotFound for an unknown event; entering the flow
// for a sold-out event is allowed here so the page layer can show its
// sold-out view instead (it never calls Begin in that case, but the
// manager does not enforce presentation decisions).
func (m *Manager) Begin(eventID string) (*Session, error) {
	event, err := m.events.ByID(eventID)
	if err != nil {
		return nil, err
	}
	s := newSession(event, m.bookings, m.delay)
	m.mu.Lock()
	m.sweepLocked()
	m.sessions[s.id] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns the live session with the given handle.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if ok {
		s.touched = time.Now()
	}
	return s, ok
}

// End discards a session.  Completed flows call this after redirecting
// to the confirmation page; the selection dies with the session.
func (m *Manager) End(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Event re-reads the session's event from the catalog so availability
// shown on re-renders is current.
func (m *Manager) Event(s *Session) (model.Event, error) {
	return m.events.ByID(s.event.ID)
}

func (m *Manager) sweepLocked() {
	cutoff := time.Now().Add(-sessionTTL)
	for id, s := range m.sessions {
		if s.touched.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
