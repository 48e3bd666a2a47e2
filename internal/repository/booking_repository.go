package repository

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/storage"
)

// BookingRepo owns the booking collection.  Bookings are the sole
// durable records in the system: the full collection is loaded from the
// storage backend once at construction and rewritten in full after
// every creation.  Storage failures are logged and otherwise ignored;
// the in-memory collection stays authoritative for the process
// (demo-grade store, no transactional guarantees).
type BookingRepo struct {
	mu       sync.RWMutex
	bookings []model.Booking
	events   *EventRepo
	store    storage.Store
}

// NewBookingRepo builds a BookingRepo over the given event catalog and
// storage backend and loads any previously saved bookings.  A corrupt
// saved collection is logged and discarded rather than failing startup.
func NewBookingRepo(events *EventRepo, store storage.Store) *BookingRepo {
	r := &BookingRepo{events: events, store: store}
	data, ok, err := store.Load()
	if err != nil {
		log.Printf("storage: load bookings failed: %v", err)
		return r
	}
	if !ok {
		return r
	}
	if err := json.Unmarshal(data, &r.bookings); err != nil {
		log.Printf("storage: saved bookings unreadable, starting empty: %v", err)
		r.bookings = nil
	}
	return r
}

// CreateInput carries everything the wizard assembled for a booking.
// The repository trusts the price breakdown; it only re-checks seat
// availability before committing.
type CreateInput struct {
	EventID       string
	Customer      model.Customer
	Seats         []model.SelectedSeat
	Price         model.Price
	PaymentMethod string
}

// Create appends a new booking: it verifies and decrements the event's
// available seats by the seat count, assigns a generated id and a UTC
// timestamp, snapshots the event fields that receipts need, and
// rewrites the collection to durable storage.  The created record is
// returned and is immutable thereafter.
func (r *BookingRepo) Create(in CreateInput) (model.Booking, error) {
	event, err := r.events.ByID(in.EventID)
	if err != nil {
		return model.Booking{}, err
	}
	if err := r.events.take(in.EventID, len(in.Seats)); err != nil {
		return model.Booking{}, err
	}

	booking := model.Booking{
		ID:            uuid.NewString(),
		EventID:       event.ID,
		EventTitle:    event.Title,
		EventDate:     event.Date,
		EventTime:     event.Time,
		EventVenue:    event.Venue,
		Customer:      in.Customer,
		Seats:         in.Seats,
		Price:         in.Price,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}

	r.mu.Lock()
	r.bookings = append(r.bookings, booking)
	snapshot := make([]model.Booking, len(r.bookings))
	copy(snapshot, r.bookings)
	r.mu.Unlock()

	if data, err := json.Marshal(snapshot); err != nil {
		log.Printf("storage: marshal bookings failed: %v", err)
	} else if err := r.store.Save(data); err != nil {
		log.Printf("storage: save bookings failed: %v", err)
	}
	return booking, nil
}

// All returns every booking in creation order.
func (r *BookingRepo) All() []model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// ByID returns the booking with the given id or ErrBookingNotFound.
func (r *BookingRepo) ByID(id string) (model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, ErrBookingNotFound
}
