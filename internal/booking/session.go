// Package booking implements the multi-step booking wizard.  A Session
// is an explicit handle for one in-progress booking flow: it owns the
// seat selection, the collected form data and the step cursor, and is
// discarded when the flow completes or the visitor starts over.  All
// forward progress is gated on step-local validation; a refused
// transition mutates nothing.
package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/repository"
	"github.com/iliyamo/event-ticketing/internal/seatmap"
)

// Step identifies one stage of the wizard.  Transitions are linear:
// forward only through Next/Complete, backward only to the immediately
// preceding step.
type Step int

const (
	StepSeats Step = iota + 1
	StepDetails
	StepPayment
	StepDone
)

// String returns the progress label shown for the step.
func (s Step) String() string {
	switch s {
	case StepSeats:
		return "Select Seats"
	case StepDetails:
		return "Your Details"
	case StepPayment:
		return "Payment"
	case StepDone:
		return "Confirmation"
	}
	return "Unknown"
}

// ErrStepIncomplete is returned when a forward transition is refused by
// the current step's validation gate.  The caller keeps the user on the
// current step; nothing has changed.
var ErrStepIncomplete = errors.New("current step is incomplete")

// ErrSeatUnavailable is returned when a toggle names an occupied or
// nonexistent seat.
var ErrSeatUnavailable = errors.New("seat is not available")

// ErrSelectionLimit is returned when a toggle would select more seats
// than the event has left.
var ErrSelectionLimit = errors.New("selection exceeds available seats")

// ErrWrongStep is returned when an operation is invoked outside the
// step it belongs to (e.g. toggling seats during payment).
var ErrWrongStep = errors.New("operation not valid in current step")

// PaymentDetails carries the simulated payment form.  Presence is all
// that is checked: no card network is ever contacted.
type PaymentDetails struct {
	CardName   string `form:"cardName" validate:"required"`
	CardNumber string `form:"cardNumber" validate:"required"`
	Expiry     string `form:"expiry" validate:"required"`
	CVV        string `form:"cvv" validate:"required"`
}

// PaymentMethodLabel is recorded on every booking the wizard creates.
const PaymentMethodLabel = "Credit Card"

var validate = validator.New()

// Session is one live wizard instance.  Sessions are created by the
// Manager and advanced by the display surface through the exported
// methods.  A session belongs to one visitor, but the browser can
// deliver the same form POST twice, so every method serializes on the
// session's own mutex; a duplicated request observes the state the
// first one left behind instead of racing it.
type Session struct {
	id       string
	event    model.Event
	grid     seatmap.Layout
	bookings *repository.BookingRepo
	delay    time.Duration
	touched  time.Time // guarded by the Manager's mutex

	mu        sync.Mutex
	step      Step
	selection []model.SelectedSeat
	customer  model.Customer
	payment   PaymentDetails
	bookingID string
}

func newSession(event model.Event, bookings *repository.BookingRepo, delay time.Duration) *Session {
	return &Session{
		id:       uuid.NewString(),
		event:    event,
		grid:     seatmap.ForEvent(event),
		bookings: bookings,
		delay:    delay,
		touched:  time.Now(),
		step:     StepSeats,
	}
}

// ID returns the session handle passed back by the display surface.
func (s *Session) ID() string { return s.id }

// Event returns the event this flow is booking.
func (s *Session) Event() model.Event { return s.event }

// Grid returns the seat layout generated when the session began.  It
// stays fixed for the session so toggles validate against the same
// occupancy the visitor is looking at.
func (s *Session) Grid() seatmap.Layout { return s.grid }

// Step returns the current wizard step.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Selection returns the chosen seats in pick order.
func (s *Session) Selection() []model.SelectedSeat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectionLocked()
}

func (s *Session) selectionLocked() []model.SelectedSeat {
	out := make([]model.SelectedSeat, len(s.selection))
	copy(out, s.selection)
	return out
}

// Selected reports whether the seat number is currently chosen.
func (s *Session) Selected(number int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seat := range s.selection {
		if seat.Number == number {
			return true
		}
	}
	return false
}

// Customer returns the contact details collected so far.
func (s *Session) Customer() model.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

// Payment returns the payment form collected so far.
func (s *Session) Payment() PaymentDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payment
}

// BookingID returns the created booking's id once the session reached
// StepDone, "" before that.
func (s *Session) BookingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookingID
}

// Toggle flips the selection state of a seat.  Only legal during seat
// selection; occupied and out-of-range seats are refused, as is growing
// the selection beyond the event's remaining availability.
func (s *Session) Toggle(number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepSeats {
		return ErrWrongStep
	}
	seat, ok := s.grid.Seat(number)
	if !ok || seat.Occupied {
		return ErrSeatUnavailable
	}
	for i, sel := range s.selection {
		if sel.Number == number {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			return nil
		}
	}
	if len(s.selection) >= s.event.AvailableSeats {
		return ErrSelectionLimit
	}
	s.selection = append(s.selection, model.SelectedSeat{Number: seat.Number, Label: seat.Label})
	return nil
}

// Totals computes the price breakdown for the current selection:
// subtotal = seats × event price, fee = seats × the flat booking fee,
// total = subtotal + fee.
func (s *Session) Totals() model.Price {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

func (s *Session) totalsLocked() model.Price {
	n := int64(len(s.selection))
	sub := n * s.event.PriceCents
	fee := n * model.BookingFeeCents
	return model.Price{SubtotalCents: sub, FeeCents: fee, TotalCents: sub + fee}
}

// SetCustomer stores the contact form as entered.  Validation happens
// when the visitor tries to leave the step, so partial input survives a
// re-render.
func (s *Session) SetCustomer(c model.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepDetails {
		return ErrWrongStep
	}
	s.customer = c
	return nil
}

// SetPayment stores the payment form as entered.
func (s *Session) SetPayment(p PaymentDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepPayment {
		return ErrWrongStep
	}
	s.payment = p
	return nil
}

// Next advances one step forward if the current step's gate passes.
// On refusal the session is untouched and ErrStepIncomplete is
// returned; the display surface simply stays on the step.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.step {
	case StepSeats:
		if len(s.selection) == 0 {
			return ErrStepIncomplete
		}
		s.step = StepDetails
	case StepDetails:
		if err := validate.Struct(s.customer); err != nil {
			return ErrStepIncomplete
		}
		s.step = StepPayment
	default:
		return ErrWrongStep
	}
	return nil
}

// Prev steps back to the immediately preceding step.  It reports false
// from seat selection, where there is nothing to go back to.  Collected
// data is kept; re-validation happens on the way forward again.
func (s *Session) Prev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.step {
	case StepDetails:
		s.step = StepSeats
	case StepPayment:
		s.step = StepDetails
	default:
		return false
	}
	return true
}

// Complete settles the simulated payment and creates the booking.  The
// payment gate must pass first.  Settlement waits out the configured
// delay (modeling an asynchronous charge; only this wizard instance is
// suspended), then the booking is assembled from the selection and the
// event, persisted, and the session moves to StepDone.  The session
// mutex is held for the whole call, so a double-submitted pay request
// waits for the first and then gets ErrWrongStep from StepDone.  The
// delay never fails; the only errors after it are availability
// refusals from the repository.
func (s *Session) Complete(ctx context.Context) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepPayment {
		return model.Booking{}, ErrWrongStep
	}
	if err := validate.Struct(s.payment); err != nil {
		return model.Booking{}, ErrStepIncomplete
	}

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return model.Booking{}, ctx.Err()
		case <-t.C:
		}
	}

	created, err := s.bookings.Create(repository.CreateInput{
		EventID:       s.event.ID,
		Customer:      s.customer,
		Seats:         s.selectionLocked(),
		Price:         s.totalsLocked(),
		PaymentMethod: PaymentMethodLabel,
	})
	if err != nil {
		return model.Booking{}, err
	}
	s.step = StepDone
	s.bookingID = created.ID
	return created, nil
}
