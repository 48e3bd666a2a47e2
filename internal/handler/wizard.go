package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/booking"
	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/queue"
	"github.com/iliyamo/event-ticketing/internal/repository"
	queue_publisher "github.com/iliyamo/event-ticketing/internal/service"
	"github.com/iliyamo/event-ticketing/internal/view"
)

// The wizard advances through form POSTs.  Every form carries the
// session handle in a hidden field; a stale or missing handle falls
// back to a fresh wizard for the event rather than erroring.  Refused
// transitions re-render the current step with a one-line notice and
// mutate nothing.

// session resolves the posted session handle.  The boolean is false
// when the flow has to restart.
func (h *PageHandler) session(c echo.Context) (*booking.Session, bool) {
	id := c.FormValue("session")
	if id == "" {
		return nil, false
	}
	s, ok := h.Wizard.Get(id)
	if !ok || s.Event().ID != c.Param("id") {
		return nil, false
	}
	return s, ok
}

// restart renders a fresh wizard, used when a posted handle is stale.
func (h *PageHandler) restart(c echo.Context) error {
	return h.beginWizard(c, c.Param("id"), "")
}

// ToggleSeat handles POST /booking/:id/seats.  It flips one seat in
// the selection.  Occupied-seat and over-limit refusals re-render
// silently; the grid the visitor saw already marks occupied seats.
func (h *PageHandler) ToggleSeat(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return h.restart(c)
	}
	number, err := strconv.Atoi(c.FormValue("seat"))
	if err != nil {
		return h.render(c, http.StatusOK, view.Booking(s, ""))
	}
	flash := ""
	if err := s.Toggle(number); errors.Is(err, booking.ErrSelectionLimit) {
		flash = "Only " + strconv.Itoa(s.Event().AvailableSeats) + " seats are available for this event."
	}
	return h.render(c, http.StatusOK, view.Booking(s, flash))
}

// NextStep handles POST /booking/:id/next.  It stores the step's form
// input, then tries the forward transition.  A refused transition
// keeps the visitor on the step.
func (h *PageHandler) NextStep(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return h.restart(c)
	}
	if s.Step() == booking.StepDetails {
		var customer model.Customer
		if err := c.Bind(&customer); err == nil {
			_ = s.SetCustomer(customer)
		}
	}
	flash := ""
	if err := s.Next(); errors.Is(err, booking.ErrStepIncomplete) {
		switch s.Step() {
		case booking.StepSeats:
			flash = "Select at least one seat to continue."
		case booking.StepDetails:
			flash = "Please fill in all contact fields with a valid email address."
		}
	}
	return h.render(c, http.StatusOK, view.Booking(s, flash))
}

// PrevStep handles POST /booking/:id/prev.  Backward transitions are
// always allowed except from the first step.
func (h *PageHandler) PrevStep(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return h.restart(c)
	}
	s.Prev()
	return h.render(c, http.StatusOK, view.Booking(s, ""))
}

// Pay handles POST /booking/:id/pay.  It stores the payment form,
// settles the simulated charge (the fixed delay suspends only this
// wizard's request) and completes the booking, then redirects to the
// receipt.  The session dies with the completed flow.
func (h *PageHandler) Pay(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return h.restart(c)
	}
	var payment booking.PaymentDetails
	if err := c.Bind(&payment); err == nil {
		_ = s.SetPayment(payment)
	}

	created, err := s.Complete(c.Request().Context())
	switch {
	case errors.Is(err, booking.ErrStepIncomplete):
		return h.render(c, http.StatusOK, view.Booking(s, "Please fill in all payment fields."))
	case errors.Is(err, booking.ErrWrongStep):
		return h.render(c, http.StatusOK, view.Booking(s, ""))
	case errors.Is(err, repository.ErrNotEnoughSeats):
		// Another booking took the seats while this one was settling.
		// Start over against current availability; a now-empty event
		// renders the sold-out view instead.
		h.Wizard.End(s.ID())
		return h.beginWizard(c, s.Event().ID,
			"Those seats were just taken by another booking. Please choose again.")
	case err != nil:
		return err
	}
	h.Wizard.End(s.ID())

	go publishBookingCreated(created)

	return c.Redirect(http.StatusSeeOther, "/confirmation/"+created.ID)
}

// publishBookingCreated hands the booking to the broker, best-effort.
func publishBookingCreated(b model.Booking) {
	labels := make([]string, len(b.Seats))
	for i, seat := range b.Seats {
		labels[i] = seat.Label
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = queue_publisher.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
		BookingID:     b.ID,
		EventID:       b.EventID,
		EventTitle:    b.EventTitle,
		EventDate:     b.EventDate,
		EventTime:     b.EventTime,
		EventVenue:    b.EventVenue,
		CustomerEmail: b.Customer.Email,
		SeatLabels:    labels,
		TotalCents:    b.Price.TotalCents,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	})
}
