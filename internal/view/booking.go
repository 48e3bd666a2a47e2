package view

import (
	"github.com/iliyamo/event-ticketing/internal/booking"
	"github.com/iliyamo/event-ticketing/internal/model"
)

// WizardSeat is one grid cell with its display state resolved.
type WizardSeat struct {
	Number   int
	Label    string
	Occupied bool
	Selected bool
}

// WizardStep is one entry of the progress indicator.
type WizardStep struct {
	Number int
	Label  string
	Active bool
}

// BookingData feeds the wizard page.  Exactly one of NotFound, SoldOut
// or the live wizard state applies.
type BookingData struct {
	NotFound bool
	SoldOut  bool

	Event     model.Event
	SessionID string
	Step      booking.Step
	OnSeats   bool
	OnDetails bool
	OnPayment bool
	Steps     []WizardStep
	Columns   int
	SeatRows  [][]WizardSeat
	Selection []model.SelectedSeat
	Totals    model.Price
	Customer  model.Customer
	Payment   booking.PaymentDetails
	Flash     string
}

// BookingNotFound builds the wizard page's inline event-miss state.
func BookingNotFound() Page {
	return Page{
		Title:    "Event Not Found - TicketHub",
		Template: "booking",
		Data:     BookingData{NotFound: true},
	}
}

// BookingSoldOut builds the wizard page's sold-out state.
func BookingSoldOut(event model.Event) Page {
	return Page{
		Title:    "Sold Out - TicketHub",
		Template: "booking",
		Data:     BookingData{SoldOut: true, Event: event},
	}
}

// Booking builds the wizard page from a live session.  flash carries a
// one-line refusal notice ("select at least one seat") when the last
// transition was refused; it never reflects an error condition.
func Booking(s *booking.Session, flash string) Page {
	grid := s.Grid()
	rows := make([][]WizardSeat, 0, grid.Rows)
	for _, row := range grid.RowsOfSeats() {
		cells := make([]WizardSeat, len(row))
		for i, seat := range row {
			cells[i] = WizardSeat{
				Number:   seat.Number,
				Label:    seat.Label,
				Occupied: seat.Occupied,
				Selected: s.Selected(seat.Number),
			}
		}
		rows = append(rows, cells)
	}

	steps := make([]WizardStep, 0, 4)
	for i, st := range []booking.Step{booking.StepSeats, booking.StepDetails, booking.StepPayment, booking.StepDone} {
		steps = append(steps, WizardStep{Number: i + 1, Label: st.String(), Active: st <= s.Step()})
	}

	return Page{
		Title:    "Book Tickets - TicketHub",
		Template: "booking",
		Data: BookingData{
			Event:     s.Event(),
			SessionID: s.ID(),
			Step:      s.Step(),
			OnSeats:   s.Step() == booking.StepSeats,
			OnDetails: s.Step() == booking.StepDetails,
			OnPayment: s.Step() == booking.StepPayment,
			Steps:     steps,
			Columns:   grid.Columns,
			SeatRows:  rows,
			Selection: s.Selection(),
			Totals:    s.Totals(),
			Customer:  s.Customer(),
			Payment:   s.Payment(),
			Flash:     flash,
		},
	}
}
