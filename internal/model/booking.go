package model

import "time"

// BookingFeeCents is the flat per-seat service fee added on top of the
// ticket price when a booking is created.
const BookingFeeCents int64 = 250

// Customer holds the contact details collected in the second wizard
// step.  Validation tags are enforced by the booking wizard before the
// step can be left.
type Customer struct {
	FirstName string `json:"first_name" form:"firstName" validate:"required"`
	LastName  string `json:"last_name" form:"lastName" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Phone     string `json:"phone" form:"phone" validate:"required"`
}

// Price is the computed price breakdown of a booking.  The invariant
// TotalCents == SubtotalCents + FeeCents holds for every booking the
// wizard produces.
type Price struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	FeeCents      int64 `json:"fee_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// Booking records a completed purchase against one event.  It carries a
// denormalized snapshot of the event fields that appear on receipts so
// the record stays readable even though events are not persisted.
// Bookings are immutable once created and are the only durable records
// in the system.
//
// Fields:
//  ID            – generated unique identifier.
//  EventID       – id of the booked event.
//  EventTitle    – snapshot of the event title at booking time.
//  EventDate     – snapshot of the event date.
//  EventTime     – snapshot of the start time.
//  EventVenue    – snapshot of the venue name.
//  Customer      – contact details collected by the wizard.
//  Seats         – the seats chosen in the selection step, in pick order.
//  Price         – subtotal / fee / total breakdown in cents.
//  PaymentMethod – label of the simulated payment method.
//  CreatedAt     – creation timestamp in UTC.
type Booking struct {
	ID            string         `json:"id"`
	EventID       string         `json:"event_id"`
	EventTitle    string         `json:"event_title"`
	EventDate     string         `json:"event_date"`
	EventTime     string         `json:"event_time"`
	EventVenue    string         `json:"event_venue"`
	Customer      Customer       `json:"customer"`
	Seats         []SelectedSeat `json:"seats"`
	Price         Price          `json:"price"`
	PaymentMethod string         `json:"payment_method"`
	CreatedAt     time.Time      `json:"created_at"`
}
