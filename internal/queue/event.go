// Package queue defines message payloads published to the message
// broker.
package queue

// BookingCreatedEvent is published after a booking has been persisted.
// It carries enough denormalized detail for downstream consumers
// (ticket mailers, analytics) to act without calling back into the
// application.
type BookingCreatedEvent struct {
	BookingID     string   `json:"booking_id"`
	EventID       string   `json:"event_id"`
	EventTitle    string   `json:"event_title"`
	EventDate     string   `json:"event_date"`
	EventTime     string   `json:"event_time"`
	EventVenue    string   `json:"event_venue"`
	CustomerEmail string   `json:"customer_email"`
	SeatLabels    []string `json:"seats"`
	TotalCents    int64    `json:"total_cents"`
	CreatedAt     string   `json:"created_at"`
}
