package model

// Category classifies an event into one of the four browseable groups.
// The zero value is not a valid category; values come from the seed
// catalog or from the events page filter.
type Category string

const (
	CategoryConcerts Category = "concerts"
	CategorySports   Category = "sports"
	CategoryTheater  Category = "theater"
	CategoryMovies   Category = "movies"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryConcerts, CategorySports, CategoryTheater, CategoryMovies:
		return true
	}
	return false
}

// Event is a bookable happening with a fixed capacity and a per-seat
// price.  Events are loaded once at startup from the seed catalog and
// live in memory for the process lifetime; they are never persisted.
// AvailableSeats only ever decreases (there is no cancellation path).
//
// Fields:
//  ID             – unique identifier, referenced by bookings.
//  Title          – display title.
//  Category       – one of concerts/sports/theater/movies.
//  Date, Time     – scheduled date (YYYY-MM-DD) and start time (HH:MM).
//  Venue          – venue name.
//  Location       – city / region string.
//  Image          – URL of the promotional image.
//  Description    – long-form description.
//  PriceCents     – per-seat price in cents.
//  Capacity       – total number of seats.
//  AvailableSeats – seats still bookable, 0 <= AvailableSeats <= Capacity.
//  Featured       – whether the event is shown on the home page strip.
type Event struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Category       Category `json:"category"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Venue          string   `json:"venue"`
	Location       string   `json:"location"`
	Image          string   `json:"image"`
	Description    string   `json:"description"`
	PriceCents     int64    `json:"price_cents"`
	Capacity       int      `json:"capacity"`
	AvailableSeats int      `json:"available_seats"`
	Featured       bool     `json:"featured"`
}

// SoldOut reports whether the event has no bookable seats left.
func (e Event) SoldOut() bool { return e.AvailableSeats <= 0 }
