// Package seatmap derives a displayable seat grid from an event's
// capacity and availability.  No per-seat reservation record exists in
// the system, so the occupied set is a plausible-looking approximation:
// a random subset of seats sized to the number already taken.  The
// subset is drawn from a caller-provided RNG; production seeds it from
// the event so a grid stays stable until the event's availability
// changes (see EventSeed).
package seatmap

import (
	"hash/fnv"
	"math"
	"math/rand"
	"strconv"

	"github.com/iliyamo/event-ticketing/internal/model"
)

// MaxColumns caps the grid width regardless of capacity.
const MaxColumns = 10

// Seat is one grid position.  Number is 1-based and unique within the
// grid; Row and Column are 1-based coordinates; Label combines the row
// letter with the column number ("A1", "C7").
type Seat struct {
	Number   int
	Row      int
	Column   int
	Label    string
	Occupied bool
}

// Layout is the full grid for one event.
type Layout struct {
	Columns int
	Rows    int
	Seats   []Seat
}

// Columns returns the grid width for a capacity:
// min(MaxColumns, ceil(sqrt(capacity))).
func Columns(capacity int) int {
	if capacity <= 0 {
		return 0
	}
	c := int(math.Ceil(math.Sqrt(float64(capacity))))
	if c > MaxColumns {
		c = MaxColumns
	}
	return c
}

// Label builds the row-letter/column-number label for 1-based
// coordinates.  letter(1) = 'A'; rows past 26 continue through the
// character codes that follow 'Z'.
func Label(row, col int) string {
	return string(rune('A'+row-1)) + strconv.Itoa(col)
}

// New builds the grid for an event.  The occupied set is a uniformly
// random subset of size capacity-availableSeats drawn without
// replacement from 1..capacity.
func New(capacity, availableSeats int, rng *rand.Rand) Layout {
	cols := Columns(capacity)
	if cols == 0 {
		return Layout{}
	}
	rows := (capacity + cols - 1) / cols

	occupied := make(map[int]bool, capacity-availableSeats)
	taken := capacity - availableSeats
	if taken > 0 {
		for _, n := range rng.Perm(capacity)[:taken] {
			occupied[n+1] = true
		}
	}

	seats := make([]Seat, capacity)
	for i := 0; i < capacity; i++ {
		row := i/cols + 1
		col := i%cols + 1
		seats[i] = Seat{
			Number:   i + 1,
			Row:      row,
			Column:   col,
			Label:    Label(row, col),
			Occupied: occupied[i+1],
		}
	}
	return Layout{Columns: cols, Rows: rows, Seats: seats}
}

// ForEvent builds the grid for an event with a deterministic seed: the
// same event renders the same occupied seats until a booking changes
// its availability.
func ForEvent(e model.Event) Layout {
	return New(e.Capacity, e.AvailableSeats, rand.New(rand.NewSource(EventSeed(e))))
}

// EventSeed hashes the event id together with its remaining
// availability.  Folding availability in means the grid re-rolls
// exactly when a booking lands, which keeps the displayed occupied
// count truthful.
func EventSeed(e model.Event) int64 {
	h := fnv.New64a()
	h.Write([]byte(e.ID))
	h.Write([]byte{0, byte(e.AvailableSeats >> 8), byte(e.AvailableSeats)})
	return int64(h.Sum64())
}

// Seat returns the seat with the given 1-based number, or false when it
// is out of range.
func (l Layout) Seat(number int) (Seat, bool) {
	if number < 1 || number > len(l.Seats) {
		return Seat{}, false
	}
	return l.Seats[number-1], true
}

// OccupiedCount returns how many seats in the grid are occupied.
func (l Layout) OccupiedCount() int {
	n := 0
	for _, s := range l.Seats {
		if s.Occupied {
			n++
		}
	}
	return n
}

// RowsOfSeats groups the seats row by row for template rendering.
func (l Layout) RowsOfSeats() [][]Seat {
	if l.Columns == 0 {
		return nil
	}
	out := make([][]Seat, 0, l.Rows)
	for i := 0; i < len(l.Seats); i += l.Columns {
		end := i + l.Columns
		if end > len(l.Seats) {
			end = len(l.Seats)
		}
		out = append(out, l.Seats[i:end])
	}
	return out
}
