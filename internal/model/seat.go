package model

import "fmt"

// SelectedSeat identifies one chosen seat by its 1-based number and its
// row-letter/column-number label (e.g. "B7").  Seats are derived from an
// event's capacity, never persisted on their own; selected seats survive
// only inside the booking that bought them.
type SelectedSeat struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
}

// FormatCents renders an amount of cents as a dollar string, e.g.
// 18498 -> "$184.98".  Negative amounts are not expected anywhere in
// the system and render with a leading minus sign.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
