// Package repository holds the in-memory event and booking collections.
// Sentinel errors defined here let handlers distinguish the failure
// scenarios they need to render differently.  An entity miss is a
// normal, user-visible state in this system, not an exception: handlers
// translate these values into inline "not found" views, never into 5xx
// responses.
package repository

import "errors"

// ErrEventNotFound is returned when no event with the requested id
// exists in the catalog.
var ErrEventNotFound = errors.New("event not found")

// ErrBookingNotFound is returned when no booking with the requested id
// has been created.
var ErrBookingNotFound = errors.New("booking not found")

// ErrNotEnoughSeats is returned when a booking asks for more seats than
// the event still has available.  The wizard's selection guard makes
// this unreachable through the UI; the repository still refuses rather
// than drive availability negative.
var ErrNotEnoughSeats = errors.New("not enough available seats")
