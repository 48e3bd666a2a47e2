package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-ticketing/internal/booking"
	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/repository"
	"github.com/iliyamo/event-ticketing/internal/storage"
	"github.com/iliyamo/event-ticketing/internal/view"
)

func TestEventDetail_MissState(t *testing.T) {
	page := view.EventDetail(model.Event{}, false)
	assert.Equal(t, "event_detail", page.Template)
	assert.Equal(t, "Event Not Found - TicketHub", page.Title)
	data, ok := page.Data.(view.EventDetailData)
	require.True(t, ok)
	assert.False(t, data.Found)
}

func TestConfirmation_MissState(t *testing.T) {
	page := view.Confirmation(model.Booking{}, false)
	data, ok := page.Data.(view.ConfirmationData)
	require.True(t, ok)
	assert.False(t, data.Found)
}

func TestBooking_InlineStates(t *testing.T) {
	miss := view.BookingNotFound()
	assert.Equal(t, "booking", miss.Template)
	missData, ok := miss.Data.(view.BookingData)
	require.True(t, ok)
	assert.True(t, missData.NotFound)
	assert.False(t, missData.SoldOut)

	event := model.Event{ID: "9", Title: "Gone", Capacity: 10, AvailableSeats: 0}
	sold := view.BookingSoldOut(event)
	soldData, ok := sold.Data.(view.BookingData)
	require.True(t, ok)
	assert.True(t, soldData.SoldOut)
	assert.Equal(t, "Gone", soldData.Event.Title)
}

func TestBooking_LiveSession(t *testing.T) {
	events := repository.NewEventRepo([]model.Event{{
		ID: "1", Title: "Summer Music Festival", PriceCents: 8999,
		Capacity: 200, AvailableSeats: 152,
	}})
	bookings := repository.NewBookingRepo(events, storage.NewFileStore(t.TempDir()+"/bookings.json"))
	wizard := booking.NewManager(events, bookings, 0)

	s, err := wizard.Begin("1")
	require.NoError(t, err)

	page := view.Booking(s, "pick something")
	data, ok := page.Data.(view.BookingData)
	require.True(t, ok)

	assert.Equal(t, s.ID(), data.SessionID)
	assert.True(t, data.OnSeats)
	assert.False(t, data.OnDetails)
	assert.Equal(t, "pick something", data.Flash)
	assert.Equal(t, 10, data.Columns)
	assert.Len(t, data.SeatRows, 20)
	require.Len(t, data.Steps, 4)
	assert.True(t, data.Steps[0].Active)
	assert.False(t, data.Steps[1].Active)

	// Cells mirror the grid's occupancy one to one.
	occupied := 0
	for _, row := range data.SeatRows {
		for _, cell := range row {
			if cell.Occupied {
				occupied++
			}
		}
	}
	assert.Equal(t, 48, occupied)
}

func TestAccount_TabFallback(t *testing.T) {
	page := view.Account(nil, "bogus")
	data, ok := page.Data.(view.AccountData)
	require.True(t, ok)
	assert.Equal(t, "bookings", data.Tab)

	page = view.Account(nil, "profile")
	data = page.Data.(view.AccountData)
	assert.Equal(t, "profile", data.Tab)
}

func TestNavLinksOrder(t *testing.T) {
	links := view.NavLinks()
	hrefs := make([]string, len(links))
	for i, l := range links {
		hrefs[i] = l.Href
	}
	assert.Equal(t, []string{"/", "/events", "/account", "/about"}, hrefs)
}
