package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/repository"
	"github.com/iliyamo/event-ticketing/internal/storage"
)

func catalog() []model.Event {
	return []model.Event{
		{
			ID: "1", Title: "Summer Music Festival", Category: model.CategoryConcerts,
			Date: "2025-07-15", Time: "18:00", Venue: "Central Park Amphitheater",
			Location: "New York, NY", PriceCents: 8999, Capacity: 200, AvailableSeats: 152,
		},
		{
			ID: "4", Title: "Comedy Night Special", Category: model.CategoryTheater,
			Date: "2025-07-08", Time: "20:00", Venue: "Laugh Factory",
			Location: "Chicago, IL", PriceCents: 2499, Capacity: 150, AvailableSeats: 3,
		},
	}
}

func customer() model.Customer {
	return model.Customer{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Phone: "555-0145"}
}

func seats(labels ...string) []model.SelectedSeat {
	out := make([]model.SelectedSeat, len(labels))
	for i, l := range labels {
		out[i] = model.SelectedSeat{Number: i + 1, Label: l}
	}
	return out
}

func TestCreate_DecrementsAvailability(t *testing.T) {
	events := repository.NewEventRepo(catalog())
	bookings := repository.NewBookingRepo(events, storage.NewFileStore(t.TempDir()+"/bookings.json"))

	created, err := bookings.Create(repository.CreateInput{
		EventID:       "1",
		Customer:      customer(),
		Seats:         seats("A1", "A2"),
		Price:         model.Price{SubtotalCents: 17998, FeeCents: 500, TotalCents: 18498},
		PaymentMethod: "Credit Card",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "Summer Music Festival", created.EventTitle)
	assert.Equal(t, "Central Park Amphitheater", created.EventVenue)
	assert.Equal(t, int64(18498), created.Price.TotalCents)

	e, err := events.ByID("1")
	require.NoError(t, err)
	assert.Equal(t, 150, e.AvailableSeats)

	// Decrements accumulate across bookings.
	_, err = bookings.Create(repository.CreateInput{
		EventID:       "1",
		Customer:      customer(),
		Seats:         seats("B3"),
		Price:         model.Price{SubtotalCents: 8999, FeeCents: 250, TotalCents: 9249},
		PaymentMethod: "Credit Card",
	})
	require.NoError(t, err)
	e, err = events.ByID("1")
	require.NoError(t, err)
	assert.Equal(t, 149, e.AvailableSeats)
}

func TestCreate_RefusesWhenNotEnoughSeats(t *testing.T) {
	events := repository.NewEventRepo(catalog())
	bookings := repository.NewBookingRepo(events, storage.NewFileStore(t.TempDir()+"/bookings.json"))

	_, err := bookings.Create(repository.CreateInput{
		EventID:       "4",
		Customer:      customer(),
		Seats:         seats("A1", "A2", "A3", "A4"),
		Price:         model.Price{},
		PaymentMethod: "Credit Card",
	})
	assert.ErrorIs(t, err, repository.ErrNotEnoughSeats)

	e, err := events.ByID("4")
	require.NoError(t, err)
	assert.Equal(t, 3, e.AvailableSeats)
	assert.Empty(t, bookings.All())
}

func TestCreate_UnknownEvent(t *testing.T) {
	events := repository.NewEventRepo(catalog())
	bookings := repository.NewBookingRepo(events, storage.NewFileStore(t.TempDir()+"/bookings.json"))

	_, err := bookings.Create(repository.CreateInput{EventID: "999", Seats: seats("A1")})
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestByID(t *testing.T) {
	events := repository.NewEventRepo(catalog())
	bookings := repository.NewBookingRepo(events, storage.NewFileStore(t.TempDir()+"/bookings.json"))

	_, err := bookings.ByID("missing")
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)

	created, err := bookings.Create(repository.CreateInput{
		EventID:       "1",
		Customer:      customer(),
		Seats:         seats("A1"),
		Price:         model.Price{SubtotalCents: 8999, FeeCents: 250, TotalCents: 9249},
		PaymentMethod: "Credit Card",
	})
	require.NoError(t, err)

	got, err := bookings.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "jane@example.com", got.Customer.Email)
}

func TestBookings_SurviveRestart(t *testing.T) {
	path := t.TempDir() + "/bookings.json"
	store := storage.NewFileStore(path)

	events := repository.NewEventRepo(catalog())
	bookings := repository.NewBookingRepo(events, store)
	created, err := bookings.Create(repository.CreateInput{
		EventID:       "1",
		Customer:      customer(),
		Seats:         seats("A1", "A2"),
		Price:         model.Price{SubtotalCents: 17998, FeeCents: 500, TotalCents: 18498},
		PaymentMethod: "Credit Card",
	})
	require.NoError(t, err)

	reloaded := repository.NewBookingRepo(repository.NewEventRepo(catalog()), storage.NewFileStore(path))
	got, err := reloaded.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Seats, got.Seats)
	assert.Equal(t, created.Price, got.Price)
	assert.Equal(t, created.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestEventRepo_Filters(t *testing.T) {
	events := repository.NewEventRepo(catalog())

	assert.Len(t, events.All(), 2)
	assert.Len(t, events.ByCategory("all"), 2)
	assert.Len(t, events.ByCategory(""), 2)

	concerts := events.ByCategory("concerts")
	require.Len(t, concerts, 1)
	assert.Equal(t, "1", concerts[0].ID)

	assert.Empty(t, events.ByCategory("movies"))

	byTitle := events.Search("comedy")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "4", byTitle[0].ID)

	byLocation := events.Search("new york")
	require.Len(t, byLocation, 1)
	assert.Equal(t, "1", byLocation[0].ID)

	assert.Len(t, events.Search("  "), 2)
	assert.Empty(t, events.Search("zebra"))
}
