// Package view builds display-agnostic page descriptions.  A builder
// is a pure function from route parameters and repository data to a
// Page; binding a Page to an actual surface (the HTML templates in the
// handler package) is the collaborator's job.  Entity misses are part
// of a page's data, never errors: a missing event or booking renders as
// an inline not-found state.
package view

import (
	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/router"
)

// Route names, one per page.
const (
	PageHome         = "home"
	PageEvents       = "events"
	PageEventDetail  = "event_detail"
	PageBooking      = "booking"
	PageConfirmation = "confirmation"
	PageAccount      = "account"
	PageAbout        = "about"
	PageNotFound     = "not_found"
)

// Routes returns the application route table in registration order.
func Routes() []router.Route {
	return []router.Route{
		{Pattern: "/", Name: PageHome},
		{Pattern: "/events", Name: PageEvents},
		{Pattern: "/event/:id", Name: PageEventDetail},
		{Pattern: "/booking/:id", Name: PageBooking},
		{Pattern: "/confirmation/:id", Name: PageConfirmation},
		{Pattern: "/account", Name: PageAccount},
		{Pattern: "/about", Name: PageAbout},
	}
}

// NavLinks lists the header links in display order; ActiveNav picks
// which one is highlighted for the current path.
func NavLinks() []NavLink {
	return []NavLink{
		{Href: "/", Label: "Home"},
		{Href: "/events", Label: "Events"},
		{Href: "/account", Label: "My Account"},
		{Href: "/about", Label: "About"},
	}
}

// NavLink is one header navigation affordance.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// Page describes one rendered view: the template to bind, its title,
// and the data the template consumes.
type Page struct {
	Title    string
	Template string
	Data     any
}

// HomeData feeds the home page: the featured strip plus the category
// cards.
type HomeData struct {
	Featured   []model.Event
	Categories []model.Category
}

// Home builds the home page from the featured events.
func Home(featured []model.Event) Page {
	return Page{
		Title:    "TicketHub - Book Your Events",
		Template: "home",
		Data: HomeData{
			Featured: featured,
			Categories: []model.Category{
				model.CategoryConcerts, model.CategorySports,
				model.CategoryTheater, model.CategoryMovies,
			},
		},
	}
}

// EventsData feeds the listing page.
type EventsData struct {
	Events   []model.Event
	Category string
	Query    string
}

// Events builds the listing page for a category filter and an optional
// search term.
func Events(events []model.Event, category, query string) Page {
	if category == "" {
		category = "all"
	}
	return Page{
		Title:    "Browse Events - TicketHub",
		Template: "events",
		Data:     EventsData{Events: events, Category: category, Query: query},
	}
}

// EventDetailData feeds the event detail page.  Found is false for an
// entity miss.
type EventDetailData struct {
	Event model.Event
	Found bool
}

// EventDetail builds the detail page for one event.
func EventDetail(event model.Event, found bool) Page {
	title := "Event Not Found - TicketHub"
	if found {
		title = event.Title + " - TicketHub"
	}
	return Page{
		Title:    title,
		Template: "event_detail",
		Data:     EventDetailData{Event: event, Found: found},
	}
}

// ConfirmationData feeds the receipt page.
type ConfirmationData struct {
	Booking model.Booking
	Found   bool
}

// Confirmation builds the receipt page for a completed booking.
func Confirmation(b model.Booking, found bool) Page {
	return Page{
		Title:    "Booking Confirmed - TicketHub",
		Template: "confirmation",
		Data:     ConfirmationData{Booking: b, Found: found},
	}
}

// AccountBooking pairs a booking with its event's current catalog
// entry, when the event still exists.
type AccountBooking struct {
	Booking  model.Booking
	Event    model.Event
	HasEvent bool
}

// AccountData feeds the account page: the bookings tab and the static
// profile tab.
type AccountData struct {
	Bookings []AccountBooking
	Tab      string
}

// Account builds the account page.  tab is "bookings" or "profile";
// anything else falls back to bookings.
func Account(bookings []AccountBooking, tab string) Page {
	if tab != "profile" {
		tab = "bookings"
	}
	return Page{
		Title:    "My Account - TicketHub",
		Template: "account",
		Data:     AccountData{Bookings: bookings, Tab: tab},
	}
}

// About builds the static info page.
func About() Page {
	return Page{Title: "About Us - TicketHub", Template: "about", Data: nil}
}

// NotFound builds the dedicated not-found view for unresolvable paths.
func NotFound(path string) Page {
	return Page{Title: "Page Not Found - TicketHub", Template: "not_found", Data: path}
}
