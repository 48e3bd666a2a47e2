package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/booking"
	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/repository"
	"github.com/iliyamo/event-ticketing/internal/router"
	"github.com/iliyamo/event-ticketing/internal/view"
)

// PageHandler serves every page of the application.  GET requests flow
// through the route matcher: the Echo shell registers a single
// catch-all and this handler resolves the path against the route table,
// builds the page description and binds it to a template.  An
// unresolvable path renders the not-found view; a missing entity
// renders the page's inline miss state.  Neither is an error.
type PageHandler struct {
	Events   *repository.EventRepo
	Bookings *repository.BookingRepo
	Wizard   *booking.Manager
}

// NewPageHandler constructs a PageHandler.  All dependencies must be
// non-nil.
func NewPageHandler(events *repository.EventRepo, bookings *repository.BookingRepo, wizard *booking.Manager) *PageHandler {
	if events == nil || bookings == nil || wizard == nil {
		panic("nil dependency passed to NewPageHandler")
	}
	return &PageHandler{Events: events, Bookings: bookings, Wizard: wizard}
}

// renderContext is what every template receives: the page plus the
// header state.
type renderContext struct {
	Title string
	Nav   []view.NavLink
	Data  any
}

// render binds a page description to its template, computing the single
// active header link for the current address.
func (h *PageHandler) render(c echo.Context, status int, page view.Page) error {
	current := c.Request().URL.RequestURI()
	links := view.NavLinks()
	hrefs := make([]string, len(links))
	for i, l := range links {
		hrefs[i] = l.Href
	}
	active := router.ActiveNav(current, hrefs)
	for i := range links {
		links[i].Active = links[i].Href == active
	}
	return c.Render(status, page.Template, renderContext{Title: page.Title, Nav: links, Data: page.Data})
}

// Page is the catch-all GET handler.
func (h *PageHandler) Page(c echo.Context) error {
	path := c.Request().URL.Path
	route, params, ok := router.Match(view.Routes(), path)
	if !ok {
		return h.render(c, http.StatusNotFound, view.NotFound(path))
	}
	switch route.Name {
	case view.PageHome:
		return h.render(c, http.StatusOK, view.Home(h.Events.Featured()))

	case view.PageEvents:
		category := c.QueryParam("category")
		query := c.QueryParam("q")
		events := h.Events.ByCategory(category)
		if query != "" {
			events = intersectSearch(events, h.Events.Search(query))
		}
		return h.render(c, http.StatusOK, view.Events(events, category, query))

	case view.PageEventDetail:
		event, err := h.Events.ByID(params["id"])
		return h.render(c, http.StatusOK, view.EventDetail(event, err == nil))

	case view.PageBooking:
		return h.beginWizard(c, params["id"], "")

	case view.PageConfirmation:
		b, err := h.Bookings.ByID(params["id"])
		return h.render(c, http.StatusOK, view.Confirmation(b, err == nil))

	case view.PageAccount:
		return h.account(c)

	case view.PageAbout:
		return h.render(c, http.StatusOK, view.About())
	}
	return h.render(c, http.StatusNotFound, view.NotFound(path))
}

// beginWizard starts a fresh booking flow for the event.  Rendering the
// booking page always discards any earlier selection: a new session, a
// new grid.  Unknown and sold-out events get their inline states.
// flash carries a notice onto the fresh wizard, e.g. after a restart.
func (h *PageHandler) beginWizard(c echo.Context, eventID, flash string) error {
	event, err := h.Events.ByID(eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return h.render(c, http.StatusOK, view.BookingNotFound())
		}
		return err
	}
	if event.SoldOut() {
		return h.render(c, http.StatusOK, view.BookingSoldOut(event))
	}
	s, err := h.Wizard.Begin(eventID)
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, view.Booking(s, flash))
}

// account renders the bookings/profile tabs, joining each booking to
// its event's current catalog entry when it still exists.
func (h *PageHandler) account(c echo.Context) error {
	all := h.Bookings.All()
	items := make([]view.AccountBooking, 0, len(all))
	for _, b := range all {
		item := view.AccountBooking{Booking: b}
		if e, err := h.Events.ByID(b.EventID); err == nil {
			item.Event = e
			item.HasEvent = true
		}
		items = append(items, item)
	}
	return h.render(c, http.StatusOK, view.Account(items, c.QueryParam("tab")))
}

// intersectSearch keeps the events present in both slices, preserving
// the order of the first (category filter and text search compose).
func intersectSearch(a, b []model.Event) []model.Event {
	inB := make(map[string]bool, len(b))
	for _, e := range b {
		inB[e.ID] = true
	}
	var out []model.Event
	for _, e := range a {
		if inB[e.ID] {
			out = append(out, e)
		}
	}
	return out
}
