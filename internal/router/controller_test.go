package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-ticketing/internal/router"
)

// recorder captures what the controller renders.
type recorder struct {
	rendered []string
	misses   int
	scrolls  int
}

func (r *recorder) render(route router.Route, params router.Params) {
	name := route.Name
	if id, ok := params["id"]; ok {
		name += ":" + id
	}
	r.rendered = append(r.rendered, name)
}

func newController(rec *recorder) *router.Controller {
	return router.NewController(
		testRoutes(),
		rec.render,
		func() { rec.misses++ },
		func() { rec.scrolls++ },
	)
}

func TestController_NavigateRendersAndScrolls(t *testing.T) {
	rec := &recorder{}
	c := newController(rec)

	c.Navigate("/events")
	c.Navigate("/event/3")

	assert.Equal(t, []string{"events", "event_detail:3"}, rec.rendered)
	assert.Equal(t, 2, rec.scrolls)
	assert.Equal(t, "/event/3", c.Current())
	assert.Equal(t, 2, c.Depth())
}

func TestController_BackAndForwardDoNotPush(t *testing.T) {
	rec := &recorder{}
	c := newController(rec)

	c.Navigate("/")
	c.Navigate("/events")
	c.Navigate("/about")
	require.Equal(t, 3, c.Depth())

	require.True(t, c.Back())
	assert.Equal(t, "/events", c.Current())
	require.True(t, c.Back())
	assert.Equal(t, "/", c.Current())
	assert.False(t, c.Back())

	require.True(t, c.Forward())
	assert.Equal(t, "/events", c.Current())

	// History itself never grew.
	assert.Equal(t, 3, c.Depth())
	// Pops re-rendered without scrolling.
	assert.Equal(t, 3, rec.scrolls)
}

func TestController_NavigateTruncatesForwardTail(t *testing.T) {
	rec := &recorder{}
	c := newController(rec)

	c.Navigate("/")
	c.Navigate("/events")
	c.Navigate("/about")
	c.Back()
	c.Back()
	c.Navigate("/account")

	assert.Equal(t, "/account", c.Current())
	assert.Equal(t, 2, c.Depth())
	assert.False(t, c.Forward())
}

func TestController_MissRendersNotFoundAndKeepsHistory(t *testing.T) {
	rec := &recorder{}
	c := newController(rec)

	c.Navigate("/nope/at/all")

	assert.Equal(t, 1, rec.misses)
	assert.Empty(t, rec.rendered)
	assert.Equal(t, "/nope/at/all", c.Current())
	assert.Equal(t, 1, c.Depth())
}

func TestActiveNav(t *testing.T) {
	hrefs := []string{"/", "/events", "/account", "/about"}

	assert.Equal(t, "/", router.ActiveNav("/", hrefs))
	assert.Equal(t, "/events", router.ActiveNav("/events", hrefs))
	assert.Equal(t, "/events", router.ActiveNav("/events?category=sports", hrefs))
	assert.Equal(t, "/account", router.ActiveNav("/account?tab=profile", hrefs))

	// Root only matches exactly; unrelated paths light nothing.
	assert.Equal(t, "", router.ActiveNav("/event/3", hrefs))
	assert.Equal(t, "", router.ActiveNav("/booking/1", hrefs))
	assert.Equal(t, "", router.ActiveNav("/eventsomething", hrefs))
}
