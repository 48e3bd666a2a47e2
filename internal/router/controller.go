package router

// RenderFunc renders the view a route resolved to.  The controller only
// guarantees it is called with the matched route and its captured
// parameters; producing the actual output is the collaborator's job.
type RenderFunc func(route Route, params Params)

// Controller keeps the rendered view consistent with the current
// address.  It owns an explicit history stack with a cursor: Navigate
// pushes (truncating any forward tail), Back and Forward move the
// cursor and re-resolve without pushing.  An unresolvable path renders
// the not-found view and still occupies its history entry.
type Controller struct {
	routes   []Route
	render   RenderFunc
	notFound func()
	scroll   func()

	history []string
	pos     int
}

// NewController builds a controller over the route table.  render is
// required; notFound and scroll hooks may be nil.
func NewController(routes []Route, render RenderFunc, notFound, scroll func()) *Controller {
	return &Controller{
		routes:   routes,
		render:   render,
		notFound: notFound,
		scroll:   scroll,
		pos:      -1,
	}
}

// Navigate pushes a new history entry for path, resolves and renders
// it, then fires the scroll hook.
func (c *Controller) Navigate(path string) {
	c.history = append(c.history[:c.pos+1], path)
	c.pos = len(c.history) - 1
	c.Resolve(path)
	if c.scroll != nil {
		c.scroll()
	}
}

// Back moves one entry backwards and re-renders, if there is one.
// History is left untouched apart from the cursor.
func (c *Controller) Back() bool {
	if c.pos <= 0 {
		return false
	}
	c.pos--
	c.Resolve(c.history[c.pos])
	return true
}

// Forward moves one entry forwards and re-renders, if there is one.
func (c *Controller) Forward() bool {
	if c.pos >= len(c.history)-1 {
		return false
	}
	c.pos++
	c.Resolve(c.history[c.pos])
	return true
}

// Resolve matches path and renders the result without touching
// history.  A miss renders the not-found view.
func (c *Controller) Resolve(path string) {
	route, params, ok := Match(c.routes, path)
	if !ok {
		if c.notFound != nil {
			c.notFound()
		}
		return
	}
	c.render(route, params)
}

// Current returns the address at the history cursor, or "" when
// nothing has been visited.
func (c *Controller) Current() string {
	if c.pos < 0 {
		return ""
	}
	return c.history[c.pos]
}

// Depth returns the number of history entries.
func (c *Controller) Depth() int { return len(c.history) }

// ActiveNav picks the single navigation href to highlight for the
// current path: an href equal to the path wins; otherwise the longest
// non-root href that is a path prefix of it.  The root href only
// matches exactly, so "/" is never lit on subpages.  Returns "" when
// nothing qualifies.
func ActiveNav(current string, hrefs []string) string {
	for _, h := range hrefs {
		if h == current {
			return h
		}
	}
	best := ""
	for _, h := range hrefs {
		if h == "/" || h == "" {
			continue
		}
		if pathHasPrefix(current, h) && len(h) > len(best) {
			best = h
		}
	}
	return best
}

// pathHasPrefix reports whether path starts with href on a segment or
// query boundary, so "/events" covers "/events/1" and
// "/events?category=sports" but not "/eventsomething".
func pathHasPrefix(path, href string) bool {
	if len(path) <= len(href) {
		return false
	}
	if path[:len(href)] != href {
		return false
	}
	switch path[len(href)] {
	case '/', '?':
		return true
	}
	return false
}
